// Package inference implements the gateway pipeline: request gate, task
// resolution, payload validation, model routing, backend invocation and the
// response envelope.
package inference

import (
	"gateway-api/internal/backend"
	"gateway-api/internal/tasks"

	"go.uber.org/zap"
)

type InferenceHandler struct {
	// Backend is nil when the inference capability is not configured.
	Backend backend.Backend
	// Secret is the shared x-api-key value. Empty means not configured.
	Secret string
	Models *tasks.ModelTable
	Log    *zap.SugaredLogger
}

func NewInferenceHandler(be backend.Backend, secret string, models *tasks.ModelTable, log *zap.SugaredLogger) *InferenceHandler {
	if models == nil {
		models = tasks.DefaultModelTable()
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &InferenceHandler{
		Backend: be,
		Secret:  secret,
		Models:  models,
		Log:     log,
	}
}
