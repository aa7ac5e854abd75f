package inference

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gateway-api/internal/metrics"
	"gateway-api/internal/shared"
)

// DoInference makes the single backend call for a request. Every backend
// failure, cancellation and panic included, comes back as
// ErrAIInferenceFailed with the cause attached for logging.
func (im *InferenceHandler) DoInference(ctx context.Context, req *RequestInfo) (result any, err error) {
	start := time.Now()
	task := string(req.Task)

	defer func() {
		if r := recover(); r != nil {
			err = errors.Join(shared.ErrModelPanic, fmt.Errorf("%v", r))
		}
		metrics.InferenceDuration.WithLabelValues(task, req.Model).Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.InferenceErrors.WithLabelValues(task, req.Model, shared.MetricsCode(err)).Inc()
			result = nil
			err = shared.ErrAIInferenceFailed.Wrap(err)
		}
	}()

	return im.Backend.Run(ctx, req.Model, req.Payload)
}
