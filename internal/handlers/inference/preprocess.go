package inference

import (
	"encoding/json"

	"gateway-api/internal/shared"
	"gateway-api/internal/tasks"
)

type RequestInfo struct {
	Task    tasks.Task
	Model   string
	Payload map[string]any
}

// Preprocess parses the body, resolves the task, enforces the task's shape
// contract and builds the backend payload. Checks run in a fixed order:
// JSON syntax, object body, task, input object, task shape.
func (im *InferenceHandler) Preprocess(body []byte) (*RequestInfo, error) {
	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, shared.ErrInvalidJSON.Wrap(err)
	}

	payload, ok := parsed.(map[string]any)
	if !ok {
		return nil, shared.ErrInvalidBodyType
	}

	task, ok := tasks.Resolve(payload["task"])
	if !ok {
		return nil, shared.ErrInvalidTask
	}

	input, ok := payload["input"].(map[string]any)
	if !ok {
		return nil, shared.ErrMissingInput
	}

	rule := rules[task]
	if !rule.validate(input) {
		return nil, rule.invalid
	}

	return &RequestInfo{
		Task:    task,
		Model:   im.Models.Model(task),
		Payload: rule.build(input),
	}, nil
}
