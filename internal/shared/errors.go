package shared

import (
	"errors"
	"fmt"
)

// GatewayError is the only error shape that reaches a caller. Code and Message
// are static per failure kind and are what the error envelope carries. Err is
// the underlying cause, kept for logging only and never written to a response.
//
// Handlers should return the sentinel values below, wrapping causes with Wrap
// so errors.Is keeps matching on the code.
type GatewayError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (g *GatewayError) Error() string {
	if g.Err == nil {
		return fmt.Sprintf("status %d: %s", g.StatusCode, g.Code)
	}
	return fmt.Sprintf("status %d: %s: %v", g.StatusCode, g.Code, g.Err)
}

func (g *GatewayError) Unwrap() error {
	return g.Err
}

// Is matches any GatewayError with the same code.
func (g *GatewayError) Is(target error) bool {
	t, ok := target.(*GatewayError)
	return ok && t.Code == g.Code
}

// Wrap returns a copy of g with err attached as its cause.
func (g *GatewayError) Wrap(err error) *GatewayError {
	c := *g
	c.Err = err
	return &c
}

var (
	ErrMisconfiguredWorker = &GatewayError{StatusCode: 500, Code: "misconfigured_worker", Message: "inference backend is not configured"}
	ErrMissingAPIKeySecret = &GatewayError{StatusCode: 500, Code: "missing_api_key_secret", Message: "api key secret is not configured"}
	ErrInternal            = &GatewayError{StatusCode: 500, Code: "internal_error", Message: "internal server error"}

	ErrMethodNotAllowed   = &GatewayError{StatusCode: 405, Code: "method_not_allowed", Message: "only POST and OPTIONS are allowed"}
	ErrUnauthorized       = &GatewayError{StatusCode: 401, Code: "unauthorized", Message: "missing or invalid x-api-key"}
	ErrInvalidContentType = &GatewayError{StatusCode: 415, Code: "invalid_content_type", Message: "content-type must be application/json"}
	ErrPayloadTooLarge    = &GatewayError{StatusCode: 413, Code: "payload_too_large", Message: "request body exceeds 262144 bytes"}

	ErrInvalidJSON           = &GatewayError{StatusCode: 400, Code: "invalid_json", Message: "request body is not valid JSON"}
	ErrInvalidBodyType       = &GatewayError{StatusCode: 400, Code: "invalid_body_type", Message: "request body must be a JSON object"}
	ErrInvalidTask           = &GatewayError{StatusCode: 400, Code: "invalid_task", Message: "task must be one of chat, reasoning, embedding"}
	ErrMissingInput          = &GatewayError{StatusCode: 400, Code: "missing_input", Message: "input object is required"}
	ErrInvalidChatInput      = &GatewayError{StatusCode: 400, Code: "invalid_chat_input", Message: "input.messages must hold 1 to 64 messages with non-empty role and content"}
	ErrInvalidEmbeddingInput = &GatewayError{StatusCode: 400, Code: "invalid_embedding_input", Message: "input.text must be a non-empty string of at most 8000 characters"}
	ErrAIInferenceFailed     = &GatewayError{StatusCode: 502, Code: "ai_inference_failed", Message: "inference backend request failed"}
)

// AsGatewayError extracts the caller facing error from an error chain.
// Anything that is not a GatewayError becomes ErrInternal.
func AsGatewayError(err error) *GatewayError {
	var gerr *GatewayError
	if errors.As(err, &gerr) {
		return gerr
	}
	return ErrInternal.Wrap(err)
}

// MetricsError classifies backend failures for logs and metric labels.
type MetricsError struct {
	Msg  string
	Code string
}

func (m *MetricsError) Error() string {
	return m.String()
}

func (m *MetricsError) String() string {
	return m.Msg
}

var (
	ErrFailedModelReq         = &MetricsError{Msg: "failed to send http request to model", Code: "model_http_err"}
	ErrFailedModelReqFromCode = &MetricsError{Msg: "model responded with non-200", Code: "model_http_status_err"}
	ErrFailedReadingResponse  = &MetricsError{Msg: "failed to read model response", Code: "model_response_err"}
	ErrModelUnsuccessful      = &MetricsError{Msg: "model reported failure", Code: "model_unsuccessful"}
	ErrModelContext           = &MetricsError{Msg: "model context canceled", Code: "model_context_err"}
	ErrModelPanic             = &MetricsError{Msg: "model call panicked", Code: "model_panic"}
)

// MetricsCode returns the code of the first MetricsError in err's chain.
func MetricsCode(err error) string {
	var merr *MetricsError
	if errors.As(err, &merr) {
		return merr.Code
	}
	return "unknown"
}
