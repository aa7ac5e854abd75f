package shared

// SuccessEnvelope wraps an opaque backend result.
type SuccessEnvelope struct {
	Success bool   `json:"success"`
	Task    string `json:"task"`
	Model   string `json:"model"`
	Result  any    `json:"result"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorEnvelope struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

func NewErrorEnvelope(gerr *GatewayError) ErrorEnvelope {
	return ErrorEnvelope{
		Success: false,
		Error: ErrorBody{
			Code:    gerr.Code,
			Message: gerr.Message,
		},
	}
}
