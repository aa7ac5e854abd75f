package inference

import (
	"net/http"

	"gateway-api/internal/ctx"
	"gateway-api/internal/metrics"
	"gateway-api/internal/shared"
)

func sendSuccess(c *ctx.Context, req *RequestInfo, result any) error {
	metrics.RequestCount.WithLabelValues(string(req.Task), "ok").Inc()
	return c.JSON(http.StatusOK, shared.SuccessEnvelope{
		Success: true,
		Task:    string(req.Task),
		Model:   req.Model,
		Result:  result,
	})
}

// sendError writes the failure envelope. Only the static code and message
// leave the process; the cause goes to the request log.
func sendError(c *ctx.Context, task string, err error) error {
	gerr := shared.AsGatewayError(err)

	c.LogValues.ErrorCode = gerr.Code
	c.LogValues.AddError(err)
	if gerr.StatusCode >= 500 {
		c.Log.Warnw("Gateway request failed", "code", gerr.Code, "error", err.Error())
	}

	metrics.RequestCount.WithLabelValues(task, gerr.Code).Inc()
	return c.JSON(gerr.StatusCode, shared.NewErrorEnvelope(gerr))
}
