package inference

import (
	"net/http"

	"gateway-api/internal/ctx"

	"github.com/labstack/echo/v4"
)

// unresolvedTask labels metrics for requests that failed before the task was
// known.
const unresolvedTask = "none"

// HandleInferenceHTTP runs one request through the pipeline and emits exactly
// one response.
func (im *InferenceHandler) HandleInferenceHTTP(cc echo.Context) error {
	c := ctx.From(cc, im.Log)

	if c.Request().Method == http.MethodOptions {
		return c.NoContent(http.StatusNoContent)
	}

	body, err := im.Gate(c.Request())
	if err != nil {
		return sendError(c, unresolvedTask, err)
	}

	reqInfo, err := im.Preprocess(body)
	if err != nil {
		return sendError(c, unresolvedTask, err)
	}
	c.LogValues.Task = string(reqInfo.Task)
	c.LogValues.Model = reqInfo.Model

	result, err := im.DoInference(c.Request().Context(), reqInfo)
	if err != nil {
		return sendError(c, string(reqInfo.Task), err)
	}

	return sendSuccess(c, reqInfo, result)
}
