package routers

import (
	"gateway-api/internal/handlers/inference"

	"github.com/labstack/echo/v4"
)

// RegisterInferenceRoutes mounts the gateway on every path and method not
// claimed by a more specific route. Method checks happen inside the pipeline
// so that their ordering against configuration checks is preserved.
func RegisterInferenceRoutes(e *echo.Group, ih *inference.InferenceHandler) {
	e.Any("/", ih.HandleInferenceHTTP)
	e.Any("/*", ih.HandleInferenceHTTP)
}
