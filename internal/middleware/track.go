// Package middleware holds the echo middleware shared by every route.
package middleware

import (
	"fmt"
	"net/http"
	"time"

	"gateway-api/internal/ctx"
	"gateway-api/internal/metrics"
	"gateway-api/internal/shared"

	"github.com/aidarkhanov/nanoid"
	"github.com/labstack/echo/v4"
	emw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const requestIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

func NewTrackMiddleware(log *zap.SugaredLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqID, _ := nanoid.Generate(requestIDAlphabet, 28)
			reqID = "req_" + reqID
			logger := log.With("request_id", reqID)

			cc := &ctx.Context{
				Context: c,
				Log:     logger,
				Reqid:   reqID,
				LogValues: &ctx.ContextLogValues{
					RequestID: reqID,
					StartTime: time.Now(),
					Method:    c.Request().Method,
					Path:      c.Request().URL.Path,
				},
			}

			err := next(cc)
			if err != nil {
				// Let echo write the response so the logged status is the real one
				cc.Error(err)
				cc.LogValues.AddError(err)
			}

			cc.LogValues.RequestDuration = time.Since(cc.LogValues.StartTime)
			cc.LogValues.StatusCode = cc.Response().Status

			switch {
			case cc.LogValues.StatusCode >= 500:
				logger.Errorw("end_of_request", zap.Inline(cc.LogValues))
			case cc.LogValues.StatusCode >= 400:
				logger.Warnw("end_of_request", zap.Inline(cc.LogValues))
			default:
				logger.Infow("end_of_request", zap.Inline(cc.LogValues))
			}
			metrics.ResponseCodes.WithLabelValues(fmt.Sprintf("%d", cc.Response().Status)).Inc()
			return nil
		}
	}
}

func NewRecoverMiddleware(log *zap.SugaredLogger) echo.MiddlewareFunc {
	return emw.RecoverWithConfig(emw.RecoverConfig{
		StackSize: 1 << 10, // 1 KB
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			defer func() {
				_ = log.Sync()
			}()
			log.Errorw("Api Panic", "error", err.Error(), "stack", string(stack))
			return c.JSON(http.StatusInternalServerError, shared.NewErrorEnvelope(shared.ErrInternal))
		},
	})
}

// NewCORSMiddleware attaches the fixed cross-origin headers before any
// handler runs, so every response carries them.
func NewCORSMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			for key, value := range shared.CORSHeaders {
				h.Set(key, value)
			}
			return next(c)
		}
	}
}
