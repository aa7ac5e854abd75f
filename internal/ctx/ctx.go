// Package ctx
package ctx

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ContextLogValues should only be accessed for logging, and not for
// actual business logic, or any other logic
type ContextLogValues struct {
	// Added in base middleware
	RequestID       string
	StartTime       time.Time
	StatusCode      int
	RequestDuration time.Duration
	Method          string
	Path            string

	// Added by the gateway pipeline
	Task      string
	Model     string
	ErrorCode string

	// Added dynamically
	Error error
}

// AddError adds errors to the error chain. Always add errors, even if only warnings.
// Log level is determined by the status code of the request
func (c *ContextLogValues) AddError(err error) {
	if err == nil {
		return
	}
	if c.Error == nil {
		c.Error = err
		return
	}
	c.Error = fmt.Errorf("%w: %w", err, c.Error)
}

func (c *ContextLogValues) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("request_id", c.RequestID)
	enc.AddTime("start_time", c.StartTime)
	enc.AddDuration("request_duration", c.RequestDuration)
	enc.AddInt("status_code", c.StatusCode)
	enc.AddString("method", c.Method)
	enc.AddString("path", c.Path)
	if c.Task != "" {
		enc.AddString("task", c.Task)
	}
	if c.Model != "" {
		enc.AddString("model", c.Model)
	}
	if c.ErrorCode != "" {
		enc.AddString("error_code", c.ErrorCode)
	}
	if c.Error != nil {
		enc.AddString("error", c.Error.Error())
	}
	return nil
}

type Context struct {
	echo.Context
	Log       *zap.SugaredLogger
	Reqid     string
	LogValues *ContextLogValues
}

// From returns the gateway context wrapped around c, building a bare one when
// c did not pass through the track middleware.
func From(c echo.Context, log *zap.SugaredLogger) *Context {
	if cc, ok := c.(*Context); ok {
		return cc
	}
	return &Context{
		Context:   c,
		Log:       log,
		LogValues: &ContextLogValues{StartTime: time.Now()},
	}
}
