// Package backend defines the inference capability the gateway forwards to
// and its HTTP implementation.
package backend

import "context"

// Backend runs a single inference call. The returned result is passed to the
// caller unchanged. Implementations must honor ctx cancellation.
type Backend interface {
	Run(ctx context.Context, model string, payload map[string]any) (any, error)
}
