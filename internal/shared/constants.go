package shared

import "time"

// HTTP Configuration
const (
	DefaultDialTimeout     = 2 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)

// Header names
const (
	APIKeyHeader        = "x-api-key"
	ContentLengthHeader = "Content-Length"
	JSONMediaType       = "application/json"
)

// Guardrails
const (
	MaxBodyBytes      = 256 * 1024
	MaxChatMessages   = 64
	MaxEmbeddingChars = 8000
)

// Generation parameters. Out of range values are clamped, never rejected.
const (
	DefaultTemperature = 0.7
	MinTemperature     = 0.0
	MaxTemperature     = 2.0

	DefaultMaxTokens = 512
	MinMaxTokens     = 1
	MaxMaxTokens     = 2048
)

// CORSHeaders are attached to every response, errors and preflights included.
var CORSHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "POST, OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type, x-api-key",
	"Access-Control-Max-Age":       "86400",
}
