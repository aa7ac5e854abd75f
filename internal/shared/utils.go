// Package shared holds the constants, error taxonomy and wire types used
// across the gateway.
package shared

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
)

var (
	errMissingAuth   = errors.New("missing authorization header")
	errInvalidFormat = errors.New("invalid authentication format")
)

// ExtractBearerToken reads an `Authorization: Bearer <token>` header.
func ExtractBearerToken(h http.Header) (string, error) {
	auth := h.Get("Authorization")
	if auth == "" {
		return "", errMissingAuth
	}

	parts := strings.Split(auth, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
		return "", errInvalidFormat
	}
	return parts[1], nil
}

// DeclaredLength returns the request's Content-Length header when it holds a
// non-negative integer.
func DeclaredLength(h http.Header) (int64, bool) {
	raw := strings.TrimSpace(h.Get(ContentLengthHeader))
	if raw == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// IsJSONContentType reports whether a content-type header mentions
// application/json, in any case.
func IsJSONContentType(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), JSONMediaType)
}

// NumberOr returns v as a float64 when it is a JSON number, otherwise fallback.
func NumberOr(v any, fallback float64) float64 {
	if f, ok := v.(float64); ok {
		return f
	}
	return fallback
}
