package inference

import (
	"crypto/subtle"
	"io"
	"net/http"
	"strings"

	"gateway-api/internal/shared"

	"github.com/labstack/echo/v4"
)

// Gate runs the request guardrails in order and returns the raw body.
// The first failing check wins. OPTIONS is handled before Gate is called.
func (im *InferenceHandler) Gate(r *http.Request) ([]byte, error) {
	if im.Backend == nil {
		return nil, shared.ErrMisconfiguredWorker
	}
	if im.Secret == "" {
		return nil, shared.ErrMissingAPIKeySecret
	}
	if r.Method != http.MethodPost {
		return nil, shared.ErrMethodNotAllowed
	}
	if !keysMatch(r.Header.Get(shared.APIKeyHeader), im.Secret) {
		return nil, shared.ErrUnauthorized
	}
	if !shared.IsJSONContentType(r.Header.Get(echo.HeaderContentType)) {
		return nil, shared.ErrInvalidContentType
	}
	if n, ok := shared.DeclaredLength(r.Header); ok && n > shared.MaxBodyBytes {
		return nil, shared.ErrPayloadTooLarge
	}

	body, err := readBounded(r.Body)
	if err != nil {
		return nil, err
	}
	return body, nil
}

func keysMatch(provided, secret string) bool {
	provided = strings.TrimSpace(provided)
	secret = strings.TrimSpace(secret)
	if provided == "" || secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) == 1
}

// readBounded reads at most one byte past the body limit so oversized bodies
// are detected without buffering them.
func readBounded(body io.Reader) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	raw, err := io.ReadAll(io.LimitReader(body, shared.MaxBodyBytes+1))
	if err != nil {
		return nil, shared.ErrInvalidJSON.Wrap(err)
	}
	if len(raw) > shared.MaxBodyBytes {
		return nil, shared.ErrPayloadTooLarge
	}
	return raw, nil
}
