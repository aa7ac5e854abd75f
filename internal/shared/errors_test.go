package shared

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGatewayErrorWrap(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := ErrAIInferenceFailed.Wrap(cause)

	assert.ErrorIs(t, err, ErrAIInferenceFailed)
	assert.ErrorIs(t, err, cause)
	assert.Nil(t, ErrAIInferenceFailed.Err, "sentinel must not be mutated")
	assert.NotErrorIs(t, err, ErrInvalidJSON)
}

func TestAsGatewayError(t *testing.T) {
	wrapped := fmt.Errorf("preprocess: %w", ErrMissingInput)
	assert.Equal(t, ErrMissingInput, AsGatewayError(wrapped))

	plain := AsGatewayError(errors.New("unexpected"))
	assert.Equal(t, "internal_error", plain.Code)
	assert.Equal(t, http.StatusInternalServerError, plain.StatusCode)
}

func TestMetricsCode(t *testing.T) {
	assert.Equal(t, "model_http_status_err", MetricsCode(errors.Join(ErrFailedModelReqFromCode, errors.New("status 500"))))
	assert.Equal(t, "model_context_err", MetricsCode(ErrAIInferenceFailed.Wrap(errors.Join(ErrModelContext, errors.New("canceled")))))
	assert.Equal(t, "unknown", MetricsCode(errors.New("other")))
}

func TestNewErrorEnvelope(t *testing.T) {
	env := NewErrorEnvelope(ErrUnauthorized.Wrap(errors.New("internal detail")))
	assert.False(t, env.Success)
	assert.Equal(t, "unauthorized", env.Error.Code)
	assert.Equal(t, ErrUnauthorized.Message, env.Error.Message)
}

func TestDeclaredLength(t *testing.T) {
	h := http.Header{}
	_, ok := DeclaredLength(h)
	assert.False(t, ok)

	h.Set(ContentLengthHeader, "300000")
	n, ok := DeclaredLength(h)
	assert.True(t, ok)
	assert.EqualValues(t, 300000, n)

	h.Set(ContentLengthHeader, "-5")
	_, ok = DeclaredLength(h)
	assert.False(t, ok)

	h.Set(ContentLengthHeader, "abc")
	_, ok = DeclaredLength(h)
	assert.False(t, ok)
}

func TestExtractBearerToken(t *testing.T) {
	h := http.Header{}
	_, err := ExtractBearerToken(h)
	assert.Error(t, err)

	h.Set("Authorization", "Basic abc")
	_, err = ExtractBearerToken(h)
	assert.Error(t, err)

	h.Set("Authorization", "bearer tok")
	tok, err := ExtractBearerToken(h)
	assert.NoError(t, err)
	assert.Equal(t, "tok", tok)
}
