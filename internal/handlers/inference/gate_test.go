package inference

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gateway-api/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateOrdering(t *testing.T) {
	t.Run("missing backend wins over everything", func(t *testing.T) {
		im := NewInferenceHandler(nil, "", nil, nil)
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		_, err := im.Gate(r)
		assert.ErrorIs(t, err, shared.ErrMisconfiguredWorker)
	})

	t.Run("missing secret wins over method", func(t *testing.T) {
		im := NewInferenceHandler(&recordingBackend{}, "", nil, nil)
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		_, err := im.Gate(r)
		assert.ErrorIs(t, err, shared.ErrMissingAPIKeySecret)
	})

	t.Run("method wins over auth", func(t *testing.T) {
		im := newTestHandler(&recordingBackend{})
		for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch, http.MethodHead} {
			r := httptest.NewRequest(method, "/", nil)
			_, err := im.Gate(r)
			assert.ErrorIs(t, err, shared.ErrMethodNotAllowed, method)
		}
	})

	t.Run("auth wins over content type", func(t *testing.T) {
		im := newTestHandler(&recordingBackend{})
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not json"))
		r.Header.Set("Content-Type", "text/plain")
		_, err := im.Gate(r)
		assert.ErrorIs(t, err, shared.ErrUnauthorized)
	})

	t.Run("content type wins over size", func(t *testing.T) {
		im := newTestHandler(&recordingBackend{})
		r := newPost("{}")
		r.Header.Set("Content-Type", "text/plain")
		r.Header.Set(shared.ContentLengthHeader, "300000")
		_, err := im.Gate(r)
		assert.ErrorIs(t, err, shared.ErrInvalidContentType)
	})
}

func TestGateAuth(t *testing.T) {
	im := newTestHandler(&recordingBackend{})

	tests := []struct {
		name string
		key  *string
		ok   bool
	}{
		{name: "missing header", key: nil},
		{name: "empty header", key: ptr("")},
		{name: "whitespace header", key: ptr("   ")},
		{name: "wrong key", key: ptr("nope")},
		{name: "prefix of key", key: ptr("s3c")},
		{name: "exact key", key: ptr(testSecret), ok: true},
		{name: "padded key", key: ptr("  " + testSecret + "\t"), ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newPost(`{"input":{}}`)
			r.Header.Del(shared.APIKeyHeader)
			if tt.key != nil {
				r.Header.Set(shared.APIKeyHeader, *tt.key)
			}
			_, err := im.Gate(r)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, shared.ErrUnauthorized)
		})
	}

	t.Run("padded secret", func(t *testing.T) {
		padded := NewInferenceHandler(&recordingBackend{}, " "+testSecret+" ", nil, nil)
		_, err := padded.Gate(newPost(`{}`))
		assert.NoError(t, err)
	})

	t.Run("whitespace-only secret never matches", func(t *testing.T) {
		blank := NewInferenceHandler(&recordingBackend{}, "   ", nil, nil)
		r := newPost(`{}`)
		r.Header.Set(shared.APIKeyHeader, "   ")
		_, err := blank.Gate(r)
		assert.ErrorIs(t, err, shared.ErrUnauthorized)
	})
}

func TestGateContentType(t *testing.T) {
	im := newTestHandler(&recordingBackend{})

	for _, ct := range []string{"application/json", "Application/JSON; charset=utf-8", "application/json;v=2"} {
		r := newPost(`{}`)
		r.Header.Set("Content-Type", ct)
		_, err := im.Gate(r)
		assert.NoError(t, err, ct)
	}

	for _, ct := range []string{"", "text/plain", "application/x-www-form-urlencoded"} {
		r := newPost(`{}`)
		r.Header.Set("Content-Type", ct)
		_, err := im.Gate(r)
		assert.ErrorIs(t, err, shared.ErrInvalidContentType, ct)
	}
}

func TestGatePayloadSize(t *testing.T) {
	im := newTestHandler(&recordingBackend{})

	t.Run("declared length over limit is rejected without reading", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", failingReader{t: t})
		r.Header.Set(shared.APIKeyHeader, testSecret)
		r.Header.Set("Content-Type", "application/json")
		r.Header.Set(shared.ContentLengthHeader, "300000")
		_, err := im.Gate(r)
		assert.ErrorIs(t, err, shared.ErrPayloadTooLarge)
	})

	t.Run("declared length at limit is read", func(t *testing.T) {
		r := newPost(`{}`)
		r.Header.Set(shared.ContentLengthHeader, "262144")
		body, err := im.Gate(r)
		require.NoError(t, err)
		assert.Equal(t, `{}`, string(body))
	})

	t.Run("undeclared oversized body is rejected", func(t *testing.T) {
		r := newPost(strings.Repeat(" ", shared.MaxBodyBytes+1))
		r.Header.Del(shared.ContentLengthHeader)
		_, err := im.Gate(r)
		assert.ErrorIs(t, err, shared.ErrPayloadTooLarge)
	})

	t.Run("undeclared body at limit is accepted", func(t *testing.T) {
		r := newPost(strings.Repeat(" ", shared.MaxBodyBytes))
		body, err := im.Gate(r)
		require.NoError(t, err)
		assert.Len(t, body, shared.MaxBodyBytes)
	})

	t.Run("unparseable declared length is ignored", func(t *testing.T) {
		r := newPost(`{}`)
		r.Header.Set(shared.ContentLengthHeader, "lots")
		_, err := im.Gate(r)
		assert.NoError(t, err)
	})
}

func ptr(s string) *string {
	return &s
}
