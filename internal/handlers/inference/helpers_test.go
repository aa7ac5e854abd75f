package inference

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"gateway-api/internal/shared"
	"gateway-api/internal/tasks"

	"go.uber.org/zap"
)

const testSecret = "s3cret"

// recordingBackend captures the exact model and payload it receives.
type recordingBackend struct {
	mu        sync.Mutex
	calls     int
	model     string
	payload   map[string]any
	result    any
	err       error
	panicWith any
}

func (r *recordingBackend) Run(ctx context.Context, model string, payload map[string]any) (any, error) {
	r.mu.Lock()
	r.calls++
	r.model = model
	r.payload = payload
	r.mu.Unlock()

	if r.panicWith != nil {
		panic(r.panicWith)
	}
	if r.err != nil {
		return nil, r.err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.result, nil
}

func newTestHandler(be *recordingBackend) *InferenceHandler {
	return NewInferenceHandler(be, testSecret, tasks.DefaultModelTable(), zap.NewNop().Sugar())
}

func newPost(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set(shared.APIKeyHeader, testSecret)
	r.Header.Set("Content-Type", "application/json")
	return r
}

// failingReader fails the test if the gate reads the body.
type failingReader struct {
	t *testing.T
}

func (f failingReader) Read([]byte) (int, error) {
	f.t.Errorf("body must not be read")
	return 0, io.EOF
}

func chatMessages(n int) []any {
	messages := make([]any, n)
	for i := range messages {
		messages[i] = map[string]any{"role": "user", "content": "hello"}
	}
	return messages
}
