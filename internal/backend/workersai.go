package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"gateway-api/internal/shared"

	"go.uber.org/zap"
)

const DefaultWorkersAIBaseURL = "https://api.cloudflare.com/client/v4"

type WorkersAIConfig struct {
	BaseURL   string
	AccountID string
	APIToken  string
}

// Configured reports whether enough is set to reach the backend.
func (c WorkersAIConfig) Configured() bool {
	return strings.TrimSpace(c.AccountID) != "" && strings.TrimSpace(c.APIToken) != ""
}

// WorkersAI calls the Workers AI REST endpoint
// `POST {base}/accounts/{account}/ai/run/{model}`.
type WorkersAI struct {
	cfg    WorkersAIConfig
	client *http.Client
	log    *zap.SugaredLogger
}

type runResponse struct {
	Success bool            `json:"success"`
	Result  json.RawMessage `json:"result"`
	Errors  []runError      `json:"errors"`
}

type runError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewWorkersAI(cfg WorkersAIConfig, log *zap.SugaredLogger) *WorkersAI {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultWorkersAIBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	// No overall client timeout; the request context bounds the call.
	tr := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: shared.DefaultDialTimeout,
		}).DialContext,
		TLSHandshakeTimeout: shared.DefaultDialTimeout,
		DisableKeepAlives:   false,
	}

	return &WorkersAI{
		cfg:    cfg,
		client: &http.Client{Transport: tr},
		log:    log,
	}
}

func (w *WorkersAI) runURL(model string) string {
	return fmt.Sprintf("%s/accounts/%s/ai/run/%s", w.cfg.BaseURL, w.cfg.AccountID, model)
}

// Run forwards payload to model. It makes exactly one attempt.
func (w *WorkersAI) Run(ctx context.Context, model string, payload map[string]any) (any, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed encoding payload: %w", err)
	}

	r, err := http.NewRequestWithContext(ctx, http.MethodPost, w.runURL(model), bytes.NewReader(body))
	if err != nil {
		return nil, errors.Join(shared.ErrFailedModelReq, err)
	}

	headers := map[string]string{
		"Content-Type":  "application/json",
		"Authorization": "Bearer " + w.cfg.APIToken,
	}
	for key, value := range headers {
		r.Header.Set(key, value)
	}

	res, err := w.client.Do(r)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.Join(shared.ErrModelContext, err)
		}
		return nil, errors.Join(shared.ErrFailedModelReq, err)
	}
	defer func() {
		if closeErr := res.Body.Close(); closeErr != nil {
			w.log.Warnw("Failed to close response body", "error", closeErr)
		}
	}()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.Join(shared.ErrModelContext, err)
		}
		return nil, errors.Join(shared.ErrFailedReadingResponse, err)
	}

	if res.StatusCode != http.StatusOK {
		return nil, errors.Join(shared.ErrFailedModelReqFromCode, fmt.Errorf("status %d", res.StatusCode))
	}

	var out runResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errors.Join(shared.ErrFailedReadingResponse, err)
	}
	if !out.Success {
		errs := []error{shared.ErrModelUnsuccessful}
		for _, e := range out.Errors {
			errs = append(errs, fmt.Errorf("code %d: %s", e.Code, e.Message))
		}
		return nil, errors.Join(errs...)
	}
	if len(out.Result) == 0 {
		return nil, errors.Join(shared.ErrFailedReadingResponse, errors.New("missing result"))
	}

	return out.Result, nil
}
