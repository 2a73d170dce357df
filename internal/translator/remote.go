package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// TranslatePath is the endpoint served by the translation service.
const TranslatePath = "/api/translate"

// Response is the JSON body of a translate call.
type Response struct {
	Translation string `json:"translation"`
	Error       string `json:"error,omitempty"`
}

// Remote calls a translation service over HTTP.
type Remote struct {
	baseURL string
	client  *http.Client
}

// NewRemote returns a client for the service at baseURL. timeout bounds the
// whole exchange; zero means no client-side limit.
func NewRemote(baseURL string, timeout time.Duration) *Remote {
	return &Remote{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:    5,
				IdleConnTimeout: 30 * time.Second,
			},
		},
	}
}

func (r *Remote) Translate(ctx context.Context, req Request) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", &BackendError{Err: fmt.Errorf("encode request: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+TranslatePath, bytes.NewReader(body))
	if err != nil {
		return "", &BackendError{Err: fmt.Errorf("create request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return "", Classify(ctx.Err())
		}
		return "", Classify(fmt.Errorf("translate request: %w", err))
	}
	defer resp.Body.Close()

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		if ctx.Err() != nil {
			return "", Classify(ctx.Err())
		}
		return "", &BackendError{Err: fmt.Errorf("decode response (HTTP %d): %w", resp.StatusCode, err)}
	}
	if resp.StatusCode != http.StatusOK {
		msg := out.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return "", &BackendError{Err: fmt.Errorf("HTTP %d: %s", resp.StatusCode, msg)}
	}
	return out.Translation, nil
}
