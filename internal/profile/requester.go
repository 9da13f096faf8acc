// Package profile holds what the game clients share: the HTTP requester
// and the typed failure returned to the dispatcher.
package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// MaxResponseBytes bounds how much of an upstream body is read.
const MaxResponseBytes = 4 << 20

// Requester performs JSON calls against one upstream API family.
type Requester struct {
	game   string
	client *http.Client
}

func NewRequester(game string, timeout time.Duration) *Requester {
	return &Requester{
		game: game,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetJSON issues a GET and decodes a 2xx body into out.
func (r *Requester) GetJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &FetchError{Game: r.game, Reason: ReasonTransport, Err: err}
	}
	return r.do(req, out)
}

// PostJSON marshals payload, POSTs it and decodes a 2xx body into out.
func (r *Requester) PostJSON(ctx context.Context, url string, payload, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return &FetchError{Game: r.game, Reason: ReasonDecode, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return &FetchError{Game: r.game, Reason: ReasonTransport, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	return r.do(req, out)
}

func (r *Requester) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return &FetchError{Game: r.game, Reason: ReasonTransport, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
	if err != nil {
		return &FetchError{Game: r.game, Reason: ReasonTransport, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(r.game, resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &FetchError{
			Game:   r.game,
			Reason: ReasonDecode,
			Err:    fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err),
		}
	}
	return nil
}
