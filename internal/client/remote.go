package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/yourname/wellnesstracker/internal"
)

// Remote issues JSON requests against a configured base URL. Failures are
// surfaced as the server-supplied message when one is present, otherwise a
// generic status-code message. No retries; the first error wins.
type Remote struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     internal.Logger
}

func NewRemote(baseURL string, tokens TokenSource, logger internal.Logger) *Remote {
	return &Remote{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		tokens:     tokens,
		logger:     logger,
	}
}

func (r *Remote) do(ctx context.Context, method, path string, body interface{}, withAuth bool, out interface{}) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, rd)
	if err != nil {
		r.logger.Errorf("failed to create request: %v", err)
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if withAuth {
		if tok := r.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.logger.Errorf("%s %s failed: %v", method, path, err)
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Message string `json:"message"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Message != "" {
			return internal.NewAppError(resp.StatusCode, apiErr.Message)
		}
		return internal.NewAppError(resp.StatusCode, fmt.Sprintf("HTTP error, status %d", resp.StatusCode))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (r *Remote) Login(ctx context.Context, data internal.LoginData) (*internal.AuthResponse, error) {
	var res internal.AuthResponse
	if err := r.do(ctx, http.MethodPost, "/auth/login", data, false, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *Remote) Signup(ctx context.Context, data internal.SignupData) (*internal.AuthResponse, error) {
	var res internal.AuthResponse
	if err := r.do(ctx, http.MethodPost, "/auth/signup", data, false, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ListLogs asks for the caller's logs; the server derives the user from
// the bearer token, so userID is not sent on the wire.
func (r *Remote) ListLogs(ctx context.Context, userID string) ([]internal.WellnessLog, error) {
	var logs []internal.WellnessLog
	if err := r.do(ctx, http.MethodGet, "/wellness-logs", nil, true, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *Remote) CreateLog(ctx context.Context, userID string, form internal.WellnessLogForm) (*internal.WellnessLog, error) {
	var log internal.WellnessLog
	if err := r.do(ctx, http.MethodPost, "/wellness-logs", form, true, &log); err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *Remote) UpdateLog(ctx context.Context, logID string, patch internal.WellnessLogPatch) (*internal.WellnessLog, error) {
	var log internal.WellnessLog
	if err := r.do(ctx, http.MethodPut, "/wellness-logs/"+logID, patch, true, &log); err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *Remote) DeleteLog(ctx context.Context, logID string) error {
	// The acknowledgement body is discarded.
	return r.do(ctx, http.MethodDelete, "/wellness-logs/"+logID, nil, true, nil)
}

var _ Backend = (*Remote)(nil)
