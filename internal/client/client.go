// Package client talks to the ATS REST API. CandidateAPI and JobAPI implement
// the same façade interfaces as the local usecases, so controllers work
// unchanged against a remote server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go-ats-dashboard/pkg/apperror"
)

// DefaultBaseURL is the API served by cmd/api with default settings.
const DefaultBaseURL = "http://localhost:8080/v1"

// envelope mirrors the server's response.Response.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

// StatusError is a non-2xx reply from the API. Non-404 replies reach callers
// wrapped in apperror.NetworkFailure.
type StatusError struct {
	Method  string
	Path    string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Code, e.Message)
}

// StatusCode returns the upstream status carried by err, or 0.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return 0
}

// Client is a JSON client for one base URL prefix.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
	userAgent  string
}

func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: "atsctl/1.0",
	}
}

// SetToken sets the bearer token sent with every request.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) Get(ctx context.Context, path string, params url.Values, dest any) error {
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	return c.do(ctx, http.MethodGet, path, nil, dest)
}

func (c *Client) Post(ctx context.Context, path string, body, dest any) error {
	return c.do(ctx, http.MethodPost, path, body, dest)
}

func (c *Client) Put(ctx context.Context, path string, body, dest any) error {
	return c.do(ctx, http.MethodPut, path, body, dest)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do sends one request. A 404 becomes apperror.NotFound; every other
// failure, including transport errors, becomes apperror.NetworkFailure.
func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return apperror.NetworkFailure(fmt.Errorf("%s %s: %w", method, path, err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperror.NetworkFailure(fmt.Errorf("read response body: %w", err))
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode == http.StatusNotFound {
		msg := env.Message
		if decodeErr != nil || msg == "" {
			msg = "Not found"
		}
		return apperror.NotFound(msg)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := strings.TrimSpace(env.Message)
		if decodeErr != nil || msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return apperror.NetworkFailure(&StatusError{Method: method, Path: path, Code: resp.StatusCode, Message: msg})
	}
	if decodeErr != nil {
		return apperror.NetworkFailure(fmt.Errorf("decode response: %w", decodeErr))
	}

	if dest == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, dest); err != nil {
		return apperror.NetworkFailure(fmt.Errorf("decode response data: %w", err))
	}
	return nil
}
