// Package api wraps the outbound HTTP surface of the Arepabuelas backend.
// Every request carries the persisted bearer token; non-success responses
// are normalized into *APIError values carrying the backend's raw text.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// TokenSource yields the persisted bearer token, or "" when logged out.
type TokenSource interface {
	Token() string
}

// Upload is a file attached to a multipart request.
type Upload struct {
	Filename string
	Content  []byte
}

type Config struct {
	BaseURL    string
	Tokens     TokenSource
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

type Client struct {
	baseURL string
	tokens  TokenSource
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[response]
	log     zerolog.Logger
}

type response struct {
	status int
	body   []byte
}

func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   30 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	breaker := gobreaker.NewCircuitBreaker[response](gobreaker.Settings{
		Name:    "backend",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		tokens:  cfg.Tokens,
		http:    httpClient,
		breaker: breaker,
		log:     cfg.Logger,
	}
}

// get issues an idempotent GET, retried with exponential backoff on
// transport errors and 5xx responses.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	op := func() ([]byte, error) {
		body, err := c.roundTrip(ctx, http.MethodGet, path, nil, "")
		if err != nil && !retryable(err) {
			return nil, backoff.Permanent(err)
		}
		return body, err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 100 * time.Millisecond
	bo.MaxElapsedTime = 5 * time.Second
	return backoff.RetryWithData(op, backoff.WithMaxRetries(backoff.WithContext(bo, ctx), 2))
}

// postJSON serializes payload as a JSON body. A nil payload sends no body.
func (c *Client) postJSON(ctx context.Context, path string, payload any) ([]byte, error) {
	var body []byte
	contentType := ""
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		contentType = "application/json"
	}
	return c.roundTrip(ctx, http.MethodPost, path, body, contentType)
}

// postMultipart sends a prebuilt multipart body as-is; the caller supplies
// the content type so the part boundary survives untouched.
func (c *Client) postMultipart(ctx context.Context, path string, body []byte, contentType string) ([]byte, error) {
	return c.roundTrip(ctx, http.MethodPost, path, body, contentType)
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body []byte, contentType string) ([]byte, error) {
	start := time.Now()

	res, err := c.breaker.Execute(func() (response, error) {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
		if err != nil {
			return response{}, fmt.Errorf("build request: %w", err)
		}
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("X-Request-ID", uuid.NewString())
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return response{}, fmt.Errorf("request %s %s: %w", method, path, err)
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return response{}, fmt.Errorf("read response %s %s: %w", method, path, err)
		}

		// 5xx counts as a breaker failure; 4xx is the caller's problem.
		if resp.StatusCode >= http.StatusInternalServerError {
			return response{}, &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(data))}
		}
		return response{status: resp.StatusCode, body: data}, nil
	})
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("backend call failed")
		return nil, err
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", res.status).
		Dur("elapsed", time.Since(start)).
		Msg("backend call")

	if res.status >= http.StatusBadRequest {
		return nil, &APIError{Status: res.status, Message: strings.TrimSpace(string(res.body))}
	}
	// Empty and no-content responses are a successful null result.
	if res.status == http.StatusNoContent || len(res.body) == 0 {
		return nil, nil
	}
	return res.body, nil
}

func retryable(err error) bool {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status >= http.StatusInternalServerError
	}
	return true
}

func decodeInto(data []byte, out any) error {
	if data == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// multipartBody builds a two-part form: a JSON part plus an optional file.
func multipartBody(jsonField string, payload any, fileField string, file *Upload) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q`, jsonField))
	hdr.Set("Content-Type", "application/json")
	part, err := w.CreatePart(hdr)
	if err != nil {
		return nil, "", fmt.Errorf("create %s part: %w", jsonField, err)
	}
	if err := json.NewEncoder(part).Encode(payload); err != nil {
		return nil, "", fmt.Errorf("encode %s part: %w", jsonField, err)
	}

	if file != nil {
		fw, err := w.CreateFormFile(fileField, file.Filename)
		if err != nil {
			return nil, "", fmt.Errorf("create %s part: %w", fileField, err)
		}
		if _, err := fw.Write(file.Content); err != nil {
			return nil, "", fmt.Errorf("write %s part: %w", fileField, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("finish multipart body: %w", err)
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
