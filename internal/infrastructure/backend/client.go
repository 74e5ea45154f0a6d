// Package backend implements the gateway interfaces against the remote
// store API over HTTP. Every request carries the session's bearer token,
// taken from the request context; responses are decoded as-is and trusted.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/opticore/optipos/pkg/apperror"
)

type tokenKey struct{}

// WithToken attaches the store API bearer token to the context. The session
// middleware sets it once per request; every gateway call downstream picks
// it up from here.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFrom extracts the store API bearer token from the context.
func TokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// Client is the shared HTTP transport for all gateway implementations.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a store API client. A request timeout is always set so
// a hung backend surfaces as an error instead of a forever-spinning screen.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// upstreamError mirrors the store API's error body.
type upstreamError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("backend: encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("backend: build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(ctx, req)

	return c.send(req, path, out)
}

// doMultipart uploads a single file field plus nothing else, as the store
// API expects for logo and image uploads.
func (c *Client) doMultipart(ctx context.Context, path, field, filename string, data []byte, out interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("backend: multipart %s: %w", path, err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("backend: multipart %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("backend: multipart %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("backend: build POST %s: %w", path, err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	c.authorize(ctx, req)

	return c.send(req, path, out)
}

func (c *Client) authorize(ctx context.Context, req *http.Request) {
	if token := TokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept", "application/json")
}

func (c *Client) send(req *http.Request, path string, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return apperror.NewUpstreamError(http.StatusBadGateway,
			fmt.Sprintf("store API unreachable: %v", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperror.NewUpstreamError(http.StatusBadGateway,
			fmt.Sprintf("store API read failed: %v", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var ue upstreamError
		_ = json.Unmarshal(raw, &ue)
		msg := ue.Message
		if msg == "" {
			msg = ue.Error
		}
		if msg == "" {
			msg = fmt.Sprintf("store API returned %s for %s", resp.Status, path)
		}
		return apperror.NewUpstreamError(resp.StatusCode, msg)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return apperror.NewUpstreamError(http.StatusBadGateway,
			fmt.Sprintf("store API sent malformed response for %s: %v", path, err))
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// listQuery translates gateway list params into the store API's query shape.
func listQuery(page, perPage int, search string) url.Values {
	q := url.Values{}
	if page > 0 {
		q.Set("page", fmt.Sprint(page))
	}
	if perPage > 0 {
		q.Set("per_page", fmt.Sprint(perPage))
	}
	if search != "" {
		q.Set("search", search)
	}
	return q
}
