// Package apiclient is the outbound REST client for the ByteBasket
// platform API. It is the only place that talks HTTP to the backend; the
// domain packages depend on it through their own interfaces.
//
// The client never retries and never caches. Non-success responses become
// apperror upstream errors carrying the server-provided message when one
// is present; transport failures become connection errors.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"bytebasket/internal/core/apperror"
)

const tracerName = "bytebasket/apiclient"

// TokenSource yields the bearer token for a request, or "" when the
// caller is anonymous. It is resolved per call so the client itself stays
// stateless across sessions.
type TokenSource func(ctx context.Context) string

// Client talks to the platform API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	tracer     trace.Tracer
}

// New creates a Client for baseURL (e.g. "http://localhost:3001/api").
// tokens may be nil for an always-anonymous client.
func New(baseURL string, tokens TokenSource) *Client {
	if tokens == nil {
		tokens = func(context.Context) string { return "" }
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		tokens:     tokens,
		tracer:     otel.Tracer(tracerName),
	}
}

// WithHTTPClient replaces the underlying http.Client (tests, custom
// transports).
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// doJSON performs a JSON request against path (already query-encoded) and
// decodes a 2xx body into out when out is non-nil.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return apperror.NewInternal(fmt.Errorf("encode request: %w", err))
		}
		reader = bytes.NewReader(data)
	}
	return c.do(ctx, method, path, "application/json", reader, out)
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	ctx, span := c.tracer.Start(ctx, fmt.Sprintf("api %s %s", method, routePattern(path)),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.url", c.baseURL+path),
		))
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return apperror.NewInternal(err)
	}
	if body != nil && contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if token := c.tokens(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return apperror.NewConnection(err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		span.SetStatus(codes.Error, resp.Status)
		return upstreamError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return apperror.NewUpstream(resp.StatusCode, "invalid response from API").WithCause(err)
	}
	return nil
}

// upstreamError decodes the server's error body. The API answers failures
// with {message} or {error}; anything else falls back to the status text.
func upstreamError(resp *http.Response) error {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	_ = json.Unmarshal(data, &payload)
	msg := payload.Message
	if msg == "" {
		msg = payload.Error
	}
	return apperror.NewUpstream(resp.StatusCode, msg)
}

// routePattern strips the query string so span names stay low-cardinality.
func routePattern(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		return path[:i]
	}
	return path
}
