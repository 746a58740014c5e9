package apiclient

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
)

// HealthProbe checks whether a backend health URL answers at all. It is
// independent of the API base URL: the original deployment exposes its
// health endpoint on a different port.
type HealthProbe struct {
	url        string
	httpClient *http.Client
}

// NewHealthProbe creates a probe for url (e.g. "http://localhost:5000").
func NewHealthProbe(url string) *HealthProbe {
	return &HealthProbe{
		url:        url,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// Check reports backend reachability and the round-trip latency.
func (p *HealthProbe) Check(ctx context.Context) (reachable bool, latency time.Duration, err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "health probe")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return false, 0, err
	}
	start := time.Now()
	resp, err := p.httpClient.Do(req)
	latency = time.Since(start)
	if err != nil {
		return false, latency, err
	}
	defer resp.Body.Close()
	return resp.StatusCode < 500, latency, nil
}
