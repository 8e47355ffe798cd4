package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"wallet_tracker/internal/infrastructure/telemetry"
	"wallet_tracker/internal/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	userAgent           = "wallet_tracker/1.0"
	maxResponseBodySize = 64 << 20
	defaultTimeout      = 10 * time.Second
)

// errSoftFailure marks a well-formed response whose payload reports an API-level failure.
var errSoftFailure = errors.New("upstream reported failure")

// request describes one GET against an upstream API.
type request struct {
	endpoint string // metric/span label, e.g. "txlist"
	url      string
	logURL   string // url with secrets stripped
	headers  map[string]string
	timeout  time.Duration
	// check runs after a successful decode; a non-nil error is counted as a soft failure.
	check func() error
}

// fetcher wraps a fasthttp client shared by the adapters of one upstream API.
type fetcher struct {
	client *fasthttp.Client
	api    string
	logger *zap.Logger
}

func newFetcher(api string, logger *zap.Logger) *fetcher {
	return &fetcher{
		client: &fasthttp.Client{
			Name:                api,
			MaxResponseBodySize: maxResponseBodySize,
			ReadBufferSize:      16 << 10,
		},
		api:    api,
		logger: logger,
	}
}

// getJSON performs the request and decodes the body into out.
// The effective deadline is the adapter timeout, shortened by the context deadline if earlier.
func (f *fetcher) getJSON(ctx context.Context, r request, out any) error {
	ctx, span := telemetry.StartSpan(ctx, f.api+"."+r.endpoint)
	defer span.End()
	span.SetAttributes(attribute.String("http.url", r.logURL))

	start := time.Now()
	outcome, err := f.do(ctx, r, out)
	metrics.ObserveUpstream(f.api, r.endpoint, outcome, time.Since(start))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
	}
	return err
}

func (f *fetcher) do(ctx context.Context, r request, out any) (string, error) {
	if err := ctx.Err(); err != nil {
		return metrics.OutcomeTransport, err
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(r.url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.SetUserAgent(userAgent)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	timeout := r.timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	deadline := time.Now().Add(timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	f.logger.Debug("Requesting upstream", zap.String("endpoint", r.endpoint), zap.String("url", r.logURL))
	if err := f.client.DoDeadline(req, resp, deadline); err != nil {
		return metrics.OutcomeTransport, fmt.Errorf("failed to execute request to %s: %w", r.logURL, err)
	}

	body := resp.Body()
	if resp.StatusCode() != fasthttp.StatusOK {
		return metrics.OutcomeHTTPStatus, fmt.Errorf("request to %s failed with status %d: %s",
			r.logURL, resp.StatusCode(), truncate(body, 256))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return metrics.OutcomeDecode, fmt.Errorf("failed to decode response from %s: %w", r.logURL, err)
	}

	if r.check != nil {
		if err := r.check(); err != nil {
			return metrics.OutcomeSoftFailure, err
		}
	}
	return metrics.OutcomeOK, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
