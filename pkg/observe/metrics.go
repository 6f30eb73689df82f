// Package observe holds the OpenTelemetry instruments for the cafe assistant
// and the Prometheus bridge used to scrape them from /metrics.
//
// Every recording helper is safe on a nil *Metrics so callers can run without
// telemetry in tests.
package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/tanpawarit/namaste-bites-agent"

// Chat outcomes.
const (
	OutcomeOK      = "ok"
	OutcomeOffline = "offline"
	OutcomeError   = "error"
)

// Tool call statuses.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

type Metrics struct {
	// ChatRequests counts /chat calls by attribute.String("outcome", ...).
	ChatRequests metric.Int64Counter

	// ToolCalls counts tool invocations by tool and status.
	ToolCalls metric.Int64Counter

	// AgentDuration tracks one full reasoning loop.
	AgentDuration metric.Float64Histogram

	// HTTPRequestDuration tracks request handling time by method and path.
	HTTPRequestDuration metric.Float64Histogram
}

var latencyBuckets = []float64{
	0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60,
}

func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.ChatRequests, err = m.Int64Counter("cafe.chat.requests",
		metric.WithDescription("Chat requests handled, by outcome."),
	); err != nil {
		return nil, err
	}
	if met.ToolCalls, err = m.Int64Counter("cafe.tool.calls",
		metric.WithDescription("Tool invocations issued by the agent, by tool and status."),
	); err != nil {
		return nil, err
	}
	if met.AgentDuration, err = m.Float64Histogram("cafe.agent.duration",
		metric.WithDescription("Latency of one agent reasoning loop."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.HTTPRequestDuration, err = m.Float64Histogram("cafe.http.request.duration",
		metric.WithDescription("Latency of HTTP request handling."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}

	return met, nil
}

func (m *Metrics) RecordChat(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.ChatRequests.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func (m *Metrics) RecordToolCall(ctx context.Context, tool string, err error) {
	if m == nil {
		return
	}
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	m.ToolCalls.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tool", tool),
		attribute.String("status", status),
	))
}

func (m *Metrics) RecordAgentDuration(ctx context.Context, d time.Duration) {
	if m == nil {
		return
	}
	m.AgentDuration.Record(ctx, d.Seconds())
}

func (m *Metrics) RecordHTTPRequest(ctx context.Context, method string, path string, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestDuration.Record(ctx, d.Seconds(), metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("path", path),
	))
}
