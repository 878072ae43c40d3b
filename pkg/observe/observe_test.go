package observe_test

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/metric/noop"

	"github.com/goliatone/go-flavour/pkg/observe"
)

func TestNop(t *testing.T) {
	var m observe.Metrics = observe.Nop{}
	// Must not panic.
	m.RecordLookup(context.Background(), "index.html", true)
	m.RecordLookup(context.Background(), "index.html", false)
}

func TestNewOTelMetrics(t *testing.T) {
	m, err := observe.NewOTelMetrics(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatalf("new otel metrics: %v", err)
	}
	// Recording against a no-op meter must not panic.
	m.RecordLookup(context.Background(), "index.html", false)
}

func TestMetricsFunc(t *testing.T) {
	var gotKey string
	var gotHit bool

	m := observe.MetricsFunc(func(_ context.Context, key string, hit bool) {
		gotKey = key
		gotHit = hit
	})

	m.RecordLookup(context.Background(), "mobile/index.html", true)
	if gotKey != "mobile/index.html" || !gotHit {
		t.Fatalf("recorded (%q, %v), want (%q, true)", gotKey, gotHit, "mobile/index.html")
	}
}
