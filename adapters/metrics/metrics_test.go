package metrics_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/artpar/coniql/adapters/metrics"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func gather(t *testing.T, reg *prometheus.Registry) map[string]*dto.MetricFamily {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather error: %v", err)
	}
	out := make(map[string]*dto.MetricFamily, len(families))
	for _, f := range families {
		out[f.GetName()] = f
	}
	return out
}

func TestNewWithRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(reg)

	if m.RequestsTotal == nil || m.ChannelFetches == nil || m.PutBatches == nil ||
		m.SubscriptionsActive == nil || m.ConfigReloads == nil || m.WSConnections == nil {
		t.Fatal("collector has nil metrics")
	}

	// A second collector on a fresh registry must not clash.
	metrics.NewWithRegistry(prometheus.NewRegistry())
}

func TestObserveFetch(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(reg)

	m.ObserveFetch("ca", "ok", 20*time.Millisecond)
	m.ObserveFetch("ca", "TIMEOUT", 5*time.Second)
	m.ObserveFetch("ssim", "ok", time.Millisecond)

	families := gather(t, reg)
	f, ok := families["coniql_channel_fetches_total"]
	if !ok {
		t.Fatal("coniql_channel_fetches_total not found")
	}
	if len(f.GetMetric()) != 3 {
		t.Errorf("expected 3 series, got %d", len(f.GetMetric()))
	}

	h, ok := families["coniql_channel_fetch_duration_seconds"]
	if !ok {
		t.Fatal("coniql_channel_fetch_duration_seconds not found")
	}
	var samples uint64
	for _, metric := range h.GetMetric() {
		samples += metric.GetHistogram().GetSampleCount()
	}
	if samples != 3 {
		t.Errorf("histogram samples = %d, want 3", samples)
	}
}

func TestObserveBatch(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(reg)

	m.ObserveBatch("ca", "ok", 4, 10*time.Millisecond)

	families := gather(t, reg)
	size := families["coniql_put_batch_size"]
	if size == nil || size.GetMetric()[0].GetHistogram().GetSampleSum() != 4 {
		t.Errorf("put_batch_size = %v", size)
	}
	if families["coniql_put_batches_total"] == nil {
		t.Error("coniql_put_batches_total not found")
	}
}

func TestSubscriptionsActive(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(reg)

	m.SubscriptionOpened("ssim")
	m.SubscriptionOpened("ssim")
	m.SubscriptionClosed("ssim")

	f := gather(t, reg)["coniql_subscriptions_active"]
	if f == nil {
		t.Fatal("coniql_subscriptions_active not found")
	}
	if got := f.GetMetric()[0].GetGauge().GetValue(); got != 1 {
		t.Errorf("active subscriptions = %v, want 1", got)
	}
}

func TestConfigReloaded(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(reg)

	at := time.Unix(1700000000, 0)
	m.ConfigReloaded(nil, at)
	m.ConfigReloaded(errors.New("bad yaml"), at)

	families := gather(t, reg)
	if v := families["coniql_config_reloads_total"].GetMetric()[0].GetCounter().GetValue(); v != 1 {
		t.Errorf("reloads = %v, want 1", v)
	}
	if v := families["coniql_config_reload_errors_total"].GetMetric()[0].GetCounter().GetValue(); v != 1 {
		t.Errorf("reload errors = %v, want 1", v)
	}
	if v := families["coniql_config_last_reload_timestamp"].GetMetric()[0].GetGauge().GetValue(); v != 1700000000 {
		t.Errorf("last reload = %v", v)
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/graphql", "/graphql"},
		{"/api/v1/channels/ca:BL01:MTR:X", "/api/v1/channels/{id}"},
		{"/api/v1/channels", "/api/v1/channels"},
		{"/" + strings.Repeat("a", 60), "/" + strings.Repeat("a", 49) + "..."},
	}
	for _, tt := range tests {
		if got := metrics.NormalizePath(tt.path); got != tt.want {
			t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
