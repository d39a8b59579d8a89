package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/artpar/coniql/adapters/clock"
	"github.com/artpar/coniql/adapters/graphql"
	httpadapter "github.com/artpar/coniql/adapters/http"
	"github.com/artpar/coniql/adapters/metrics"
	"github.com/artpar/coniql/adapters/sim"
	"github.com/artpar/coniql/app"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

type testServer struct {
	*httptest.Server
	metrics *metrics.Collector
}

func newTestServer(t *testing.T, gqlCfg graphql.ServerConfig) *testServer {
	t.Helper()
	logger := zerolog.Nop()
	clk := clock.NewFake(time.Unix(0, 0).UTC())

	store := app.NewStore()
	if err := store.Register(sim.Transport, sim.New(clk, nil, logger), true); err != nil {
		t.Fatal(err)
	}
	store.Freeze()
	svc := app.NewChannelService(app.ChannelDeps{Store: store, Clock: clk, Logger: logger}, app.ChannelConfig{})

	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(reg)

	router := httpadapter.NewRouter(httpadapter.RouterConfig{
		GraphQL:        graphql.NewServer(svc, m, logger, gqlCfg),
		Playground:     graphql.Playground("/graphql"),
		Channels:       httpadapter.NewChannelHandler(svc, logger),
		Health:         httpadapter.NewHealthHandler(store),
		Metrics:        m,
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		Version:        "1.2.3",
	}, logger)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return &testServer{Server: srv, metrics: m}
}

func (s *testServer) do(t *testing.T, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, s.URL+path, rd)
	if err != nil {
		t.Fatal(err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, data
}

func decodeJSON(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var v map[string]any
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("decode %s: %v", data, err)
	}
	return v
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, graphql.ServerConfig{})

	resp, body := srv.do(t, http.MethodGet, "/health", "")
	if resp.StatusCode != http.StatusOK || decodeJSON(t, body)["status"] != "ok" {
		t.Errorf("liveness = %d %s", resp.StatusCode, body)
	}

	resp, body = srv.do(t, http.MethodGet, "/health/ready", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("readiness = %d %s", resp.StatusCode, body)
	}
	ready := decodeJSON(t, body)
	if ready["default_transport"] != sim.Transport {
		t.Errorf("default_transport = %v", ready["default_transport"])
	}
	if ts, _ := ready["transports"].([]any); len(ts) != 1 || ts[0] != sim.Transport {
		t.Errorf("transports = %v", ready["transports"])
	}
}

func TestReadiness_NoTransports(t *testing.T) {
	h := httpadapter.NewHealthHandler(app.NewStore())
	rec := httptest.NewRecorder()
	h.Readiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestVersion(t *testing.T) {
	srv := newTestServer(t, graphql.ServerConfig{})

	_, body := srv.do(t, http.MethodGet, "/version", "")
	v := decodeJSON(t, body)
	if v["version"] != "1.2.3" || v["service"] != "coniql" {
		t.Errorf("version = %v", v)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, graphql.ServerConfig{})

	srv.do(t, http.MethodGet, "/api/v1/channels/ssim://reg", "")
	resp, body := srv.do(t, http.MethodGet, "/metrics", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	want := `coniql_requests_total{method="GET",path="/api/v1/channels/{id}",status="2xx"} 1`
	if !strings.Contains(string(body), want) {
		t.Errorf("metrics output missing %s", want)
	}
}

func TestPlayground(t *testing.T) {
	srv := newTestServer(t, graphql.ServerConfig{})

	resp, body := srv.do(t, http.MethodGet, "/playground", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html") {
		t.Errorf("content type = %q", resp.Header.Get("Content-Type"))
	}
	if !strings.Contains(string(body), "<title>coniql</title>") {
		t.Error("page title missing")
	}

	// Not mounted unless configured.
	router := httpadapter.NewRouter(httpadapter.RouterConfig{}, zerolog.Nop())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/playground", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("unconfigured status = %d, want 404", rec.Code)
	}
}
