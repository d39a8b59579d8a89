package pvws_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/artpar/coniql/adapters/clock"
	"github.com/artpar/coniql/adapters/pvws"
	"github.com/artpar/coniql/domain/channel"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// gateway is a scripted PVWS server.
type gateway struct {
	t        *testing.T
	server   *httptest.Server
	upgrader websocket.Upgrader
	dials    atomic.Int32
	received chan map[string]any

	mu      sync.Mutex
	conns   []*websocket.Conn
	replies map[string][]map[string]any // sent on subscribe, keyed by pv
}

func newGateway(t *testing.T) *gateway {
	t.Helper()
	g := &gateway{
		t:        t,
		upgrader: websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
		received: make(chan map[string]any, 100),
		replies:  make(map[string][]map[string]any),
	}
	g.server = httptest.NewServer(http.HandlerFunc(g.handle))
	t.Cleanup(g.server.Close)
	return g
}

func (g *gateway) url() string { return "ws" + g.server.URL[4:] + "/pvws/pv" }

func (g *gateway) onSubscribe(pv string, msgs ...map[string]any) {
	g.mu.Lock()
	g.replies[pv] = msgs
	g.mu.Unlock()
}

func (g *gateway) handle(w http.ResponseWriter, r *http.Request) {
	ws, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	g.dials.Add(1)
	g.mu.Lock()
	g.conns = append(g.conns, ws)
	g.mu.Unlock()

	for {
		var msg map[string]any
		if err := ws.ReadJSON(&msg); err != nil {
			return
		}
		g.received <- msg
		if msg["type"] != "subscribe" {
			continue
		}
		for _, pv := range msg["pvs"].([]any) {
			g.mu.Lock()
			for _, reply := range g.replies[pv.(string)] {
				_ = ws.WriteJSON(reply)
			}
			g.mu.Unlock()
		}
	}
}

// push sends msg on the most recent connection.
func (g *gateway) push(msg map[string]any) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.conns[len(g.conns)-1].WriteJSON(msg); err != nil {
		g.t.Fatalf("push: %v", err)
	}
}

func (g *gateway) dropAll() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, c := range g.conns {
		_ = c.Close()
	}
}

// expect waits for the next client message of the given type.
func (g *gateway) expect(typ string) map[string]any {
	g.t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case msg := <-g.received:
			if msg["type"] == typ {
				return msg
			}
		case <-timeout:
			g.t.Fatalf("no %q message from client", typ)
			return nil
		}
	}
}

var stamp = time.Unix(1700000000, 0).UTC()

func newPlugin(t *testing.T, g *gateway, scheme string) *pvws.Plugin {
	t.Helper()
	p, err := pvws.New(pvws.Options{Scheme: scheme, URL: g.url(), DialTimeout: time.Second},
		nil, clock.NewFake(stamp), zerolog.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func TestNew_Invalid(t *testing.T) {
	if _, err := pvws.New(pvws.Options{Scheme: "tango", URL: "ws://x"}, nil, clock.Real{}, zerolog.Nop()); err == nil {
		t.Error("expected error for unknown scheme")
	}
	if _, err := pvws.New(pvws.Options{Scheme: pvws.SchemeCA, URL: "http://x"}, nil, clock.Real{}, zerolog.Nop()); err == nil {
		t.Error("expected error for non-websocket url")
	}
}

func TestGetChannel(t *testing.T) {
	g := newGateway(t)
	g.onSubscribe("BL01:MTR:X", map[string]any{
		"type": "update", "pv": "BL01:MTR:X",
		"value": 3.25, "severity": "MINOR", "units": "mm", "precision": 2,
		"min": -10, "max": 10, "description": "Stage X",
		"seconds": 1600000000, "nanos": 500,
	})
	p := newPlugin(t, g, pvws.SchemeCA)
	cfg, _ := p.ChannelConfig("BL01:MTR:X")

	snap, err := p.GetChannel(context.Background(), "BL01:MTR:X", time.Second, cfg)
	if err != nil {
		t.Fatalf("GetChannel: %v", err)
	}
	if v, _ := snap.Value.Float(); v != 3.25 {
		t.Errorf("value = %v, want 3.25", v)
	}
	if got := snap.Value.String(true); got != "3.25 mm" {
		t.Errorf("String(true) = %q", got)
	}
	if snap.Status.Quality != channel.QualityWarning || !snap.Status.Mutable {
		t.Errorf("status = %+v", snap.Status)
	}
	if snap.Display.Description != "Stage X" || snap.Display.DisplayRange == nil || snap.Display.DisplayRange.Max != 10 {
		t.Errorf("display = %+v", snap.Display)
	}
	if want := time.Unix(1600000000, 500); !snap.Time.Datetime().Equal(want) {
		t.Errorf("time = %v, want %v", snap.Time.Datetime(), want)
	}

	sub := g.expect("subscribe")
	if pvs := sub["pvs"].([]any); len(pvs) != 1 || pvs[0] != "BL01:MTR:X" {
		t.Errorf("subscribe pvs = %v", pvs)
	}
	g.expect("clear")
}

func TestGetChannel_PVAPrefixAndArray(t *testing.T) {
	g := newGateway(t)
	// [1.5, -2] as little-endian float64.
	g.onSubscribe("pva://WAVE", map[string]any{
		"type": "update", "pv": "pva://WAVE", "b64dbl": "AAAAAAAA+D8AAAAAAAAAwA==",
	})
	p := newPlugin(t, g, pvws.SchemePVA)

	snap, err := p.GetChannel(context.Background(), "WAVE", time.Second, channel.Config{Name: "WAVE", ReadPV: "WAVE"})
	if err != nil {
		t.Fatalf("GetChannel: %v", err)
	}
	if !reflect.DeepEqual(snap.Value.Raw, []float64{1.5, -2}) {
		t.Errorf("value = %#v", snap.Value.Raw)
	}
	if snap.Display.Widget != channel.WidgetPlot {
		t.Errorf("widget = %s, want PLOT", snap.Display.Widget)
	}
	if !snap.Time.Datetime().Equal(stamp) {
		t.Errorf("time = %v, want clock time", snap.Time.Datetime())
	}
}

func TestGetChannel_Timeout(t *testing.T) {
	g := newGateway(t)
	p := newPlugin(t, g, pvws.SchemeCA)

	_, err := p.GetChannel(context.Background(), "SILENT", 20*time.Millisecond, channel.Config{})
	if !errors.Is(err, channel.ErrTimeout) {
		t.Fatalf("error = %v, want ErrTimeout", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.GetChannel(ctx, "SILENT", time.Second, channel.Config{}); errors.Is(err, channel.ErrTimeout) {
		t.Errorf("cancelled caller should not see ErrTimeout, got %v", err)
	}
}

func TestSubscribe(t *testing.T) {
	g := newGateway(t)
	g.onSubscribe("ENUM", map[string]any{
		"type": "update", "pv": "ENUM", "value": 1, "labels": []string{"Off", "On"},
	})
	p := newPlugin(t, g, pvws.SchemeCA)
	ctx := context.Background()

	stream, err := p.SubscribeChannel(ctx, "ENUM", channel.Config{Name: "ENUM", ReadPV: "ENUM"})
	if err != nil {
		t.Fatalf("SubscribeChannel: %v", err)
	}
	first, err := stream.Next(ctx)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if got := first.Value.String(false); got != "On" {
		t.Errorf("first = %q, want On", got)
	}
	if first.Display.Widget != channel.WidgetComboBox {
		t.Errorf("widget = %s, want COMBO", first.Display.Widget)
	}

	// A partial update keeps the merged labels.
	g.push(map[string]any{"type": "update", "pv": "ENUM", "value": 0, "severity": "MAJOR"})
	second, err := stream.Next(ctx)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if got := second.Value.String(false); got != "Off" {
		t.Errorf("second = %q, want Off", got)
	}
	if second.Status.Quality != channel.QualityAlarm {
		t.Errorf("quality = %s, want ALARM", second.Status.Quality)
	}

	_ = stream.Close()
	g.expect("clear")
	if _, err := stream.Next(ctx); !errors.Is(err, io.EOF) {
		t.Errorf("Next after Close = %v, want io.EOF", err)
	}
}

func TestPutChannels(t *testing.T) {
	g := newGateway(t)
	p := newPlugin(t, g, pvws.SchemePVA)

	arr, _ := channel.DecodeValue("[1, 2]")
	vals := []channel.DecodedValue{{Kind: channel.KindString, Raw: "4.5"}, {Kind: channel.KindString, Raw: "open"}, arr}
	if err := p.PutChannels(context.Background(), []string{"A", "B", "C"}, vals, time.Second); err != nil {
		t.Fatalf("PutChannels: %v", err)
	}

	want := []map[string]any{
		{"type": "write", "pv": "pva://A", "value": 4.5},
		{"type": "write", "pv": "pva://B", "value": "open"},
		{"type": "write", "pv": "pva://C", "value": []any{float64(1), float64(2)}},
	}
	for _, w := range want {
		got := g.expect("write")
		if !reflect.DeepEqual(got, w) {
			t.Errorf("write = %v, want %v", got, w)
		}
	}
}

func TestPutChannels_ReadOnlyRejected(t *testing.T) {
	g := newGateway(t)
	g.onSubscribe("RBV", map[string]any{"type": "update", "pv": "RBV", "value": 1, "readonly": true})
	p := newPlugin(t, g, pvws.SchemeCA)
	ctx := context.Background()

	stream, err := p.SubscribeChannel(ctx, "RBV", channel.Config{})
	if err != nil {
		t.Fatal(err)
	}
	defer stream.Close()
	snap, err := stream.Next(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if snap.Status.Mutable || snap.Display.Role != channel.RoleRead {
		t.Errorf("read-only pv reported writable: %+v", snap.Status)
	}

	vals := []channel.DecodedValue{{Raw: "1"}, {Raw: "2"}}
	err = p.PutChannels(ctx, []string{"OTHER", "RBV"}, vals, time.Second)
	if !errors.Is(err, channel.ErrWriteRejected) {
		t.Fatalf("error = %v, want ErrWriteRejected", err)
	}
	select {
	case msg := <-g.received:
		if msg["type"] == "write" {
			t.Errorf("rejected batch sent %v", msg)
		}
	case <-time.After(50 * time.Millisecond):
	}
}

func TestConnectionLoss(t *testing.T) {
	g := newGateway(t)
	g.onSubscribe("PV1", map[string]any{"type": "update", "pv": "PV1", "value": 1})
	p := newPlugin(t, g, pvws.SchemeCA)
	ctx := context.Background()

	stream, err := p.SubscribeChannel(ctx, "PV1", channel.Config{})
	if err != nil {
		t.Fatal(err)
	}
	defer stream.Close()
	if _, err := stream.Next(ctx); err != nil {
		t.Fatal(err)
	}

	g.dropAll()
	if _, err := stream.Next(ctx); !errors.Is(err, channel.ErrConnection) {
		t.Fatalf("Next after drop = %v, want ErrConnection", err)
	}

	// The next call redials.
	if _, err := p.GetChannel(ctx, "PV1", time.Second, channel.Config{}); err != nil {
		t.Fatalf("GetChannel after drop: %v", err)
	}
	if n := g.dials.Load(); n != 2 {
		t.Errorf("dials = %d, want 2", n)
	}
}

func TestDialFailure(t *testing.T) {
	g := newGateway(t)
	url := g.url()
	g.server.Close()

	p, err := pvws.New(pvws.Options{Scheme: pvws.SchemeCA, URL: url}, nil, clock.Real{}, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	_, err = p.GetChannel(context.Background(), "PV1", time.Second, channel.Config{})
	if !errors.Is(err, channel.ErrConnection) {
		t.Fatalf("error = %v, want ErrConnection", err)
	}
}
