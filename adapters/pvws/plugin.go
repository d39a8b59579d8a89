// Package pvws provides the ca and pva transports. Both talk to a PV Web
// Socket gateway, which fronts Channel Access and PV Access with a JSON
// protocol over one websocket.
package pvws

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/artpar/coniql/domain/channel"
	"github.com/artpar/coniql/ports"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Transport names.
const (
	SchemeCA  = "ca"
	SchemePVA = "pva"
)

// DeviceTable supplies configured channels. *devices.Table satisfies it.
type DeviceTable interface {
	Lookup(transport, name string) (channel.Config, bool)
}

// Options configures a Plugin.
type Options struct {
	Scheme       string        // SchemeCA or SchemePVA
	URL          string        // e.g. ws://localhost:8080/pvws/pv
	DialTimeout  time.Duration // websocket handshake
	WriteTimeout time.Duration // control messages; puts use their own timeout
}

// Plugin implements ports.ChannelPlugin against a PVWS gateway.
type Plugin struct {
	scheme       string
	url          string
	writeTimeout time.Duration
	dialer       *websocket.Dialer
	devices      DeviceTable
	clock        ports.Clock
	logger       zerolog.Logger

	mu   sync.Mutex
	conn *conn
}

// New creates a gateway plugin. No connection is made until first use.
func New(opts Options, devices DeviceTable, clk ports.Clock, logger zerolog.Logger) (*Plugin, error) {
	if opts.Scheme != SchemeCA && opts.Scheme != SchemePVA {
		return nil, fmt.Errorf("pvws: unsupported scheme %q", opts.Scheme)
	}
	if !strings.HasPrefix(opts.URL, "ws://") && !strings.HasPrefix(opts.URL, "wss://") {
		return nil, fmt.Errorf("pvws: gateway url %q must use ws:// or wss://", opts.URL)
	}
	if opts.DialTimeout <= 0 {
		opts.DialTimeout = 10 * time.Second
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = 5 * time.Second
	}
	return &Plugin{
		scheme:       opts.Scheme,
		url:          opts.URL,
		writeTimeout: opts.WriteTimeout,
		dialer:       &websocket.Dialer{HandshakeTimeout: opts.DialTimeout},
		devices:      devices,
		clock:        clk,
		logger:       logger.With().Str("transport", opts.Scheme).Logger(),
	}, nil
}

var _ ports.ChannelPlugin = (*Plugin)(nil)

// TransportPrefix implements ports.ChannelPlugin.
func (p *Plugin) TransportPrefix() string { return p.scheme }

// ChannelConfig implements ports.ChannelPlugin. Unconfigured PVs are
// assumed writable; the gateway reports otherwise once connected.
func (p *Plugin) ChannelConfig(name string) (channel.Config, error) {
	if p.devices != nil {
		if cfg, ok := p.devices.Lookup(p.scheme, name); ok {
			return cfg, nil
		}
	}
	if strings.TrimSpace(name) == "" {
		return channel.Config{}, fmt.Errorf("%w: empty %s pv name", channel.ErrUnknownChannel, p.scheme)
	}
	return channel.Config{Name: name, ReadPV: name, WritePV: name}, nil
}

// GetChannel implements ports.ChannelPlugin. It subscribes, waits for the
// first update, and clears the subscription again.
func (p *Plugin) GetChannel(ctx context.Context, pv string, timeout time.Duration, cfg channel.Config) (channel.Snapshot, error) {
	c, err := p.connection(ctx)
	if err != nil {
		return channel.Snapshot{}, err
	}
	w := newWatcher(c, p.wireName(pv), cfg)
	if err := c.watch(w.pv, w); err != nil {
		return channel.Snapshot{}, err
	}
	defer w.Close()

	wait := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		wait, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	snap, err := w.Next(wait)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return channel.Snapshot{}, fmt.Errorf("%w: %s after %s", channel.ErrTimeout, pv, timeout)
		}
		return channel.Snapshot{}, err
	}
	return snap, nil
}

// SubscribeChannel implements ports.ChannelPlugin.
func (p *Plugin) SubscribeChannel(ctx context.Context, pv string, cfg channel.Config) (ports.ChannelStream, error) {
	c, err := p.connection(ctx)
	if err != nil {
		return nil, err
	}
	w := newWatcher(c, p.wireName(pv), cfg)
	if err := c.watch(w.pv, w); err != nil {
		return nil, err
	}
	return w, nil
}

// PutChannels implements ports.ChannelPlugin. A batch touching any PV the
// gateway has reported read-only is rejected before anything is sent.
func (p *Plugin) PutChannels(ctx context.Context, pvs []string, values []channel.DecodedValue, timeout time.Duration) error {
	if len(pvs) != len(values) {
		return fmt.Errorf("%w: %d pvs, %d values", channel.ErrArityMismatch, len(pvs), len(values))
	}
	c, err := p.connection(ctx)
	if err != nil {
		return err
	}
	for _, pv := range pvs {
		if c.readOnly(p.wireName(pv)) {
			return fmt.Errorf("%w: %s is read-only", channel.ErrWriteRejected, pv)
		}
	}

	for i, pv := range pvs {
		if err := ctx.Err(); err != nil {
			return err
		}
		req := writeRequest{Type: "write", PV: p.wireName(pv), Value: writeValue(values[i])}
		if err := c.send(req, timeout); err != nil {
			return c.failWith(err)
		}
	}
	p.logger.Debug().Strs("pvs", pvs).Msg("writes sent")
	return nil
}

// Close drops the gateway connection. A later call redials.
func (p *Plugin) Close() error {
	p.mu.Lock()
	c := p.conn
	p.conn = nil
	p.mu.Unlock()
	if c != nil {
		c.fail(errors.New("plugin closed"))
	}
	return nil
}

func (p *Plugin) wireName(pv string) string {
	if p.scheme == SchemePVA {
		return "pva://" + pv
	}
	return pv
}

// connection returns the live gateway connection, dialing if needed.
func (p *Plugin) connection(ctx context.Context) (*conn, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conn != nil && !p.conn.closed() {
		return p.conn, nil
	}

	ws, _, err := p.dialer.DialContext(ctx, p.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %v", channel.ErrConnection, p.url, err)
	}
	p.logger.Info().Str("url", p.url).Msg("connected to gateway")
	p.conn = newConn(ws, p.clock, p.logger, p.writeTimeout, p.forget)
	return p.conn, nil
}

func (p *Plugin) forget(c *conn) {
	p.mu.Lock()
	if p.conn == c {
		p.conn = nil
	}
	p.mu.Unlock()
}
