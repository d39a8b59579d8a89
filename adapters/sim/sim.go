// Package sim provides the simulated transport. It serves generator channels
// such as sine(-1, 1) computed from the clock, and writable soft registers
// for any other name.
package sim

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/artpar/coniql/domain/channel"
	"github.com/artpar/coniql/ports"
	"github.com/rs/zerolog"
)

// Transport is the prefix the simulated plugin registers under.
const Transport = "ssim"

// DeviceTable supplies configured channels. *devices.Table satisfies it.
type DeviceTable interface {
	Lookup(transport, name string) (channel.Config, bool)
}

// Plugin implements ports.ChannelPlugin for simulated channels.
type Plugin struct {
	clock   ports.Clock
	devices DeviceTable
	logger  zerolog.Logger

	mu        sync.Mutex
	registers map[string]*register
}

// New creates a simulated plugin. devices may be nil.
func New(clk ports.Clock, devices DeviceTable, logger zerolog.Logger) *Plugin {
	return &Plugin{
		clock:     clk,
		devices:   devices,
		logger:    logger.With().Str("transport", Transport).Logger(),
		registers: make(map[string]*register),
	}
}

var _ ports.ChannelPlugin = (*Plugin)(nil)

// TransportPrefix implements ports.ChannelPlugin.
func (p *Plugin) TransportPrefix() string { return Transport }

// ChannelConfig implements ports.ChannelPlugin. Generators are read-only,
// plain names are read/write registers.
func (p *Plugin) ChannelConfig(name string) (channel.Config, error) {
	if p.devices != nil {
		if cfg, ok := p.devices.Lookup(Transport, name); ok {
			return cfg, nil
		}
	}
	if strings.TrimSpace(name) == "" {
		return channel.Config{}, fmt.Errorf("%w: empty sim channel name", channel.ErrUnknownChannel)
	}
	if isGeneratorName(name) {
		if _, err := parseGenerator(name); err != nil {
			return channel.Config{}, err
		}
		return channel.Config{Name: name, ReadPV: name}, nil
	}
	return channel.Config{Name: name, ReadPV: name, WritePV: name}, nil
}

// GetChannel implements ports.ChannelPlugin.
func (p *Plugin) GetChannel(ctx context.Context, pv string, timeout time.Duration, cfg channel.Config) (channel.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return channel.Snapshot{}, err
	}
	if isGeneratorName(pv) {
		gen, err := parseGenerator(pv)
		if err != nil {
			return channel.Snapshot{}, err
		}
		return withConfig(gen.sample(p.clock.Now()), cfg), nil
	}
	return withConfig(p.register(pv).snapshot(), cfg), nil
}

// SubscribeChannel implements ports.ChannelPlugin. The first Next returns
// the current value immediately.
func (p *Plugin) SubscribeChannel(ctx context.Context, pv string, cfg channel.Config) (ports.ChannelStream, error) {
	if isGeneratorName(pv) {
		gen, err := parseGenerator(pv)
		if err != nil {
			return nil, err
		}
		return &generatorStream{
			gen:    gen,
			clock:  p.clock,
			cfg:    cfg,
			ticker: p.clock.NewTicker(gen.interval()),
			done:   make(chan struct{}),
		}, nil
	}

	reg := p.register(pv)
	s := &registerStream{
		reg:     reg,
		cfg:     cfg,
		pending: make(chan channel.Snapshot, 1),
		done:    make(chan struct{}),
	}
	s.pending <- reg.watch(s)
	return s, nil
}

// PutChannels implements ports.ChannelPlugin. The whole batch is checked
// before any register changes.
func (p *Plugin) PutChannels(ctx context.Context, pvs []string, values []channel.DecodedValue, timeout time.Duration) error {
	if len(pvs) != len(values) {
		return fmt.Errorf("%w: %d pvs, %d values", channel.ErrArityMismatch, len(pvs), len(values))
	}
	for _, pv := range pvs {
		if isGeneratorName(pv) {
			return fmt.Errorf("%w: %s is a read-only generator", channel.ErrWriteRejected, pv)
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	now := p.clock.Now()
	for i, pv := range pvs {
		p.register(pv).set(registerValue(values[i]), now)
	}
	p.logger.Debug().Strs("pvs", pvs).Msg("registers written")
	return nil
}

func (p *Plugin) register(name string) *register {
	p.mu.Lock()
	defer p.mu.Unlock()
	r, ok := p.registers[name]
	if !ok {
		r = &register{value: float64(0), at: p.clock.Now(), watchers: make(map[*registerStream]struct{})}
		p.registers[name] = r
	}
	return r
}

// registerValue converts a decoded put into the stored value. Numeric
// strings are stored as numbers.
func registerValue(v channel.DecodedValue) any {
	if s, ok := v.Raw.(string); ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return f
		}
	}
	return v.Raw
}

// withConfig applies configured display hints to a snapshot.
func withConfig(s channel.Snapshot, cfg channel.Config) channel.Snapshot {
	if s.Display == nil {
		return s
	}
	d := cfg.ApplyDisplay(*s.Display)
	s.Display = &d
	if s.Value != nil {
		s.Value = channel.NewValue(s.Value.Raw, &d)
	}
	return s
}

// register is a writable soft channel.
type register struct {
	mu       sync.Mutex
	value    any
	at       time.Time
	watchers map[*registerStream]struct{}
}

func (r *register) snapshot() channel.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

func (r *register) snapshotLocked() channel.Snapshot {
	d := &channel.Display{
		Description: "Soft register",
		Role:        channel.RoleReadWrite,
		Widget:      channel.WidgetTextInput,
		Precision:   -1,
		Form:        channel.FormDefault,
	}
	return channel.Snapshot{
		Value:   channel.NewValue(r.value, d),
		Time:    channel.NewTime(r.at),
		Status:  &channel.Status{Quality: channel.QualityValid, Mutable: true},
		Display: d,
	}
}

// watch adds s as a watcher and returns the current snapshot.
func (r *register) watch(s *registerStream) channel.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watchers[s] = struct{}{}
	return r.snapshotLocked()
}

func (r *register) unwatch(s *registerStream) {
	r.mu.Lock()
	delete(r.watchers, s)
	r.mu.Unlock()
}

func (r *register) set(v any, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.value, r.at = v, at
	snap := r.snapshotLocked()
	for s := range r.watchers {
		s.push(snap)
	}
}

// registerStream delivers register updates. Only the latest unread update
// is kept.
type registerStream struct {
	reg     *register
	cfg     channel.Config
	pending chan channel.Snapshot
	done    chan struct{}
	once    sync.Once
}

func (s *registerStream) push(snap channel.Snapshot) {
	for {
		select {
		case s.pending <- snap:
			return
		default:
		}
		select {
		case <-s.pending:
		default:
		}
	}
}

func (s *registerStream) Next(ctx context.Context) (channel.Snapshot, error) {
	select {
	case <-s.done:
		return channel.Snapshot{}, io.EOF
	default:
	}
	select {
	case snap := <-s.pending:
		return withConfig(snap, s.cfg), nil
	case <-s.done:
		return channel.Snapshot{}, io.EOF
	case <-ctx.Done():
		return channel.Snapshot{}, ctx.Err()
	}
}

func (s *registerStream) Close() error {
	s.once.Do(func() {
		s.reg.unwatch(s)
		close(s.done)
	})
	return nil
}

// generatorStream samples a generator on every tick.
type generatorStream struct {
	gen     generator
	clock   ports.Clock
	cfg     channel.Config
	ticker  ports.Ticker
	started bool
	done    chan struct{}
	once    sync.Once
}

func (s *generatorStream) Next(ctx context.Context) (channel.Snapshot, error) {
	select {
	case <-s.done:
		return channel.Snapshot{}, io.EOF
	default:
	}
	if !s.started {
		s.started = true
		return withConfig(s.gen.sample(s.clock.Now()), s.cfg), nil
	}
	select {
	case at := <-s.ticker.C():
		return withConfig(s.gen.sample(at), s.cfg), nil
	case <-s.done:
		return channel.Snapshot{}, io.EOF
	case <-ctx.Done():
		return channel.Snapshot{}, ctx.Err()
	}
}

func (s *generatorStream) Close() error {
	s.once.Do(func() {
		s.ticker.Stop()
		close(s.done)
	})
	return nil
}
