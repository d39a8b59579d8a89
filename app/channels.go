package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/artpar/coniql/domain/channel"
	"github.com/artpar/coniql/ports"
	"github.com/rs/zerolog"
)

// DefaultTimeout applies when a caller passes a zero timeout.
const DefaultTimeout = 5 * time.Second

// ChannelService resolves, reads, writes and subscribes to channels.
type ChannelService struct {
	store   *Store
	journal ports.WriteJournal
	metrics ports.ChannelMetrics
	clock   ports.Clock
	idGen   ports.IDGenerator
	logger  zerolog.Logger

	defaultTimeout time.Duration
}

// ChannelDeps contains dependencies for ChannelService.
// Journal and Metrics are optional.
type ChannelDeps struct {
	Store   *Store
	Journal ports.WriteJournal
	Metrics ports.ChannelMetrics
	Clock   ports.Clock
	IDGen   ports.IDGenerator
	Logger  zerolog.Logger
}

// ChannelConfig contains configuration for ChannelService.
type ChannelConfig struct {
	DefaultTimeout time.Duration
}

// NewChannelService creates a new channel service.
func NewChannelService(deps ChannelDeps, cfg ChannelConfig) *ChannelService {
	if cfg.DefaultTimeout <= 0 {
		cfg.DefaultTimeout = DefaultTimeout
	}
	return &ChannelService{
		store:          deps.Store,
		journal:        deps.Journal,
		metrics:        deps.Metrics,
		clock:          deps.Clock,
		idGen:          deps.IDGen,
		logger:         deps.Logger,
		defaultTimeout: cfg.DefaultTimeout,
	}
}

// Store returns the plugin store the service resolves against.
func (s *ChannelService) Store() *Store { return s.store }

// GetChannel resolves id and returns a cell that fetches on first use.
// Every field reading the returned cell shares one plugin call.
func (s *ChannelService) GetChannel(ctx context.Context, id string, timeout time.Duration) (*Cell, error) {
	r, err := s.store.Resolve(id)
	if err != nil {
		return nil, err
	}
	readPV, err := r.Config.ReadName()
	if err != nil {
		return nil, err
	}
	_, pv := s.store.StripTransport(readPV)
	if timeout <= 0 {
		timeout = s.defaultTimeout
	}

	fetch := func(ctx context.Context) (channel.Snapshot, error) {
		start := s.clock.Now()
		snap, err := r.Plugin.GetChannel(ctx, pv, timeout, r.Config)
		s.observeFetch(r.Transport, err, s.clock.Now().Sub(start))
		if err != nil {
			return channel.Snapshot{}, fmt.Errorf("get %s://%s: %w", r.Transport, pv, err)
		}
		return snap, nil
	}
	return NewDeferredCell(id, r.Config, fetch), nil
}

// PutChannels writes values[i] to ids[i] as one batch on one transport and
// returns a fresh unpopulated cell per id for the read-back.
//
// Validation happens before the plugin is called: any read-only target,
// more than one transport, an undecodable value or a count mismatch fails
// the whole batch with zero writes. A plugin failure fails the whole batch.
func (s *ChannelService) PutChannels(ctx context.Context, ids []string, values []string, timeout time.Duration) ([]*Cell, error) {
	if timeout <= 0 {
		timeout = s.defaultTimeout
	}

	resolved := make([]Resolved, len(ids))
	writePVs := make([]string, len(ids))
	for i, id := range ids {
		r, err := s.store.Resolve(id)
		if err != nil {
			return nil, err
		}
		writePV, err := r.Config.WriteName()
		if err != nil {
			return nil, fmt.Errorf("put %q: %w", id, err)
		}
		_, writePVs[i] = s.store.StripTransport(writePV)
		resolved[i] = r
	}

	var plugin ports.ChannelPlugin
	var transport string
	for _, r := range resolved {
		if plugin == nil {
			plugin, transport = r.Plugin, r.Transport
			continue
		}
		if r.Transport != transport {
			return nil, fmt.Errorf("%w: %s and %s", channel.ErrMixedTransportBatch, transport, r.Transport)
		}
	}

	decoded, err := channel.DecodeValues(values)
	if err != nil {
		return nil, err
	}
	if len(decoded) != len(ids) {
		return nil, fmt.Errorf("%w: %d ids, %d values", channel.ErrArityMismatch, len(ids), len(decoded))
	}
	if plugin == nil {
		return []*Cell{}, nil
	}

	start := s.clock.Now()
	err = plugin.PutChannels(ctx, writePVs, decoded, timeout)
	elapsed := s.clock.Now().Sub(start)

	outcome := outcomeOf(err)
	if s.metrics != nil {
		s.metrics.ObserveBatch(transport, outcome, len(ids), elapsed)
	}
	s.record(ctx, ports.WriteEntry{
		Transport: transport,
		PVs:       writePVs,
		Values:    values,
		Outcome:   outcome,
		Error:     errString(err),
		Duration:  elapsed,
		At:        start,
	})

	if err != nil {
		return nil, fmt.Errorf("put %d channels on %s: %w", len(ids), transport, err)
	}

	cells := make([]*Cell, len(ids))
	for i, id := range ids {
		cell, err := s.GetChannel(ctx, id, timeout)
		if err != nil {
			return nil, err
		}
		cells[i] = cell
	}
	return cells, nil
}

// SubscribeChannel resolves id once and opens the plugin stream for it.
// The stream is closed when the subscription is closed, when ctx is done,
// or when the stream ends.
func (s *ChannelService) SubscribeChannel(ctx context.Context, id string) (*Subscription, error) {
	r, err := s.store.Resolve(id)
	if err != nil {
		return nil, err
	}
	readPV, err := r.Config.ReadName()
	if err != nil {
		return nil, err
	}
	_, pv := s.store.StripTransport(readPV)

	stream, err := r.Plugin.SubscribeChannel(ctx, pv, r.Config)
	if err != nil {
		return nil, fmt.Errorf("subscribe %s://%s: %w", r.Transport, pv, err)
	}

	sub := &Subscription{
		id:        id,
		config:    r.Config,
		transport: r.Transport,
		stream:    stream,
		metrics:   s.metrics,
		logger:    s.logger.With().Str("channel", id).Logger(),
	}
	if s.metrics != nil {
		s.metrics.SubscriptionOpened(r.Transport)
	}
	sub.mu.Lock()
	sub.stop = context.AfterFunc(ctx, func() { _ = sub.Close() })
	sub.mu.Unlock()
	return sub, nil
}

func (s *ChannelService) observeFetch(transport string, err error, d time.Duration) {
	if s.metrics != nil {
		s.metrics.ObserveFetch(transport, outcomeOf(err), d)
	}
}

// record writes a journal entry. Journal failures are logged, not returned.
func (s *ChannelService) record(ctx context.Context, e ports.WriteEntry) {
	if s.journal == nil {
		return
	}
	if s.idGen != nil {
		e.ID = s.idGen.New()
	}
	if err := s.journal.Record(context.WithoutCancel(ctx), e); err != nil {
		s.logger.Warn().Err(err).Str("transport", e.Transport).Msg("failed to journal write")
	}
}

// Subscription relays a plugin stream as populated cells.
type Subscription struct {
	id        string
	config    channel.Config
	transport string
	stream    ports.ChannelStream
	metrics   ports.ChannelMetrics
	logger    zerolog.Logger

	mu        sync.Mutex
	stop      func() bool
	closeOnce sync.Once
	closeErr  error
}

// ID returns the subscribed channel identifier.
func (sub *Subscription) ID() string { return sub.id }

// Next blocks for the next update. It returns io.EOF once the stream has
// ended or the subscription was closed. Any stream error closes the
// subscription.
func (sub *Subscription) Next(ctx context.Context) (*Cell, error) {
	snap, err := sub.stream.Next(ctx)
	if err != nil {
		_ = sub.Close()
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("subscription %q: %w", sub.id, err)
	}
	return NewPopulatedCell(sub.id, sub.config, snap), nil
}

// Close releases the plugin stream. Only the first call has any effect.
func (sub *Subscription) Close() error {
	sub.closeOnce.Do(func() {
		sub.mu.Lock()
		stop := sub.stop
		sub.mu.Unlock()
		if stop != nil {
			stop()
		}
		sub.closeErr = sub.stream.Close()
		if sub.metrics != nil {
			sub.metrics.SubscriptionClosed(sub.transport)
		}
		sub.logger.Debug().Msg("subscription closed")
	})
	return sub.closeErr
}

func outcomeOf(err error) string {
	if err == nil {
		return "ok"
	}
	return channel.ErrorCode(err)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
