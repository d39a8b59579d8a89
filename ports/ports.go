// Package ports defines interfaces (contracts) between layers.
// These interfaces enable dependency injection and testability.
// Implementations live in adapters/.
package ports

import (
	"context"
	"time"

	"github.com/artpar/coniql/domain/channel"
)

// -----------------------------------------------------------------------------
// Infrastructure Ports
// -----------------------------------------------------------------------------

// Clock abstracts time for testability.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

// Ticker delivers ticks at a fixed interval until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// IDGenerator generates unique identifiers.
type IDGenerator interface {
	New() string
}

// -----------------------------------------------------------------------------
// Transport Ports
// -----------------------------------------------------------------------------

// ChannelPlugin serves channels for one transport.
// Names passed to a plugin never carry the transport prefix.
type ChannelPlugin interface {
	// TransportPrefix returns the scheme this plugin is registered under.
	TransportPrefix() string

	// ChannelConfig returns the configuration for a bare channel name.
	// Unknown names fail with channel.ErrUnknownChannel.
	ChannelConfig(name string) (channel.Config, error)

	// GetChannel fetches one snapshot of pv. The plugin enforces timeout.
	GetChannel(ctx context.Context, pv string, timeout time.Duration, cfg channel.Config) (channel.Snapshot, error)

	// SubscribeChannel opens a stream of snapshots for pv.
	SubscribeChannel(ctx context.Context, pv string, cfg channel.Config) (ChannelStream, error)

	// PutChannels writes values[i] to pvs[i] as one batch.
	PutChannels(ctx context.Context, pvs []string, values []channel.DecodedValue, timeout time.Duration) error
}

// ChannelStream is a pull-based, cancellable sequence of snapshots.
type ChannelStream interface {
	// Next blocks until the next snapshot, the end of the stream (io.EOF)
	// or ctx is done.
	Next(ctx context.Context) (channel.Snapshot, error)

	// Close releases the stream. Safe to call more than once.
	Close() error
}

// -----------------------------------------------------------------------------
// Recording Ports
// -----------------------------------------------------------------------------

// WriteEntry is one batched put as seen by the journal.
type WriteEntry struct {
	ID        string
	Transport string
	PVs       []string
	Values    []string // wire encodings as received
	Outcome   string   // "ok" or an error code
	Error     string
	Duration  time.Duration
	At        time.Time
}

// WriteJournal keeps an audit trail of batched puts.
type WriteJournal interface {
	Record(ctx context.Context, e WriteEntry) error
}

// ChannelMetrics receives operational measurements from the channel service.
type ChannelMetrics interface {
	// ObserveFetch records one plugin GetChannel call.
	ObserveFetch(transport, outcome string, d time.Duration)

	// ObserveBatch records one plugin PutChannels call.
	ObserveBatch(transport, outcome string, size int, d time.Duration)

	// SubscriptionOpened and SubscriptionClosed track live subscriptions.
	SubscriptionOpened(transport string)
	SubscriptionClosed(transport string)
}
