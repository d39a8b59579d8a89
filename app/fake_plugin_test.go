package app_test

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/artpar/coniql/domain/channel"
	"github.com/artpar/coniql/ports"
)

// fakePlugin serves a fixed set of channel configs and counts calls.
type fakePlugin struct {
	prefix  string
	configs map[string]channel.Config

	// release, when non-nil, blocks GetChannel until closed.
	release chan struct{}
	getErr  error
	putErr  error

	gets atomic.Int32
	puts atomic.Int32

	mu         sync.Mutex
	lastPVs    []string
	lastValues []channel.DecodedValue
	getPVs     []string
	streams    []*fakeStream
}

func newFakePlugin(prefix string, configs ...channel.Config) *fakePlugin {
	p := &fakePlugin{prefix: prefix, configs: make(map[string]channel.Config)}
	for _, c := range configs {
		p.configs[c.Name] = c
	}
	return p
}

func (p *fakePlugin) TransportPrefix() string { return p.prefix }

func (p *fakePlugin) ChannelConfig(name string) (channel.Config, error) {
	if c, ok := p.configs[name]; ok {
		return c, nil
	}
	return channel.Config{Name: name, ReadPV: name, WritePV: name}, nil
}

func (p *fakePlugin) GetChannel(ctx context.Context, pv string, timeout time.Duration, cfg channel.Config) (channel.Snapshot, error) {
	p.gets.Add(1)
	p.mu.Lock()
	p.getPVs = append(p.getPVs, pv)
	p.mu.Unlock()
	if p.release != nil {
		<-p.release
	}
	if p.getErr != nil {
		return channel.Snapshot{}, p.getErr
	}
	return channel.Snapshot{
		Value:  channel.NewValue(float64(p.gets.Load()), nil),
		Status: &channel.Status{Quality: channel.QualityValid, Mutable: !cfg.ReadOnly()},
	}, nil
}

func (p *fakePlugin) SubscribeChannel(ctx context.Context, pv string, cfg channel.Config) (ports.ChannelStream, error) {
	s := &fakeStream{pv: pv, updates: make(chan channel.Snapshot), done: make(chan struct{})}
	p.mu.Lock()
	p.streams = append(p.streams, s)
	p.mu.Unlock()
	return s, nil
}

func (p *fakePlugin) PutChannels(ctx context.Context, pvs []string, values []channel.DecodedValue, timeout time.Duration) error {
	p.puts.Add(1)
	p.mu.Lock()
	p.lastPVs = pvs
	p.lastValues = values
	p.mu.Unlock()
	return p.putErr
}

func (p *fakePlugin) stream(i int) *fakeStream {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.streams[i]
}

// fakeStream hands out whatever is sent on updates.
type fakeStream struct {
	pv      string
	updates chan channel.Snapshot
	done    chan struct{}
	closes  atomic.Int32
	once    sync.Once
}

func (s *fakeStream) Next(ctx context.Context) (channel.Snapshot, error) {
	select {
	case snap := <-s.updates:
		return snap, nil
	case <-s.done:
		return channel.Snapshot{}, io.EOF
	case <-ctx.Done():
		return channel.Snapshot{}, ctx.Err()
	}
}

func (s *fakeStream) Close() error {
	s.closes.Add(1)
	s.once.Do(func() { close(s.done) })
	return nil
}

// recordingJournal keeps entries in memory.
type recordingJournal struct {
	mu      sync.Mutex
	entries []ports.WriteEntry
	err     error
}

func (j *recordingJournal) Record(ctx context.Context, e ports.WriteEntry) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, e)
	return j.err
}
