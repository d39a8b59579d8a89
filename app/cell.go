package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/artpar/coniql/domain/channel"
	"golang.org/x/sync/singleflight"
)

// FetchFunc performs the underlying plugin round-trip for a Cell.
type FetchFunc func(ctx context.Context) (channel.Snapshot, error)

// Cell holds the snapshot of one channel for the lifetime of one operation.
//
// A Cell is populate-once: the first successful fetch is kept and every
// later Channel call returns the same pointer without touching the plugin.
// Concurrent callers share a single in-flight fetch. A failed fetch leaves
// the cell empty so the next call retries.
type Cell struct {
	id     string
	config channel.Config

	snap  atomic.Pointer[channel.Snapshot]
	mu    sync.Mutex
	group singleflight.Group
	fetch FetchFunc
}

// NewDeferredCell returns a cell that fetches on first use.
func NewDeferredCell(id string, cfg channel.Config, fetch FetchFunc) *Cell {
	return &Cell{id: id, config: cfg, fetch: fetch}
}

// NewPopulatedCell returns a cell that already holds snap.
func NewPopulatedCell(id string, cfg channel.Config, snap channel.Snapshot) *Cell {
	c := &Cell{id: id, config: cfg}
	c.snap.Store(&snap)
	return c
}

// ID returns the channel identifier as requested.
func (c *Cell) ID() string { return c.id }

// Config returns the channel config the cell was resolved with.
func (c *Cell) Config() channel.Config { return c.config }

// Populated reports whether the cell holds a snapshot.
func (c *Cell) Populated() bool { return c.snap.Load() != nil }

// Channel returns the cell's snapshot, fetching it if needed.
//
// The fetch itself is detached from ctx so that one caller giving up does
// not fail the others sharing the flight; the plugin enforces its own
// timeout. A caller whose ctx ends stops waiting and gets ctx.Err().
func (c *Cell) Channel(ctx context.Context) (*channel.Snapshot, error) {
	if s := c.snap.Load(); s != nil {
		return s, nil
	}
	if c.fetch == nil {
		return nil, errors.New("cell has no snapshot and no fetcher")
	}

	fetchCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(c.id, func() (any, error) {
		c.mu.Lock()
		defer c.mu.Unlock()

		if s := c.snap.Load(); s != nil {
			return s, nil
		}
		snap, err := c.safeFetch(fetchCtx)
		if err != nil {
			return nil, err
		}
		c.snap.Store(&snap)
		return &snap, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*channel.Snapshot), nil
	}
}

// safeFetch runs the fetcher. singleflight re-panics in a fresh goroutine,
// so a panic must become an error here.
func (c *Cell) safeFetch(ctx context.Context) (snap channel.Snapshot, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("fetch of %s panicked: %v", c.id, r)
		}
	}()
	return c.fetch(ctx)
}
