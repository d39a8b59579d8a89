package pvws

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/artpar/coniql/domain/channel"
	"github.com/artpar/coniql/ports"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// conn is one gateway connection shared by every stream of a plugin.
type conn struct {
	ws           *websocket.Conn
	clock        ports.Clock
	logger       zerolog.Logger
	writeTimeout time.Duration
	onClose      func(*conn)

	writeMu sync.Mutex

	mu     sync.Mutex
	pvs    map[string]*pvEntry
	done   chan struct{}
	err    error
	failed sync.Once
}

type pvEntry struct {
	state    pvState
	watchers map[*watcher]struct{}
}

func newConn(ws *websocket.Conn, clk ports.Clock, logger zerolog.Logger, writeTimeout time.Duration, onClose func(*conn)) *conn {
	c := &conn{
		ws:           ws,
		clock:        clk,
		logger:       logger,
		writeTimeout: writeTimeout,
		onClose:      onClose,
		pvs:          make(map[string]*pvEntry),
		done:         make(chan struct{}),
	}
	go c.readLoop()
	return c
}

func (c *conn) closed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

func (c *conn) send(v any, timeout time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if timeout > 0 {
		_ = c.ws.SetWriteDeadline(time.Now().Add(timeout))
	}
	return c.ws.WriteMessage(websocket.TextMessage, data)
}

// failWith closes the connection after a write error and returns the
// connection error. c.mu must not be held.
func (c *conn) failWith(err error) error {
	c.fail(err)
	return c.err
}

// watch registers w for updates on pv, subscribing on the gateway for the
// first watcher. A PV with known state is pushed to w straight away.
func (c *conn) watch(pv string, w *watcher) error {
	c.mu.Lock()
	if c.closed() {
		c.mu.Unlock()
		return c.err
	}

	entry, ok := c.pvs[pv]
	if ok {
		entry.watchers[w] = struct{}{}
		if entry.state.seen {
			w.push(entry.state.snapshot(w.cfg))
		}
		c.mu.Unlock()
		return nil
	}

	c.pvs[pv] = &pvEntry{watchers: map[*watcher]struct{}{w: {}}}
	err := c.send(subscribeRequest{Type: "subscribe", PVs: []string{pv}}, c.writeTimeout)
	if err != nil {
		delete(c.pvs, pv)
	}
	c.mu.Unlock()
	if err != nil {
		return c.failWith(err)
	}
	return nil
}

// unwatch drops w and clears the gateway subscription after the last watcher.
func (c *conn) unwatch(pv string, w *watcher) {
	c.mu.Lock()
	entry, ok := c.pvs[pv]
	if !ok {
		c.mu.Unlock()
		return
	}
	delete(entry.watchers, w)
	if len(entry.watchers) > 0 {
		c.mu.Unlock()
		return
	}
	delete(c.pvs, pv)
	var err error
	if !c.closed() {
		err = c.send(subscribeRequest{Type: "clear", PVs: []string{pv}}, c.writeTimeout)
	}
	c.mu.Unlock()
	if err != nil {
		c.fail(err)
	}
}

// readOnly reports whether the gateway has marked pv read-only.
func (c *conn) readOnly(pv string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.pvs[pv]
	return ok && entry.state.seen && entry.state.readonly
}

func (c *conn) readLoop() {
	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			c.fail(err)
			return
		}

		var u update
		if err := json.Unmarshal(data, &u); err != nil {
			c.logger.Warn().Err(err).Msg("undecodable gateway message")
			continue
		}
		if u.Type != "update" {
			c.logger.Debug().Str("type", u.Type).Msg("ignoring gateway message")
			continue
		}
		c.dispatch(u)
	}
}

func (c *conn) dispatch(u update) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.pvs[u.PV]
	if !ok {
		return
	}
	if err := entry.state.merge(u, c.clock.Now()); err != nil {
		c.logger.Warn().Err(err).Str("pv", u.PV).Msg("bad gateway update")
		return
	}
	for w := range entry.watchers {
		w.push(entry.state.snapshot(w.cfg))
	}
}

// fail closes the connection once. Every live stream ends with an
// ErrConnection error.
func (c *conn) fail(cause error) {
	c.failed.Do(func() {
		c.mu.Lock()
		c.err = fmt.Errorf("%w: %v", channel.ErrConnection, cause)
		c.pvs = make(map[string]*pvEntry)
		close(c.done)
		c.mu.Unlock()

		_ = c.ws.Close()
		c.logger.Warn().Err(cause).Msg("gateway connection lost")
		if c.onClose != nil {
			c.onClose(c)
		}
	})
}

// watcher is a ports.ChannelStream over one PV. Only the latest unread
// snapshot is kept.
type watcher struct {
	conn    *conn
	pv      string
	cfg     channel.Config
	pending chan channel.Snapshot
	done    chan struct{}
	once    sync.Once
}

func newWatcher(c *conn, pv string, cfg channel.Config) *watcher {
	return &watcher{
		conn:    c,
		pv:      pv,
		cfg:     cfg,
		pending: make(chan channel.Snapshot, 1),
		done:    make(chan struct{}),
	}
}

func (w *watcher) push(snap channel.Snapshot) {
	for {
		select {
		case w.pending <- snap:
			return
		default:
		}
		select {
		case <-w.pending:
		default:
		}
	}
}

func (w *watcher) Next(ctx context.Context) (channel.Snapshot, error) {
	select {
	case <-w.done:
		return channel.Snapshot{}, io.EOF
	default:
	}
	select {
	case snap := <-w.pending:
		return snap, nil
	default:
	}
	select {
	case snap := <-w.pending:
		return snap, nil
	case <-w.done:
		return channel.Snapshot{}, io.EOF
	case <-w.conn.done:
		return channel.Snapshot{}, w.conn.err
	case <-ctx.Done():
		return channel.Snapshot{}, ctx.Err()
	}
}

func (w *watcher) Close() error {
	w.once.Do(func() {
		w.conn.unwatch(w.pv, w)
		close(w.done)
	})
	return nil
}
