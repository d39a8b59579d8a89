package config

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Holder provides thread-safe access to configuration with hot reload support.
//
// Only the fields listed by ReloadableFields take effect on reload; the
// rest are read once at startup and a change to them is logged as needing
// a restart.
type Holder struct {
	mu       sync.RWMutex
	config   *Config
	path     string // empty when loaded from the environment only
	logger   zerolog.Logger
	watcher  *fsnotify.Watcher
	onChange []func(*Config)
	onReload []func(error)

	stopOnce sync.Once
	stopCh   chan struct{}
}

// NewHolder loads the initial configuration. An empty path loads from
// defaults and the environment, and such a holder reloads from there.
func NewHolder(path string, logger zerolog.Logger) (*Holder, error) {
	h := &Holder{
		logger: logger.With().Str("component", "config").Logger(),
		stopCh: make(chan struct{}),
	}
	if path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("absolute path: %w", err)
		}
		h.path = abs
	}

	cfg, err := h.load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	h.config = cfg
	return h, nil
}

func (h *Holder) load() (*Config, error) {
	if h.path == "" {
		return LoadFromEnv()
	}
	return Load(h.path)
}

// Path returns the watched file, or "" when there is none.
func (h *Holder) Path() string { return h.path }

// Get returns the current configuration (thread-safe).
func (h *Holder) Get() *Config {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.config
}

// Reload reloads the configuration. On error the old config is kept.
func (h *Holder) Reload() error {
	h.logger.Info().Str("path", h.path).Msg("reloading configuration")

	newCfg, err := h.load()
	if err != nil {
		h.logger.Error().Err(err).Msg("config reload failed, keeping old config")
		err = fmt.Errorf("reload config: %w", err)
		h.notifyReload(err)
		return err
	}

	h.mu.Lock()
	oldCfg := h.config
	h.config = newCfg
	listeners := append([]func(*Config){}, h.onChange...)
	h.mu.Unlock()

	h.logChanges(oldCfg, newCfg)
	for _, fn := range listeners {
		fn(newCfg)
	}
	h.notifyReload(nil)

	h.logger.Info().Msg("configuration reloaded successfully")
	return nil
}

// OnChange registers a callback to be called after a successful reload.
func (h *Holder) OnChange(fn func(*Config)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onChange = append(h.onChange, fn)
}

// OnReload registers a callback told the outcome of every reload attempt.
func (h *Holder) OnReload(fn func(err error)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onReload = append(h.onReload, fn)
}

func (h *Holder) notifyReload(err error) {
	h.mu.RLock()
	fns := append([]func(error){}, h.onReload...)
	h.mu.RUnlock()
	for _, fn := range fns {
		fn(err)
	}
}

// WatchFile starts watching the config file for changes.
// Changes trigger automatic reload. Without a file it does nothing.
func (h *Holder) WatchFile() error {
	if h.path == "" {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	// Watch the directory (more reliable for editors that do atomic saves)
	dir := filepath.Dir(h.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch directory: %w", err)
	}
	h.watcher = watcher

	go h.watchLoop(watcher)

	h.logger.Info().Str("path", h.path).Msg("watching config file for changes")
	return nil
}

// WatchSignals starts listening for SIGHUP to trigger reload.
func (h *Holder) WatchSignals() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGHUP)

	go func() {
		for {
			select {
			case <-sigCh:
				h.logger.Info().Msg("received SIGHUP, reloading config")
				if err := h.Reload(); err != nil {
					h.logger.Error().Err(err).Msg("SIGHUP reload failed")
				}
			case <-h.stopCh:
				signal.Stop(sigCh)
				return
			}
		}
	}()

	h.logger.Info().Msg("listening for SIGHUP to reload config")
}

// Stop stops watching for file changes and signals. Safe to call twice.
func (h *Holder) Stop() {
	h.stopOnce.Do(func() {
		close(h.stopCh)
		if h.watcher != nil {
			h.watcher.Close()
		}
	})
}

// watchLoop reloads on writes to the config file. Editors often emit
// several events per save, so reloads are debounced.
func (h *Holder) watchLoop(watcher *fsnotify.Watcher) {
	filename := filepath.Base(h.path)
	const settle = 50 * time.Millisecond

	var pending <-chan time.Time
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filename {
				continue
			}
			// React to write or create (atomic save = create)
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				h.logger.Debug().
					Str("event", event.Op.String()).
					Str("file", event.Name).
					Msg("config file changed")
				pending = time.After(settle)
			}

		case <-pending:
			pending = nil
			if err := h.Reload(); err != nil {
				h.logger.Error().Err(err).Msg("file watch reload failed")
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			h.logger.Error().Err(err).Msg("file watcher error")

		case <-h.stopCh:
			return
		}
	}
}

func (h *Holder) logChanges(old, new *Config) {
	if old.Logging.Level != new.Logging.Level {
		h.logger.Info().
			Str("old", old.Logging.Level).
			Str("new", new.Logging.Level).
			Msg("log level changed")
	}
	if old.Logging.Format != new.Logging.Format {
		h.logger.Info().
			Str("old", old.Logging.Format).
			Str("new", new.Logging.Format).
			Msg("log format changed")
	}

	restart := func(field string, changed bool) {
		if changed {
			h.logger.Warn().Str("field", field).Msg("config change needs a restart to take effect")
		}
	}
	restart("server", old.Server != new.Server)
	restart("transports", old.Transports != new.Transports)
	restart("devices.path", old.Devices != new.Devices)
	restart("journal", old.Journal != new.Journal)
	restart("metrics", old.Metrics != new.Metrics)
	restart("query.default_timeout", old.Query != new.Query)
	restart("graphql", old.GraphQL != new.GraphQL)
}

// ReloadableFields returns which fields can be changed without restart.
func ReloadableFields() []string {
	return []string{
		"logging.level",
		"logging.format",
	}
}

// NonReloadableFields returns which fields require a restart.
func NonReloadableFields() []string {
	return []string{
		"server",
		"metrics",
		"transports",
		"devices.path",
		"journal",
		"query.default_timeout",
		"graphql",
	}
}
