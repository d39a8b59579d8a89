// Package bootstrap wires all dependencies and starts the application.
// Configuration comes from a config.Holder, so the log level and format
// follow file edits and SIGHUP while the server runs.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/artpar/coniql/adapters/clock"
	"github.com/artpar/coniql/adapters/devices"
	"github.com/artpar/coniql/adapters/graphql"
	apihttp "github.com/artpar/coniql/adapters/http"
	"github.com/artpar/coniql/adapters/idgen"
	"github.com/artpar/coniql/adapters/metrics"
	"github.com/artpar/coniql/adapters/sqlite"
	"github.com/artpar/coniql/app"
	"github.com/artpar/coniql/config"
	"github.com/artpar/coniql/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// App represents the running application.
type App struct {
	Logger     zerolog.Logger
	Config     *config.Holder
	Store      *app.Store
	Channels   *app.ChannelService
	GraphQL    *handler.Server
	HTTPServer *http.Server
	Metrics    *metrics.Collector

	// Set when the journal is enabled.
	DB      *sqlite.DB
	Journal *sqlite.JournalStore

	output   *logOutput
	clock    ports.Clock
	cancel   context.CancelFunc // ends hijacked websocket sessions
	closers  []io.Closer
	pruner   *JournalPruner
	shutdown sync.Once
}

// Options tunes construction. The zero value serves production.
type Options struct {
	// ConfigPath is the YAML file to load; empty loads defaults and CONIQL_* only.
	ConfigPath string

	// Version is reported by GET /version.
	Version string

	// LogOutput defaults to stdout.
	LogOutput io.Writer

	// Registry receives the metrics. Nil uses the default registry.
	Registry *prometheus.Registry

	// Clock defaults to the wall clock.
	Clock ports.Clock
}

// New loads configuration and builds the application without serving.
func New(opts Options) (*App, error) {
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stdout
	}
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}

	out := newLogOutput(opts.LogOutput)
	logger := newLogger(out)

	holder, err := config.NewHolder(opts.ConfigPath, logger)
	if err != nil {
		return nil, err
	}
	cfg := holder.Get()
	if err := out.apply(cfg.Logging); err != nil {
		return nil, err
	}

	logger.Info().Str("config", holder.Path()).Msg("initializing coniql")

	a := &App{
		Logger: logger,
		Config: holder,
		output: out,
		clock:  opts.Clock,
	}
	if err := a.init(cfg, opts); err != nil {
		a.Shutdown()
		return nil, err
	}
	a.watchConfig()
	return a, nil
}

func (a *App) init(cfg *config.Config, opts Options) error {
	ctx := context.Background()

	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		if opts.Registry != nil {
			a.Metrics = metrics.NewWithRegistry(opts.Registry)
			metricsHandler = promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})
		} else {
			a.Metrics = metrics.New()
			metricsHandler = promhttp.Handler()
		}
		a.Logger.Info().Str("path", cfg.Metrics.Path).Msg("prometheus metrics enabled")
	}

	var table *devices.Table
	if cfg.Devices.Path != "" {
		t, err := devices.Load(cfg.Devices.Path)
		if err != nil {
			return fmt.Errorf("load devices: %w", err)
		}
		table = t
		a.Logger.Info().Str("path", cfg.Devices.Path).Int("channels", t.Len()).Msg("device table loaded")
	}

	store, closers, err := NewStore(TransportConfig{
		Transports: cfg.Transports,
		Devices:    table,
		Clock:      a.clock,
		Logger:     a.Logger,
	})
	if err != nil {
		return fmt.Errorf("init transports: %w", err)
	}
	a.Store = store
	a.closers = closers

	deps := app.ChannelDeps{
		Store:  store,
		Clock:  a.clock,
		IDGen:  idgen.UUID{},
		Logger: a.Logger,
	}
	if a.Metrics != nil {
		deps.Metrics = a.Metrics
	}
	if cfg.Journal.Enabled {
		db, journal, err := OpenJournal(ctx, cfg.Journal)
		if err != nil {
			return err
		}
		a.DB = db
		a.Journal = journal
		deps.Journal = journal
		if cfg.Journal.Retention > 0 {
			a.pruner = NewJournalPruner(journal, cfg.Journal.Retention, a.clock, a.Logger)
		}
		a.Logger.Info().Str("dsn", cfg.Journal.DSN).Msg("write journal enabled")
	}

	a.Channels = app.NewChannelService(deps, app.ChannelConfig{
		DefaultTimeout: cfg.Query.DefaultTimeout,
	})

	a.GraphQL = graphql.NewServer(a.Channels, a.Metrics, a.Logger, graphql.ServerConfig{
		MaxConcurrency: cfg.GraphQL.MaxConcurrency,
		InitTimeout:    cfg.GraphQL.InitTimeout,
		KeepAlive:      cfg.GraphQL.KeepAlive,
		QueryCacheSize: cfg.GraphQL.QueryCacheSize,
	})

	var ide http.Handler
	if cfg.GraphQL.Playground {
		ide = graphql.Playground("/graphql")
	}

	router := apihttp.NewRouter(apihttp.RouterConfig{
		GraphQL:        a.GraphQL,
		Playground:     ide,
		Channels:       apihttp.NewChannelHandler(a.Channels, a.Logger),
		Health:         apihttp.NewHealthHandler(store),
		Metrics:        a.Metrics,
		MetricsHandler: metricsHandler,
		MetricsPath:    cfg.Metrics.Path,
		Version:        opts.Version,
		RequestTimeout: cfg.Server.RequestTimeout,
	}, a.Logger)

	base, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	a.HTTPServer = &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BaseContext:  func(net.Listener) context.Context { return base },
	}
	return nil
}

// watchConfig applies reloadable settings and reports reload outcomes.
func (a *App) watchConfig() {
	a.Config.OnChange(func(cfg *config.Config) {
		if err := a.output.apply(cfg.Logging); err != nil {
			a.Logger.Error().Err(err).Msg("apply logging config")
		}
	})
	if a.Metrics != nil {
		a.Config.OnReload(func(err error) {
			a.Metrics.ConfigReloaded(err, a.clock.Now())
		})
	}
}

// Run serves on the configured address until SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", a.HTTPServer.Addr)
	if err != nil {
		a.Shutdown()
		return fmt.Errorf("listen: %w", err)
	}
	return a.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	if err := a.Config.WatchFile(); err != nil {
		a.Logger.Warn().Err(err).Msg("config file watch disabled")
	}
	a.Config.WatchSignals()

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info().
			Str("addr", ln.Addr().String()).
			Strs("transports", a.Store.Transports()).
			Str("default_transport", a.Store.Default()).
			Msg("server started")
		if err := a.HTTPServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			a.Shutdown()
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		a.Logger.Info().Msg("shutting down")
	}

	return a.Shutdown()
}

// Shutdown gracefully stops the application. Safe to call more than once.
func (a *App) Shutdown() error {
	a.shutdown.Do(func() {
		timeout := config.Default().Server.ShutdownTimeout
		if a.Config != nil {
			a.Config.Stop()
			timeout = a.Config.Get().Server.ShutdownTimeout
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if a.HTTPServer != nil {
			if err := a.HTTPServer.Shutdown(ctx); err != nil {
				a.Logger.Error().Err(err).Msg("http server shutdown error")
			}
		}
		if a.cancel != nil {
			a.cancel()
		}

		// Gateway connections go after the server so no handler is mid-call.
		for _, c := range a.closers {
			if err := c.Close(); err != nil {
				a.Logger.Error().Err(err).Msg("transport close error")
			}
		}

		if a.pruner != nil {
			a.pruner.Close()
		}
		if a.DB != nil {
			if err := a.DB.Close(); err != nil {
				a.Logger.Error().Err(err).Msg("database close error")
			}
		}

		a.Logger.Info().Msg("shutdown complete")
	})
	return nil
}
