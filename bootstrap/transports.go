package bootstrap

import (
	"fmt"
	"io"

	"github.com/artpar/coniql/adapters/devices"
	"github.com/artpar/coniql/adapters/pvws"
	"github.com/artpar/coniql/adapters/sim"
	"github.com/artpar/coniql/app"
	"github.com/artpar/coniql/config"
	"github.com/artpar/coniql/ports"
	"github.com/rs/zerolog"
)

// TransportConfig provides what the channel plugins are built from.
type TransportConfig struct {
	Transports config.TransportsConfig
	Devices    *devices.Table // may be nil
	Clock      ports.Clock
	Logger     zerolog.Logger
}

// NewStore builds every enabled plugin, registers it and freezes the store.
// The returned closers release plugin connections on shutdown.
func NewStore(cfg TransportConfig) (*app.Store, []io.Closer, error) {
	store := app.NewStore()
	var closers []io.Closer

	for _, name := range cfg.Transports.Enabled() {
		plugin, err := newPlugin(name, cfg)
		if err != nil {
			closeAll(closers)
			return nil, nil, fmt.Errorf("transport %s: %w", name, err)
		}
		if err := store.Register(name, plugin, name == cfg.Transports.Default); err != nil {
			closeAll(closers)
			return nil, nil, err
		}
		if c, ok := plugin.(io.Closer); ok {
			closers = append(closers, c)
		}
		cfg.Logger.Info().
			Str("transport", name).
			Bool("default", name == cfg.Transports.Default).
			Msg("transport registered")
	}

	store.Freeze()
	return store, closers, nil
}

func newPlugin(name string, cfg TransportConfig) (ports.ChannelPlugin, error) {
	switch name {
	case sim.Transport:
		return sim.New(cfg.Clock, cfg.Devices, cfg.Logger), nil
	case pvws.SchemeCA, pvws.SchemePVA:
		url := cfg.Transports.CA.URL
		if name == pvws.SchemePVA {
			url = cfg.Transports.PVA.URL
		}
		return pvws.New(pvws.Options{
			Scheme:       name,
			URL:          url,
			DialTimeout:  cfg.Transports.DialTimeout,
			WriteTimeout: cfg.Transports.WriteTimeout,
		}, cfg.Devices, cfg.Clock, cfg.Logger)
	default:
		return nil, fmt.Errorf("unknown transport %q", name)
	}
}

func closeAll(closers []io.Closer) {
	for _, c := range closers {
		c.Close()
	}
}
