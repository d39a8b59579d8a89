// Package app provides application services that orchestrate domain logic.
package app

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/artpar/coniql/domain/channel"
	"github.com/artpar/coniql/ports"
)

// Store maps transport names to the plugins that serve them.
// It is built once at startup and frozen before requests are served;
// after Freeze it is read-only and safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	plugins     map[string]ports.ChannelPlugin
	defaultName string
	frozen      bool
}

// Resolved is the outcome of resolving a channel identifier.
type Resolved struct {
	ID        string // identifier as received
	Transport string
	Name      string // bare name passed to the plugin
	Plugin    ports.ChannelPlugin
	Config    channel.Config
}

// NewStore creates an empty plugin store.
func NewStore() *Store {
	return &Store{plugins: make(map[string]ports.ChannelPlugin)}
}

// Register adds a plugin under transport. When isDefault is true the plugin
// becomes the default, replacing any earlier default.
func (s *Store) Register(transport string, plugin ports.ChannelPlugin, isDefault bool) error {
	if transport == "" {
		return errors.New("transport name is required")
	}
	if plugin == nil {
		return fmt.Errorf("transport %q: plugin is nil", transport)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.frozen {
		return fmt.Errorf("transport %q: store is frozen", transport)
	}
	if _, exists := s.plugins[transport]; exists {
		return fmt.Errorf("transport %q already registered", transport)
	}

	s.plugins[transport] = plugin
	if isDefault {
		s.defaultName = transport
	}
	return nil
}

// Freeze rejects any further registration.
func (s *Store) Freeze() {
	s.mu.Lock()
	s.frozen = true
	s.mu.Unlock()
}

// Default returns the default transport name, or "" when none is set.
func (s *Store) Default() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.defaultName
}

// Transports returns the registered transport names in sorted order.
func (s *Store) Transports() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.plugins))
	for name := range s.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Plugin returns the plugin registered for transport.
func (s *Store) Plugin(transport string) (ports.ChannelPlugin, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.plugins[transport]
	return p, ok
}

// Resolve finds the plugin that owns id and asks it for the channel config.
//
// An identifier without a prefix goes to the default transport. A prefix
// that is not a registered transport is treated as part of the name and the
// whole identifier goes to the default transport, so "BL01:MTR:X" reaches
// the default plugin unchanged.
func (s *Store) Resolve(id string) (Resolved, error) {
	addr := channel.ParseAddress(id)

	s.mu.RLock()
	transport, name := addr.Transport, addr.Name
	plugin, ok := s.plugins[transport]
	if !ok {
		transport, name = s.defaultName, id
		plugin, ok = s.plugins[transport]
	}
	s.mu.RUnlock()

	if !ok {
		if addr.HasTransport() {
			return Resolved{}, fmt.Errorf("%w: %q", channel.ErrUnknownTransport, addr.Transport)
		}
		return Resolved{}, fmt.Errorf("%w: no default transport for %q", channel.ErrUnknownTransport, id)
	}

	cfg, err := plugin.ChannelConfig(name)
	if err != nil {
		return Resolved{}, fmt.Errorf("%s channel %q: %w", transport, name, err)
	}

	return Resolved{
		ID:        id,
		Transport: transport,
		Name:      name,
		Plugin:    plugin,
		Config:    cfg,
	}, nil
}

// StripTransport removes a registered transport prefix from pv, as found in
// the read_pv and write_pv fields of a channel config. A prefix that is not
// a registered transport is left in place.
func (s *Store) StripTransport(pv string) (transport, name string) {
	t, n := channel.StripTransport(pv)
	if t == "" {
		return "", pv
	}
	s.mu.RLock()
	_, ok := s.plugins[t]
	s.mu.RUnlock()
	if !ok {
		return "", pv
	}
	return t, n
}
