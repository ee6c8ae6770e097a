// Package plugin defines the contract between a generation host and its
// distributors, and a registry that constructs distributors by name.
package plugin

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/kjourdan1/fsdist/internal/distributor"
)

// FilesystemName is the registry name of the filesystem distributor.
const FilesystemName = "fs"

// ErrUnknownDistributor is returned by Registry.New for unregistered names.
var ErrUnknownDistributor = errors.New("unknown distributor")

// Distributor delivers a rendered file to its destinations.
type Distributor interface {
	Distribute(info distributor.Info) error
}

// Factory constructs a Distributor from its host-supplied configuration.
type Factory func(cfg distributor.Config, creds *distributor.Credentials) (Distributor, error)

// Registry maps distributor names to factories. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Default returns a registry with the filesystem distributor registered.
// Distributors it builds log through logger.
func Default(logger *log.Logger, opts ...distributor.Option) *Registry {
	r := NewRegistry()
	if logger != nil {
		opts = append([]distributor.Option{distributor.WithLogger(logger)}, opts...)
	}
	// Registering into a fresh registry cannot collide.
	_ = r.Register(FilesystemName, FilesystemFactory(opts...))
	return r
}

// Register adds a factory under name. Names must be unique.
func (r *Registry) Register(name string, f Factory) error {
	if name == "" {
		return fmt.Errorf("registering distributor: empty name")
	}
	if f == nil {
		return fmt.Errorf("registering distributor %q: nil factory", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("distributor %q already registered", name)
	}
	r.factories[name] = f
	return nil
}

// New constructs the distributor registered under name.
func (r *Registry) New(name string, cfg distributor.Config, creds *distributor.Credentials) (Distributor, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDistributor, name)
	}
	return f(cfg, creds)
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for n := range r.factories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// FilesystemFactory returns a Factory for the filesystem distributor.
func FilesystemFactory(opts ...distributor.Option) Factory {
	return func(cfg distributor.Config, creds *distributor.Credentials) (Distributor, error) {
		d, err := distributor.New(cfg, creds, opts...)
		if err != nil {
			return nil, err
		}
		return filesystem{d}, nil
	}
}

// filesystem adapts *distributor.Distributor, whose Distribute returns the
// receiver for chaining, to the Distributor contract.
type filesystem struct {
	d *distributor.Distributor
}

func (f filesystem) Distribute(info distributor.Info) error {
	_, err := f.d.Distribute(info)
	return err
}

// Unwrap returns the underlying filesystem distributor when the plugin was
// built by FilesystemFactory.
func Unwrap(p Distributor) (*distributor.Distributor, bool) {
	f, ok := p.(filesystem)
	if !ok {
		return nil, false
	}
	return f.d, true
}
