package provider

import (
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"cryptoprobe/internal/domain"
)

// Provider is an instantiated cryptographic provider.
type Provider interface {
	Name() domain.ProviderName
	Algorithms() []domain.Algorithm
	SelfTest() error
}

// Builder instantiates a provider.
type Builder func(logger *logrus.Entry) (Provider, error)

// Registration is what the registry knows about a provider before it is built.
type Registration struct {
	Name       domain.ProviderName
	Algorithms []domain.Algorithm
	builder    Builder
}

// Registry maps provider names to registrations. It is safe for concurrent use.
type Registry struct {
	mu            sync.RWMutex
	registrations map[domain.ProviderName]Registration
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{registrations: make(map[domain.ProviderName]Registration)}
}

// Register adds or replaces the registration for name.
func (r *Registry) Register(name domain.ProviderName, algorithms []domain.Algorithm, builder Builder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registrations[name] = Registration{
		Name:       name,
		Algorithms: append([]domain.Algorithm(nil), algorithms...),
		builder:    builder,
	}
}

// Unregister removes name; it is a no-op when name is absent.
func (r *Registry) Unregister(name domain.ProviderName) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.registrations, name)
}

// Lookup resolves name without building the provider.
func (r *Registry) Lookup(name domain.ProviderName) (Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.registrations[name]
	if !ok {
		return Registration{}, fmt.Errorf("%w: %s", domain.ErrProviderNotFound, name)
	}
	return reg, nil
}

// Installed implements domain.ProviderRegistry.
func (r *Registry) Installed(name domain.ProviderName) error {
	_, err := r.Lookup(name)
	return err
}

// List returns every registration sorted by name.
func (r *Registry) List() []domain.ProviderInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.ProviderInfo, 0, len(r.registrations))
	for _, reg := range r.registrations {
		out = append(out, domain.ProviderInfo{
			Name:       reg.Name,
			Algorithms: append([]domain.Algorithm(nil), reg.Algorithms...),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Build instantiates the provider registered under name.
func (r *Registry) Build(name domain.ProviderName, logger *logrus.Entry) (Provider, error) {
	reg, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	if reg.builder == nil {
		return nil, fmt.Errorf("provider %s has no builder", name)
	}
	p, err := reg.builder(logger.WithField("subsystem-provider", string(name)))
	if err != nil {
		return nil, fmt.Errorf("could not build provider %s: %w", name, err)
	}
	return p, nil
}

var _ domain.ProviderRegistry = (*Registry)(nil)
