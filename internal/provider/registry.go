package provider

import (
	"context"
	"log"
)

// Registry holds all registered article providers
type Registry struct {
	providers []Provider
}

// NewRegistry creates a new provider registry
func NewRegistry() *Registry {
	return &Registry{
		providers: []Provider{},
	}
}

// Register adds a provider to the registry
func (r *Registry) Register(p Provider) {
	r.providers = append(r.providers, p)
}

// GetAll returns all registered providers
func (r *Registry) GetAll() []Provider {
	return r.providers
}

// Count returns the number of registered providers
func (r *Registry) Count() int {
	return len(r.providers)
}

// FetchAll queries every registered provider in registration order. A
// provider that fails is logged and skipped; its articles are simply absent
// from the aggregate result.
func (r *Registry) FetchAll(ctx context.Context, q Query) []Article {
	var all []Article
	for _, p := range r.providers {
		log.Printf("[Registry] Fetching from: %s", p.Name())
		articles, err := p.Fetch(ctx, q)
		if err != nil {
			log.Printf("[Registry] %s failed: %v", p.Name(), err)
			continue
		}
		log.Printf("[Registry] %s -> %d articles", p.Name(), len(articles))
		all = append(all, articles...)
	}
	log.Printf("[Registry] Total articles found: %d", len(all))
	return all
}
