package domain

import "context"

// CacheRepository defines the interface for the per-(query, site) result
// cache. The shipped implementations are a durable file store and an
// in-memory store; a bounded or TTL-aware store can be substituted without
// touching the aggregation pipeline.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]Listing, error)
	Set(ctx context.Context, key string, listings []Listing) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// Connector produces listings from one site for a normalized query. One
// connector failure must never abort the other sites' lookups. The shipped
// implementation is synthetic; production deployments swap in real per-site
// retrieval behind the same interface.
type Connector interface {
	Fetch(ctx context.Context, siteID, query string) ([]Listing, error)
}

// ChatClient defines the interface for the external language-model
// collaborator used during query normalization.
type ChatClient interface {
	Chat(ctx context.Context, prompt string) (string, error)
}
