package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations.
// Values are stored as opaque JSON payloads, mirroring Redis string semantics.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// ShoppingSearchClient defines the interface for the external shopping-search provider
type ShoppingSearchClient interface {
	SearchShopping(ctx context.Context, query string, num int) (*SerperShoppingResponse, error)
}

// ChecklistGenerator defines the interface for turning a freeform project
// description into structured checklist items
type ChecklistGenerator interface {
	GenerateChecklist(ctx context.Context, projectQuery string) ([]ChecklistItem, error)
}
