package usecase

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/projectcart/backend/internal/domain"
	"github.com/projectcart/backend/internal/infrastructure/serper"
	"golang.org/x/sync/errgroup"
)

// ProductSearchConfig holds configuration for the product search service
type ProductSearchConfig struct {
	MaxOffers     int           // offers requested per item (3 per price tier)
	MaxConcurrent int           // in-flight item searches
	ItemTimeout   time.Duration // deadline for one item's retrieval
	MaxBundles    int
	CacheTTL      time.Duration
}

// ProductSearchService fans a checklist out to the shopping-search provider,
// one pipeline per item, and aggregates the joined results into retailer bundles
type ProductSearchService struct {
	cache         domain.CacheRepository
	shopping      domain.ShoppingSearchClient
	maxOffers     int
	maxConcurrent int
	itemTimeout   time.Duration
	maxBundles    int
	cacheTTL      time.Duration
}

// NewProductSearchService creates a new product search service with dependencies
func NewProductSearchService(
	cache domain.CacheRepository,
	shopping domain.ShoppingSearchClient,
	config ProductSearchConfig,
) *ProductSearchService {
	maxOffers := config.MaxOffers
	if maxOffers <= 0 {
		maxOffers = maxAllOffers
	}

	maxConcurrent := config.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 8
	}

	itemTimeout := config.ItemTimeout
	if itemTimeout <= 0 {
		itemTimeout = 15 * time.Second
	}

	maxBundles := config.MaxBundles
	if maxBundles <= 0 {
		maxBundles = defaultMaxBundles
	}

	cacheTTL := config.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = 15 * time.Minute
	}

	return &ProductSearchService{
		cache:         cache,
		shopping:      shopping,
		maxOffers:     maxOffers,
		maxConcurrent: maxConcurrent,
		itemTimeout:   itemTimeout,
		maxBundles:    maxBundles,
		cacheTTL:      cacheTTL,
	}
}

// SearchProducts runs the full search pipeline for a checklist: one bounded
// concurrent retrieval per item, joined in request order, then a single
// reduction into ranked retailer bundles.
//
// Per-item failures degrade to a result with an error string and empty
// offers; only an empty item list fails the whole request.
func (s *ProductSearchService) SearchProducts(
	ctx context.Context,
	request *domain.SearchRequest,
) (*domain.SearchResponse, error) {
	if request == nil || len(request.Items) == 0 {
		return nil, domain.ErrInvalidRequest
	}

	// Indexed write-back keeps result order matching request order
	// regardless of which pipeline finishes first
	results := make([]domain.ItemSearchResult, len(request.Items))

	g := new(errgroup.Group)
	g.SetLimit(s.maxConcurrent)

	for i, item := range request.Items {
		g.Go(func() error {
			results[i] = s.searchItem(ctx, item, request.Notes)
			return nil
		})
	}

	// Tasks record their own failures, so Wait never returns an error;
	// it only joins the fan-out before aggregation starts
	_ = g.Wait()

	bundles := BuildRetailerBundles(results, s.maxBundles)

	return &domain.SearchResponse{
		Success:   true,
		Results:   results,
		Bundles:   bundles,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// searchItem runs the retrieval pipeline for a single checklist item:
// cache check, provider call, normalization, tier classification
func (s *ProductSearchService) searchItem(
	ctx context.Context,
	item domain.ChecklistItem,
	notes string,
) domain.ItemSearchResult {
	result := domain.ItemSearchResult{
		ItemName:    item.Name,
		ItemDetails: item,
		Tiers:       emptyTiers(),
		AllOffers:   []domain.Offer{},
	}

	if item.Name == "" {
		result.Error = "item name is required"
		return result
	}

	query := BuildSearchQuery(item, notes)
	cacheKey := offerCacheKey(query)

	// Try cache first
	if offers, err := s.offersFromCache(ctx, cacheKey); err == nil {
		result.Tiers, result.AllOffers = ClassifyTiers(offers)
		return result
	}

	itemCtx, cancel := context.WithTimeout(ctx, s.itemTimeout)
	defer cancel()

	searchResp, err := s.shopping.SearchShopping(itemCtx, query, s.maxOffers)
	if err != nil {
		// Degrade to an empty result; sibling items proceed independently
		log.Printf("[SEARCH] Retrieval failed for %q: %v", item.Name, err)
		result.Error = err.Error()
		return result
	}

	offers := serper.NormalizeOffers(searchResp.Shopping)
	result.Tiers, result.AllOffers = ClassifyTiers(offers)

	if err := s.cacheOffers(ctx, cacheKey, offers); err != nil {
		// A failed cache write is not worth failing the item over
		log.Printf("[SEARCH] Cache write failed for %q: %v", item.Name, err)
	}

	return result
}

// offersFromCache retrieves normalized offers for a query from cache
func (s *ProductSearchService) offersFromCache(ctx context.Context, key string) ([]domain.Offer, error) {
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var offers []domain.Offer
	if err := json.Unmarshal(data, &offers); err != nil {
		return nil, domain.ErrCacheMiss
	}

	return offers, nil
}

// cacheOffers stores normalized offers for a query in cache
func (s *ProductSearchService) cacheOffers(ctx context.Context, key string, offers []domain.Offer) error {
	data, err := json.Marshal(offers)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, key, data, s.cacheTTL)
}

// emptyTiers returns tiers that serialize as empty arrays rather than null
func emptyTiers() domain.OfferTiers {
	return domain.OfferTiers{
		Low:  []domain.Offer{},
		Mid:  []domain.Offer{},
		High: []domain.Offer{},
	}
}
