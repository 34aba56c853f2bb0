package usecase

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"log"

	"github.com/partscout/backend/internal/domain"
)

// SearchServiceConfig holds configuration for the search service
type SearchServiceConfig struct {
	PriceWeight        float64
	RatingWeight       float64
	EnableDebugLogging bool
}

// SearchService runs the aggregation pipeline: normalize the query once,
// cache-or-fetch per registered site, merge in registry order, rank.
type SearchService struct {
	normalizer   *QueryNormalizer
	cache        domain.CacheRepository
	connector    domain.Connector
	sites        []string
	priceWeight  float64
	ratingWeight float64
	debug        bool
}

// NewSearchService creates a search service with dependencies
func NewSearchService(
	normalizer *QueryNormalizer,
	cache domain.CacheRepository,
	connector domain.Connector,
	config SearchServiceConfig,
) *SearchService {
	priceWeight := config.PriceWeight
	ratingWeight := config.RatingWeight
	if priceWeight <= 0 && ratingWeight <= 0 {
		priceWeight = DefaultPriceWeight
		ratingWeight = DefaultRatingWeight
	}

	return &SearchService{
		normalizer:   normalizer,
		cache:        cache,
		connector:    connector,
		sites:        domain.SupportedSites,
		priceWeight:  priceWeight,
		ratingWeight: ratingWeight,
		debug:        config.EnableDebugLogging,
	}
}

// Search aggregates listings for a raw part request across every supported
// site. The query is normalized exactly once and the same string is used for
// every site lookup. A failing site contributes zero listings; an empty merged
// set is a valid result with a nil optimal pick, not an error.
func (s *SearchService) Search(ctx context.Context, request *domain.SearchRequest) (*domain.SearchResult, error) {
	if request == nil || request.Query == "" {
		return nil, domain.ErrInvalidRequest
	}

	query, parsed := s.normalizer.Normalize(ctx, request.Query)

	result := &domain.SearchResult{
		Query:    query,
		Parsed:   parsed,
		Listings: []domain.Listing{},
		Sources:  make(map[string]string),
	}

	for _, site := range s.sites {
		listings, source := s.lookupSite(ctx, query, site)
		result.Listings = append(result.Listings, listings...)
		result.Sources[site] = source
	}

	result.Optimal = SelectOptimal(result.Listings, s.priceWeight, s.ratingWeight)

	if s.debug {
		log.Printf("[SEARCH] query=%q listings=%d optimal=%v", query, len(result.Listings), result.Optimal != nil)
	}

	return result, nil
}

// lookupSite returns the cached listings for (query, site) or fetches and
// persists them. Cache I/O failures degrade to fetch-without-persist, and a
// connector failure yields zero listings so the other sites still aggregate.
func (s *SearchService) lookupSite(ctx context.Context, query, site string) ([]domain.Listing, string) {
	key := CacheKey(query, site)

	cached, err := s.cache.Get(ctx, key)
	if err == nil {
		if s.debug {
			log.Printf("[CACHE] hit site=%s key=%s", site, key)
		}
		return cached, "cache"
	}

	listings, err := s.connector.Fetch(ctx, site, query)
	if err != nil {
		log.Printf("[SEARCH] site %s failed, contributing zero listings: %v", site, err)
		return nil, "error"
	}

	if err := s.cache.Set(ctx, key, listings); err != nil {
		// The cache is not the source of truth; keep the fetched listings.
		log.Printf("[CACHE] store failed for site %s: %v", site, err)
	}

	return listings, "live"
}

// CacheKey derives the cache key for a (normalized query, site) pair: the hex
// MD5 of their concatenation. The 128-bit space dwarfs expected key counts,
// so collisions are an accepted risk and not detected.
func CacheKey(query, siteID string) string {
	sum := md5.Sum([]byte(query + siteID))
	return hex.EncodeToString(sum[:])
}
