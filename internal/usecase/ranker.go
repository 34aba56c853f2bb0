package usecase

import "github.com/partscout/backend/internal/domain"

// Score weights and the divide-by-zero guard for min/max normalization
const (
	DefaultPriceWeight  = 0.6
	DefaultRatingWeight = 0.4
	normEpsilon         = 1e-6
)

// ScoreListings computes normalized price/rating and the weighted score for
// every listing. Prices and ratings are min/max normalized across the set;
// lower price and higher rating both raise the score. The input is never
// mutated.
func ScoreListings(listings []domain.Listing, priceWeight, ratingWeight float64) []domain.ScoredListing {
	if len(listings) == 0 {
		return nil
	}

	minPrice, maxPrice := listings[0].Price, listings[0].Price
	minRating, maxRating := listings[0].Rating, listings[0].Rating
	for _, l := range listings[1:] {
		if l.Price < minPrice {
			minPrice = l.Price
		}
		if l.Price > maxPrice {
			maxPrice = l.Price
		}
		if l.Rating < minRating {
			minRating = l.Rating
		}
		if l.Rating > maxRating {
			maxRating = l.Rating
		}
	}

	scored := make([]domain.ScoredListing, 0, len(listings))
	for _, l := range listings {
		normPrice := (l.Price - minPrice) / (maxPrice - minPrice + normEpsilon)
		normRating := (l.Rating - minRating) / (maxRating - minRating + normEpsilon)

		scored = append(scored, domain.ScoredListing{
			Listing:    l,
			NormPrice:  normPrice,
			NormRating: normRating,
			Score:      (1-normPrice)*priceWeight + normRating*ratingWeight,
		})
	}

	return scored
}

// SelectOptimal returns the highest-scoring listing, or nil for an empty set.
// Ties keep the earliest listing in merge order.
func SelectOptimal(listings []domain.Listing, priceWeight, ratingWeight float64) *domain.ScoredListing {
	scored := ScoreListings(listings, priceWeight, ratingWeight)
	if len(scored) == 0 {
		return nil
	}

	best := 0
	for i := 1; i < len(scored); i++ {
		if scored[i].Score > scored[best].Score {
			best = i
		}
	}

	return &scored[best]
}
