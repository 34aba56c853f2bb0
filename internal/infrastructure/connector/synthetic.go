package connector

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/partscout/backend/internal/domain"
)

// Synthetic is a stand-in connector that fabricates one listing per site.
// It exists so the full pipeline can run without any scraping; production
// deployments replace it with a real per-site fetcher behind the same
// domain.Connector interface.
type Synthetic struct{}

// NewSynthetic creates a synthetic connector
func NewSynthetic() *Synthetic {
	return &Synthetic{}
}

// Fetch returns a single randomized listing for the site. Prices land in
// 1200-2000 and ratings in 3.8-4.5, rounded to two decimals.
func (s *Synthetic) Fetch(ctx context.Context, siteID, query string) ([]domain.Listing, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	listing := domain.Listing{
		Name:   fmt.Sprintf("%s - Sample from %s", query, siteID),
		Price:  float64(1200 + rand.Intn(801)),
		Rating: math.Round((3.8+rand.Float64()*0.7)*100) / 100,
		Link:   domain.BuildSearchURL(siteID, query),
		Site:   siteID,
	}

	return []domain.Listing{listing}, nil
}
