package domain

// Listing represents one candidate product retrieved from an e-commerce site.
// A Listing is immutable once produced; scoring derives new values without
// touching the original price or rating.
type Listing struct {
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Rating float64 `json:"rating"`
	Link   string  `json:"link"`
	Site   string  `json:"site,omitempty"` // originating site, kept for traceability
}

// ScoredListing is a Listing plus its normalized price/rating and weighted
// score. It is a derived view computed per ranking pass, never persisted.
type ScoredListing struct {
	Listing
	NormPrice  float64 `json:"normPrice"`
	NormRating float64 `json:"normRating"`
	Score      float64 `json:"score"`
}

// ParsedQuery is the structured extraction returned by the language model for
// an auto-part request.
type ParsedQuery struct {
	PartType     string     `json:"part_type"`
	VehicleModel string     `json:"vehicle_model"`
	PriceRange   [2]float64 `json:"price_range"`
}

// SearchRequest represents a part search request
type SearchRequest struct {
	Query string `json:"query" binding:"required"`
}

// SearchResult holds the outcome of one aggregation pass: the normalized
// query actually sent to every site, the merged listings in registry order,
// and the top-ranked pick (nil when no site returned anything).
type SearchResult struct {
	Query    string            `json:"query"`
	Parsed   *ParsedQuery      `json:"parsed,omitempty"`
	Listings []Listing         `json:"listings"`
	Optimal  *ScoredListing    `json:"optimal,omitempty"`
	Sources  map[string]string `json:"sources,omitempty"` // site -> "cache" | "live" | "error"
}
