package domain

import (
	"strings"
	"testing"
)

func TestBuildSearchURL(t *testing.T) {
	tests := []struct {
		name   string
		siteID string
		query  string
		want   string
	}{
		{
			name:   "amazon template",
			siteID: "amazon",
			query:  "brake pad",
			want:   "https://www.amazon.in/s?k=brake+pad",
		},
		{
			name:   "ebay template",
			siteID: "ebay",
			query:  "brake pad",
			want:   "https://www.ebay.com/sch/i.html?_nkw=brake+pad",
		},
		{
			name:   "special characters are encoded",
			siteID: "flipkart",
			query:  "oil filter & gasket",
			want:   "https://www.flipkart.com/search?q=oil+filter+%26+gasket",
		},
		{
			name:   "site ID is case-insensitive",
			siteID: "Amazon",
			query:  "spark plug",
			want:   "https://www.amazon.in/s?k=spark+plug",
		},
		{
			name:   "unknown site falls back to generic template",
			siteID: "partshub.example.com",
			query:  "clutch plate",
			want:   "partshub.example.com/search?q=clutch+plate",
		},
		{
			name:   "trailing slash stripped on fallback",
			siteID: "partshub.example.com/",
			query:  "clutch plate",
			want:   "partshub.example.com/search?q=clutch+plate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildSearchURL(tt.siteID, tt.query)
			if got != tt.want {
				t.Errorf("BuildSearchURL(%q, %q) = %q, want %q", tt.siteID, tt.query, got, tt.want)
			}
		})
	}
}

func TestBuildSearchURL_DistinctQueries(t *testing.T) {
	// Two distinct non-empty queries must never collide on the same site.
	for _, site := range SupportedSites {
		a := BuildSearchURL(site, "brake pad")
		b := BuildSearchURL(site, "brake disc")
		if a == b {
			t.Errorf("site %q: distinct queries produced identical URLs: %q", site, a)
		}
	}
}

func TestValidateSiteRegistry(t *testing.T) {
	if err := ValidateSiteRegistry(); err != nil {
		t.Errorf("ValidateSiteRegistry() error = %v, want nil", err)
	}

	for _, site := range SupportedSites {
		u := BuildSearchURL(site, "brake pad")
		if !strings.HasPrefix(u, "https://") {
			t.Errorf("site %q: URL %q does not use its bespoke template", site, u)
		}
	}
}
