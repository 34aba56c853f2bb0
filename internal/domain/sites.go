package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// SupportedSites lists every site the aggregator queries, in the order they
// are queried. Merge order of listings follows this order.
var SupportedSites = []string{
	"amazon", "ebay", "flipkart", "snapdeal", "indiamart", "boodmo", "pricerunner",
	"gomechanic", "cardekho", "autodoc", "motointegrator", "partslink24", "tecalliance", "camelcamelcamel",
}

// siteTemplates maps each site ID to its search URL template. The %s slot
// receives the percent-encoded query.
var siteTemplates = map[string]string{
	"flipkart":        "https://www.flipkart.com/search?q=%s",
	"amazon":          "https://www.amazon.in/s?k=%s",
	"snapdeal":        "https://www.snapdeal.com/search?keyword=%s",
	"ebay":            "https://www.ebay.com/sch/i.html?_nkw=%s",
	"indiamart":       "https://dir.indiamart.com/search.mp?ss=%s",
	"boodmo":          "https://boodmo.com/catalog/search/?q=%s",
	"pricerunner":     "https://www.pricerunner.com/search?q=%s",
	"gomechanic":      "https://gomechanic.in/spares?q=%s",
	"cardekho":        "https://www.cardekho.com/cars?q=%s",
	"autodoc":         "https://www.autodoc.co.uk/search?keyword=%s",
	"motointegrator":  "https://www.motointegrator.com/search?keyword=%s",
	"partslink24":     "https://www.partslink24.com/search?q=%s",
	"tecalliance":     "https://www.tecalliance.com/en/solutions/tecdoc-catalog?q=%s",
	"camelcamelcamel": "https://camelcamelcamel.com/search?sq=%s",
}

// BuildSearchURL returns the search results URL for a query on the given site.
// Site IDs without a bespoke template fall back to a generic /search?q= URL so
// newly registered sites degrade gracefully instead of failing.
func BuildSearchURL(siteID, query string) string {
	encoded := url.QueryEscape(query)
	if tmpl, ok := siteTemplates[strings.ToLower(siteID)]; ok {
		return fmt.Sprintf(tmpl, encoded)
	}
	return fmt.Sprintf("%s/search?q=%s", strings.TrimRight(siteID, "/"), encoded)
}

// ValidateSiteRegistry checks at startup that every supported site has a
// bespoke URL template.
func ValidateSiteRegistry() error {
	for _, site := range SupportedSites {
		if _, ok := siteTemplates[site]; !ok {
			return fmt.Errorf("site %q has no URL template", site)
		}
	}
	return nil
}
