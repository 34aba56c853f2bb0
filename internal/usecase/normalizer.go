package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/partscout/backend/internal/domain"
)

// Normalization modes
const (
	ModeStructured = "structured" // extract part/vehicle/price JSON, recombine
	ModeFreetext   = "freetext"   // ask the model for a refined query string
)

const structuredPromptTemplate = `Extract the automobile part type, automobile part model, vehicle model, and price range from the following query:

Query: "%s"

Respond in JSON format with keys: part_type, vehicle_model, price_range (as a list of two numbers).`

const freetextPromptTemplate = `Rewrite the following automobile part request as a short e-commerce search query. Respond with the query text only, nothing else.

Request: "%s"`

// defaultPriceRange is the placeholder range used when extraction fails
var defaultPriceRange = [2]float64{0, 999999}

// QueryNormalizer turns raw user text into the canonical search string sent
// to every site. It asks the language model once per request; any failure is
// absorbed and replaced with a safe default, never surfaced to the caller.
type QueryNormalizer struct {
	client domain.ChatClient
	mode   string
	debug  bool
}

// NewQueryNormalizer creates a normalizer. A nil client means the model is
// unavailable and every request takes the fallback path.
func NewQueryNormalizer(client domain.ChatClient, mode string, debug bool) *QueryNormalizer {
	if mode != ModeStructured && mode != ModeFreetext {
		mode = ModeStructured
	}
	return &QueryNormalizer{
		client: client,
		mode:   mode,
		debug:  debug,
	}
}

// Normalize derives the search query for rawQuery. In structured mode it also
// returns the parsed extraction; in freetext mode parsed is nil.
func (n *QueryNormalizer) Normalize(ctx context.Context, rawQuery string) (string, *domain.ParsedQuery) {
	if n.mode == ModeFreetext {
		return n.normalizeFreetext(ctx, rawQuery), nil
	}

	parsed := n.parseStructured(ctx, rawQuery)
	query := fmt.Sprintf("%s for %s", parsed.PartType, parsed.VehicleModel)

	if n.debug {
		log.Printf("[NORMALIZE] %q -> %q", rawQuery, query)
	}
	return query, parsed
}

// parseStructured asks the model for a JSON extraction. On any failure it
// returns the empty-part placeholder with the default price range.
func (n *QueryNormalizer) parseStructured(ctx context.Context, rawQuery string) *domain.ParsedQuery {
	fallback := &domain.ParsedQuery{PriceRange: defaultPriceRange}

	if n.client == nil {
		return fallback
	}

	reply, err := n.client.Chat(ctx, fmt.Sprintf(structuredPromptTemplate, rawQuery))
	if err != nil {
		log.Printf("[NORMALIZE] model call failed: %v", err)
		return fallback
	}

	parsed, err := extractParsedQuery(reply)
	if err != nil {
		log.Printf("[NORMALIZE] could not parse model reply: %v", err)
		return fallback
	}

	return parsed
}

// normalizeFreetext asks the model for a refined query and falls back to the
// raw text when the model fails or returns nothing usable.
func (n *QueryNormalizer) normalizeFreetext(ctx context.Context, rawQuery string) string {
	if n.client == nil {
		return rawQuery
	}

	reply, err := n.client.Chat(ctx, fmt.Sprintf(freetextPromptTemplate, rawQuery))
	if err != nil {
		log.Printf("[NORMALIZE] model call failed: %v", err)
		return rawQuery
	}

	refined := strings.TrimSpace(strings.Trim(strings.TrimSpace(reply), `"`))
	if refined == "" {
		return rawQuery
	}

	if n.debug {
		log.Printf("[NORMALIZE] %q -> %q", rawQuery, refined)
	}
	return refined
}

// extractParsedQuery pulls the JSON object out of a model reply. Models often
// wrap the JSON in prose, so everything between the first '{' and the last
// '}' is taken as the payload.
func extractParsedQuery(reply string) (*domain.ParsedQuery, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("%w: no JSON object in reply", domain.ErrLLMFailure)
	}

	var parsed domain.ParsedQuery
	if err := json.Unmarshal([]byte(reply[start:end+1]), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLLMFailure, err)
	}

	if parsed.PriceRange == [2]float64{} {
		parsed.PriceRange = defaultPriceRange
	}

	return &parsed, nil
}
