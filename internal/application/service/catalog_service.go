package service

import (
	"strings"

	"github.com/narmadatraders/billing-api/internal/domain/entity"
)

// MaxSuggestions caps the autocomplete dropdown size
const MaxSuggestions = 8

// CatalogService matches partial item names against the bilingual catalog.
// It holds the catalog in memory in natural order and is stateless with
// respect to the editing sessions.
type CatalogService struct {
	entries []entity.CatalogItem
}

// NewCatalogService creates a catalog matcher over the given entries, which
// must already be in catalog order.
func NewCatalogService(entries []entity.CatalogItem) *CatalogService {
	return &CatalogService{entries: entries}
}

// Entries returns the catalog in natural order
func (s *CatalogService) Entries() []entity.CatalogItem {
	return s.entries
}

// Suggest returns up to MaxSuggestions entries matching the query, in catalog
// order: the Marathi form must contain the query exactly, or the English form
// must contain it case-insensitively. An empty query yields no suggestions.
func (s *CatalogService) Suggest(query string) []entity.CatalogItem {
	if query == "" {
		return nil
	}

	lower := strings.ToLower(query)
	var matches []entity.CatalogItem
	for _, e := range s.entries {
		if strings.Contains(e.Marathi, query) || strings.Contains(strings.ToLower(e.English), lower) {
			matches = append(matches, e)
			if len(matches) == MaxSuggestions {
				break
			}
		}
	}
	return matches
}

// Resolve canonicalizes an item name into the catalog's Marathi display form.
// Exact matches on either language win first, then substring matches in
// either direction on the English form. Unmatched input is returned unchanged
// on the assumption that it is already canonical; a miss is not an error.
func (s *CatalogService) Resolve(text string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	lower := strings.ToLower(text)
	for _, e := range s.entries {
		if strings.ToLower(e.English) == lower || e.Marathi == text {
			return e.Marathi
		}
	}

	for _, e := range s.entries {
		english := strings.ToLower(e.English)
		if strings.Contains(english, lower) || strings.Contains(lower, english) {
			return e.Marathi
		}
	}

	return text
}
