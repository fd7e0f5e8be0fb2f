package service

import (
	"testing"

	"github.com/narmadatraders/billing-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *CatalogService {
	return NewCatalogService([]entity.CatalogItem{
		{English: "Chair", Marathi: "खुर्ची", Position: 0},
		{English: "Table", Marathi: "टेबल", Position: 1},
		{English: "Cheap Chair", Marathi: "स्वस्त खुर्ची", Position: 2},
		{English: "Cupboard", Marathi: "कपाट", Position: 3},
	})
}

func TestCatalogService_SuggestEmptyQuery(t *testing.T) {
	assert.Empty(t, testCatalog().Suggest(""))
}

func TestCatalogService_SuggestEnglishCaseInsensitive(t *testing.T) {
	got := testCatalog().Suggest("ch")
	require.Len(t, got, 2)
	assert.Equal(t, "Chair", got[0].English, "catalog order, no ranking")
	assert.Equal(t, "Cheap Chair", got[1].English)
}

func TestCatalogService_SuggestMarathiExactScript(t *testing.T) {
	got := testCatalog().Suggest("खुर्ची")
	require.Len(t, got, 2)
	assert.Equal(t, "खुर्ची", got[0].Marathi)
	assert.Equal(t, "स्वस्त खुर्ची", got[1].Marathi)
}

func TestCatalogService_SuggestCapped(t *testing.T) {
	entries := make([]entity.CatalogItem, 20)
	for i := range entries {
		entries[i] = entity.CatalogItem{English: "Nail", Marathi: "खिळे", Position: i}
	}
	got := NewCatalogService(entries).Suggest("nail")
	assert.Len(t, got, MaxSuggestions)
}

func TestCatalogService_ResolveExactMatches(t *testing.T) {
	s := testCatalog()
	assert.Equal(t, "खुर्ची", s.Resolve("chair"))
	assert.Equal(t, "खुर्ची", s.Resolve("CHAIR"))
	assert.Equal(t, "खुर्ची", s.Resolve("खुर्ची"))
}

func TestCatalogService_ResolvePartialMatches(t *testing.T) {
	s := testCatalog()
	// Input contained in a candidate's English name.
	assert.Equal(t, "खुर्ची", s.Resolve("chai"))
	// Candidate's English name contained in the input.
	assert.Equal(t, "खुर्ची", s.Resolve("wooden chair large"))
}

func TestCatalogService_ResolveMissReturnsInput(t *testing.T) {
	assert.Equal(t, "xyz123", testCatalog().Resolve("xyz123"))
	assert.Equal(t, "", testCatalog().Resolve(""))
}
