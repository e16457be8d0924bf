package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSICService_Search_ShortQuery(t *testing.T) {
	svc := NewSICService()

	for _, q := range []string{"", "6", "  6  ", " a "} {
		results := svc.Search(q)
		assert.Empty(t, results, "query %q should return no results", q)
	}
}

func TestSICService_Search_ByCode(t *testing.T) {
	svc := NewSICService()

	results := svc.Search("62020")
	require.Len(t, results, 1)
	assert.Equal(t, "62020", results[0].Code)
	assert.Equal(t, "Information technology consultancy activities", results[0].Description)
}

func TestSICService_Search_ByCodePrefix(t *testing.T) {
	svc := NewSICService()

	results := svc.Search("620")
	require.NotEmpty(t, results)
	for _, entry := range results {
		assert.Contains(t, entry.Code, "620")
	}
}

func TestSICService_Search_ByDescriptionCaseInsensitive(t *testing.T) {
	svc := NewSICService()

	lower := svc.Search("software")
	upper := svc.Search("SOFTWARE")
	require.NotEmpty(t, lower)
	assert.Equal(t, lower, upper)

	for _, entry := range lower {
		assert.Contains(t, strings.ToLower(entry.Description), "software")
	}
}

func TestSICService_Search_CapAndCatalogOrder(t *testing.T) {
	svc := NewSICService()

	// "of" matches far more than 15 descriptions
	results := svc.Search("of")
	assert.Len(t, results, maxSICResults)

	// Results preserve catalog order, which is ascending by code
	for i := 1; i < len(results); i++ {
		assert.Less(t, results[i-1].Code, results[i].Code)
	}
}

func TestSICService_Search_NoMatch(t *testing.T) {
	svc := NewSICService()

	results := svc.Search("zzzz-no-such-entry")
	assert.Empty(t, results)
	assert.NotNil(t, results)
}
