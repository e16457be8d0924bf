package service

import (
	"context"
	"errors"
	"strings"

	"github.com/formflow-uk/formflow-backend/internal/app/model"
	"github.com/formflow-uk/formflow-backend/pkg/companieshouse"
	"github.com/formflow-uk/formflow-backend/pkg/logger"
)

var (
	ErrEmptyCompanyName    = errors.New("company name is required")
	ErrRegistryUnavailable = errors.New("company registry unavailable")
)

// suggestionSuffixes are appended to the submitted name, in this order,
// when the name collides with an existing company. No availability
// re-check is performed on suggestions.
var suggestionSuffixes = []string{" UK", " Solutions", " Group", " Holdings", " Services"}

// RegistrySearcher is the part of the Companies House client the name
// service depends on
type RegistrySearcher interface {
	SearchCompanies(ctx context.Context, query string) (*companieshouse.SearchResponse, error)
}

// NameService checks proposed company names against the public register
type NameService interface {
	CheckAvailability(ctx context.Context, companyName string) (*model.AvailabilityResult, error)
}

type nameService struct {
	registry RegistrySearcher
}

// NewNameService creates a new name availability service
func NewNameService(registry RegistrySearcher) NameService {
	return &nameService{registry: registry}
}

// CheckAvailability searches the register for the proposed name and
// decides collision under a normalized, entity-suffix-insensitive exact
// comparison. This approximates the UK "same as" rules; it does not fold
// punctuation or homophones.
func (s *nameService) CheckAvailability(ctx context.Context, companyName string) (*model.AvailabilityResult, error) {
	if strings.TrimSpace(companyName) == "" {
		return nil, ErrEmptyCompanyName
	}

	resp, err := s.registry.SearchCompanies(ctx, companyName)
	if err != nil {
		logger.Error("Company registry search failed", err, map[string]interface{}{
			"query": companyName,
		})
		return nil, ErrRegistryUnavailable
	}

	normalized := normalizeName(companyName)
	for _, candidate := range resp.Items {
		title := normalizeName(candidate.Title)
		if title == normalized ||
			title == normalized+" LIMITED" ||
			title == normalized+" LTD" {
			return &model.AvailabilityResult{
				Available:   false,
				Suggestions: buildSuggestions(companyName),
			}, nil
		}
	}

	return &model.AvailabilityResult{
		Available:   true,
		Suggestions: []string{},
	}, nil
}

// normalizeName trims, uppercases and collapses internal whitespace runs
// to a single space
func normalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToUpper(name)), " ")
}

// buildSuggestions appends the fixed suffixes to the original,
// non-normalized name
func buildSuggestions(companyName string) []string {
	suggestions := make([]string, 0, len(suggestionSuffixes))
	for _, suffix := range suggestionSuffixes {
		suggestions = append(suggestions, companyName+suffix)
	}
	return suggestions
}
