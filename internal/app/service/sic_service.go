package service

import (
	"strings"

	"github.com/formflow-uk/formflow-backend/internal/app/model"
)

const maxSICResults = 15

// SICService searches the static SIC 2007 classification catalog
type SICService interface {
	Search(query string) []model.SICCode
}

type sicService struct {
	catalog []model.SICCode
}

// NewSICService creates a SIC lookup service over the built-in catalog.
// The catalog is copied once at construction and never mutated, so it is
// safe for unbounded concurrent readers.
func NewSICService() SICService {
	catalog := make([]model.SICCode, len(sicCatalog))
	copy(catalog, sicCatalog)
	return &sicService{catalog: catalog}
}

// Search returns at most 15 catalog entries, in catalog order, whose code
// contains the query as a substring or whose description contains it
// case-insensitively. Queries shorter than 2 characters after trimming
// return an empty result rather than scanning the catalog.
func (s *sicService) Search(query string) []model.SICCode {
	q := strings.ToLower(strings.TrimSpace(query))
	if len(q) < 2 {
		return []model.SICCode{}
	}

	results := make([]model.SICCode, 0, maxSICResults)
	for _, entry := range s.catalog {
		if strings.Contains(entry.Code, q) ||
			strings.Contains(strings.ToLower(entry.Description), q) {
			results = append(results, entry)
			if len(results) == maxSICResults {
				break
			}
		}
	}
	return results
}
