package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formflow-uk/formflow-backend/pkg/companieshouse"
)

type fakeRegistry struct {
	titles []string
	err    error
	calls  int
}

func (f *fakeRegistry) SearchCompanies(_ context.Context, _ string) (*companieshouse.SearchResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	resp := &companieshouse.SearchResponse{TotalResults: len(f.titles)}
	for _, title := range f.titles {
		resp.Items = append(resp.Items, companieshouse.Company{Title: title})
	}
	return resp, nil
}

func TestNameService_CheckAvailability_Collision(t *testing.T) {
	tests := []struct {
		name        string
		companyName string
		titles      []string
	}{
		{
			name:        "Exact normalized match",
			companyName: "Acme Trading",
			titles:      []string{"ACME TRADING"},
		},
		{
			name:        "Match with LIMITED suffix",
			companyName: "Acme Trading",
			titles:      []string{"ACME TRADING LIMITED"},
		},
		{
			name:        "Match with LTD suffix",
			companyName: "Acme Trading",
			titles:      []string{"ACME TRADING LTD"},
		},
		{
			name:        "Whitespace and case folded before comparison",
			companyName: "  acme   trading ",
			titles:      []string{"Acme Trading Limited"},
		},
		{
			name:        "Collision among non-matching candidates",
			companyName: "Acme Trading",
			titles:      []string{"ACME HOLDINGS", "ACME TRADING LTD", "ACME SERVICES"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewNameService(&fakeRegistry{titles: tt.titles})

			result, err := svc.CheckAvailability(context.Background(), tt.companyName)
			require.NoError(t, err)

			assert.False(t, result.Available)
			require.Len(t, result.Suggestions, 5)
			assert.Equal(t, []string{
				tt.companyName + " UK",
				tt.companyName + " Solutions",
				tt.companyName + " Group",
				tt.companyName + " Holdings",
				tt.companyName + " Services",
			}, result.Suggestions)
		})
	}
}

func TestNameService_CheckAvailability_Available(t *testing.T) {
	tests := []struct {
		name        string
		companyName string
		titles      []string
	}{
		{
			name:        "No candidates at all",
			companyName: "Acme Trading",
			titles:      nil,
		},
		{
			name:        "Only partial matches",
			companyName: "Acme Trading",
			titles:      []string{"ACME TRADING SOLUTIONS LTD", "ACME"},
		},
		{
			name:        "Suffix on the query side does not match",
			companyName: "Acme Trading Limited",
			titles:      []string{"ACME TRADING"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewNameService(&fakeRegistry{titles: tt.titles})

			result, err := svc.CheckAvailability(context.Background(), tt.companyName)
			require.NoError(t, err)

			assert.True(t, result.Available)
			assert.Empty(t, result.Suggestions)
		})
	}
}

func TestNameService_CheckAvailability_EmptyName(t *testing.T) {
	registry := &fakeRegistry{}
	svc := NewNameService(registry)

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := svc.CheckAvailability(context.Background(), name)
		assert.ErrorIs(t, err, ErrEmptyCompanyName)
	}

	// No registry call is made for empty input
	assert.Zero(t, registry.calls)
}

func TestNameService_CheckAvailability_RegistryError(t *testing.T) {
	svc := NewNameService(&fakeRegistry{err: errors.New("connection refused")})

	result, err := svc.CheckAvailability(context.Background(), "Acme Trading")
	assert.ErrorIs(t, err, ErrRegistryUnavailable)
	assert.Nil(t, result)
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"acme trading", "ACME TRADING"},
		{"  Acme   Trading  ", "ACME TRADING"},
		{"ACME\tTRADING\nLTD", "ACME TRADING LTD"},
		{"acme", "ACME"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeName(tt.in))
	}
}
