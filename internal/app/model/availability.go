package model

// AvailabilityResult is the outcome of a company-name availability check.
// Suggestions is non-empty exactly when Available is false.
type AvailabilityResult struct {
	Available   bool     `json:"available"`
	Suggestions []string `json:"suggestions"`
}
