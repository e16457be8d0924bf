package model

// SICCode is one entry of the UK SIC 2007 classification catalog. The
// catalog is loaded once at process start and never mutated.
type SICCode struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}
