package companieshouse

// Config represents the configuration for the Companies House client
type Config struct {
	// APIKey is the Companies House REST API key. It is sent as the
	// basic-auth username with an empty password.
	APIKey string

	// BaseURL is the Companies House API base URL
	BaseURL string
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrInvalidConfig
	}
	if c.BaseURL == "" {
		return ErrInvalidConfig
	}
	return nil
}
