package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server         ServerConfig
	CORS           CORSConfig
	CompaniesHouse CompaniesHouseConfig
	Stripe         StripeConfig
	Email          EmailConfig
	Registration   RegistrationConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	Environment string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type CompaniesHouseConfig struct {
	APIKey  string
	BaseURL string
}

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
}

type EmailConfig struct {
	Region  string
	Sender  string
	DevMode bool
}

type RegistrationConfig struct {
	LogPath string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			GinMode:     getEnv("GIN_MODE", "debug"),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		},
		CompaniesHouse: CompaniesHouseConfig{
			APIKey:  getEnv("COMPANIES_HOUSE_API_KEY", ""),
			BaseURL: getEnv("COMPANIES_HOUSE_BASE_URL", "https://api.company-information.service.gov.uk"),
		},
		Stripe: StripeConfig{
			SecretKey:     getEnv("STRIPE_SECRET_KEY", ""),
			WebhookSecret: getEnv("STRIPE_WEBHOOK_SECRET", ""),
		},
		Email: EmailConfig{
			Region: getEnv("AWS_REGION", ""),
			Sender: getEnv("EMAIL_SENDER", "registrations@formflow.co.uk"),
		},
		Registration: RegistrationConfig{
			LogPath: getEnv("REGISTRATION_LOG_PATH", "data/registrations.log"),
		},
	}

	// Without an AWS region the mailer logs summaries instead of sending
	config.Email.DevMode = config.Email.Region == ""

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	var result []string
	for i := 0; i < len(s); {
		end := i
		for end < len(s) && s[end] != ',' {
			end++
		}
		result = append(result, s[i:end])
		i = end + 1
	}
	return result
}
