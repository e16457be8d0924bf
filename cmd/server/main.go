package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/stripe/stripe-go/v82"

	"github.com/formflow-uk/formflow-backend/config"
	"github.com/formflow-uk/formflow-backend/internal/app/controller"
	"github.com/formflow-uk/formflow-backend/internal/app/repository"
	"github.com/formflow-uk/formflow-backend/internal/app/service"
	"github.com/formflow-uk/formflow-backend/internal/router"
	"github.com/formflow-uk/formflow-backend/pkg/companieshouse"
	"github.com/formflow-uk/formflow-backend/pkg/logger"
	"github.com/formflow-uk/formflow-backend/pkg/mailer"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting formflow backend server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Companies House registry client
	registryClient, err := companieshouse.NewClient(companieshouse.Config{
		APIKey:  cfg.CompaniesHouse.APIKey,
		BaseURL: cfg.CompaniesHouse.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to create Companies House client", err)
	}

	// Stripe API key is process-global in stripe-go
	stripe.Key = cfg.Stripe.SecretKey

	// Notification mailer
	var mail mailer.Mailer
	if cfg.Email.DevMode {
		logger.Warn("AWS_REGION not set, notification emails will only be logged")
		mail = mailer.NewDevMailer()
	} else {
		mail, err = mailer.NewSESMailer(context.Background(), cfg.Email.Region, cfg.Email.Sender)
		if err != nil {
			logger.Fatal("Failed to create SES mailer", err)
		}
	}

	// Registration log
	registrationRepo, err := repository.NewRegistrationRepository(cfg.Registration.LogPath)
	if err != nil {
		logger.Fatal("Failed to open registration log", err)
	}

	// Initialize services
	nameService := service.NewNameService(registryClient)
	sicService := service.NewSICService()
	paymentService := service.NewPaymentService(service.StripeIntentCreator{})
	webhookService := service.NewWebhookService(cfg.Stripe.WebhookSecret)
	registrationService := service.NewRegistrationService(registrationRepo, mail)

	// Initialize controllers
	nameController := controller.NewNameController(nameService)
	paymentController := controller.NewPaymentController(paymentService)
	webhookController := controller.NewWebhookController(webhookService)
	registrationController := controller.NewRegistrationController(registrationService)
	sicController := controller.NewSICController(sicService)

	// Setup router
	r := router.NewRouter(
		nameController,
		paymentController,
		webhookController,
		registrationController,
		sicController,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
