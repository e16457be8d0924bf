package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/formflow-uk/formflow-backend/config"
	"github.com/formflow-uk/formflow-backend/internal/app/controller"
	"github.com/formflow-uk/formflow-backend/internal/middleware"
)

type Router struct {
	nameController         *controller.NameController
	paymentController      *controller.PaymentController
	webhookController      *controller.WebhookController
	registrationController *controller.RegistrationController
	sicController          *controller.SICController
	config                 *config.Config
}

func NewRouter(
	nameController *controller.NameController,
	paymentController *controller.PaymentController,
	webhookController *controller.WebhookController,
	registrationController *controller.RegistrationController,
	sicController *controller.SICController,
	cfg *config.Config,
) *Router {
	return &Router{
		nameController:         nameController,
		paymentController:      paymentController,
		webhookController:      webhookController,
		registrationController: registrationController,
		sicController:          sicController,
		config:                 cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	router.POST("/check-name", r.nameController.CheckName)
	router.POST("/create-payment-intent", r.paymentController.CreatePaymentIntent)
	router.POST("/submit-registration", r.registrationController.SubmitRegistration)
	// Raw body route: the webhook controller reads the body itself so the
	// signature is verified over exactly what the provider sent
	router.POST("/stripe-webhook", r.webhookController.HandleStripeWebhook)

	router.GET("/api/sic-codes/search", r.sicController.SearchSICCodes)

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Stripe-Signature, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
