package controller

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/formflow-uk/formflow-backend/internal/app/service"
	apierrors "github.com/formflow-uk/formflow-backend/internal/errors"
	"github.com/formflow-uk/formflow-backend/internal/middleware"
)

type WebhookController struct {
	webhookService service.WebhookService
}

func NewWebhookController(webhookService service.WebhookService) *WebhookController {
	return &WebhookController{webhookService: webhookService}
}

// HandleStripeWebhook receives signed payment events. The body must stay
// raw and unparsed until the signature over it has been verified.
// POST /stripe-webhook
func (ctrl *WebhookController) HandleStripeWebhook(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Warn("Failed to read webhook body", map[string]interface{}{
			"error": err.Error(),
		})
		apierrors.BadRequest(c, apierrors.WebhookBodyUnreadable, "Unable to read request body")
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if err := ctrl.webhookService.HandleEvent(payload, signature); err != nil {
		log.Warn("Webhook rejected", map[string]interface{}{
			"error": err.Error(),
		})
		apierrors.BadRequest(c, apierrors.WebhookSignatureInvalid, "Webhook signature verification failed")
		return
	}

	// Acknowledge every verified event so the provider stops retrying
	c.JSON(http.StatusOK, gin.H{
		"received": true,
	})
}
