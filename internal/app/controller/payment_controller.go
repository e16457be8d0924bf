package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/formflow-uk/formflow-backend/internal/app/service"
	apierrors "github.com/formflow-uk/formflow-backend/internal/errors"
	"github.com/formflow-uk/formflow-backend/internal/middleware"
)

type PaymentController struct {
	paymentService service.PaymentService
}

func NewPaymentController(paymentService service.PaymentService) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

// CreatePaymentIntent issues a fixed-amount registration payment intent.
// The request body is ignored; amount and currency are server-fixed.
// POST /create-payment-intent
func (ctrl *PaymentController) CreatePaymentIntent(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	clientSecret, err := ctrl.paymentService.CreateRegistrationIntent()
	if err != nil {
		log.Error("Failed to create payment intent", err)
		apierrors.UpstreamError(c, "Unable to start payment right now")
		return
	}

	log.Info("Payment intent created")

	c.JSON(http.StatusOK, gin.H{
		"clientSecret": clientSecret,
	})
}
