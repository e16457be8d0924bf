package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/formflow-uk/formflow-backend/internal/app/model"
	"github.com/formflow-uk/formflow-backend/internal/app/service"
	apierrors "github.com/formflow-uk/formflow-backend/internal/errors"
	"github.com/formflow-uk/formflow-backend/internal/middleware"
)

type RegistrationController struct {
	registrationService service.RegistrationService
}

func NewRegistrationController(registrationService service.RegistrationService) *RegistrationController {
	return &RegistrationController{registrationService: registrationService}
}

// SubmitRegistration persists a submission and dispatches the notification
// POST /submit-registration
func (ctrl *RegistrationController) SubmitRegistration(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var reg model.Registration
	if err := c.ShouldBindJSON(&reg); err != nil {
		log.Warn("Invalid registration payload", map[string]interface{}{
			"error": err.Error(),
		})
		apierrors.BadRequest(c, apierrors.ValidationInvalidInput, "Invalid registration payload")
		return
	}

	if err := ctrl.registrationService.Submit(c.Request.Context(), &reg); err != nil {
		log.Error("Failed to submit registration", err, map[string]interface{}{
			"company_name": reg.CompanyName,
		})

		message := "Failed to submit registration"
		code := apierrors.RegistrationPersistFailed
		if errors.Is(err, service.ErrNotificationFailed) {
			// The record is already durably persisted at this point; the
			// caller still sees a failure. Recorded product decision.
			message = "Registration saved but notification failed"
			code = apierrors.RegistrationNotifyFailed
		}
		apierrors.RespondWithError(c, http.StatusInternalServerError, code, message)
		return
	}

	log.Info("Registration submitted", map[string]interface{}{
		"company_name": reg.CompanyName,
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Registration submitted successfully",
	})
}
