package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/formflow-uk/formflow-backend/internal/app/service"
	apierrors "github.com/formflow-uk/formflow-backend/internal/errors"
	"github.com/formflow-uk/formflow-backend/internal/middleware"
)

type NameController struct {
	nameService service.NameService
}

func NewNameController(nameService service.NameService) *NameController {
	return &NameController{nameService: nameService}
}

// CheckNameRequest represents the request to check a company name
type CheckNameRequest struct {
	CompanyName string `json:"companyName"`
}

// CheckName checks whether a proposed company name is available
// POST /check-name
func (ctrl *NameController) CheckName(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CheckNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid request body", map[string]interface{}{
			"error": err.Error(),
		})
		apierrors.BadRequest(c, apierrors.ValidationInvalidInput, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.CompanyName) == "" {
		log.Warn("Missing company name", nil)
		apierrors.BadRequest(c, apierrors.NameMissing, "Company name is required")
		return
	}

	result, err := ctrl.nameService.CheckAvailability(c.Request.Context(), req.CompanyName)
	if err != nil {
		log.Error("Failed to check name availability", err, map[string]interface{}{
			"company_name": req.CompanyName,
		})

		if errors.Is(err, service.ErrEmptyCompanyName) {
			apierrors.BadRequest(c, apierrors.NameMissing, "Company name is required")
			return
		}
		apierrors.UpstreamError(c, "Unable to check name availability right now")
		return
	}

	log.Info("Name availability checked", map[string]interface{}{
		"company_name": req.CompanyName,
		"available":    result.Available,
	})

	c.JSON(http.StatusOK, result)
}
