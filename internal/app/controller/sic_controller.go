package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/formflow-uk/formflow-backend/internal/app/service"
)

type SICController struct {
	sicService service.SICService
}

func NewSICController(sicService service.SICService) *SICController {
	return &SICController{sicService: sicService}
}

// SearchSICCodes searches the SIC catalog by code or description.
// Queries shorter than 2 characters return an empty array, not an error.
// GET /api/sic-codes/search?q=
func (ctrl *SICController) SearchSICCodes(c *gin.Context) {
	results := ctrl.sicService.Search(c.Query("q"))
	c.JSON(http.StatusOK, results)
}
