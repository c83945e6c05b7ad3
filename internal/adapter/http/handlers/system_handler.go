package handlers

import (
	"net/http"

	request "dealdesk/internal/adapter/http/dto/request"
	response "dealdesk/internal/adapter/http/dto/response"
	"dealdesk/internal/domain/finance"
	"dealdesk/internal/usecase"
	"dealdesk/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCalculatorInput = pkg.NewDomainErrorSimple("INVALID_CALCULATOR_INPUT", "Invalid financing inputs", http.StatusBadRequest)

// SystemHandler serves health checks and the stateless calculator.
type SystemHandler struct {
	extraction usecase.IExtractionUseCase
}

func NewSystemHandler(extraction usecase.IExtractionUseCase) *SystemHandler {
	return &SystemHandler{extraction: extraction}
}

// Ping godoc
// @Summary  Liveness probe
// @Tags     system
// @Produce  json
// @Success  200 {object} response.PingResponse
// @Router   /ping [get]
func (h *SystemHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, response.PingResponse{Message: "pong"})
}

// Health godoc
// @Summary  Service health and extraction availability
// @Tags     system
// @Produce  json
// @Success  200 {object} response.HealthResponse
// @Router   /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.HealthResponse{
		OK:         true,
		Extraction: h.extraction.Configured(),
		Provider:   h.extraction.Provider(),
	})
}

// CalculateFinancing godoc
// @Summary  Run the financing calculator on ad-hoc inputs
// @Tags     calculator
// @Accept   json
// @Produce  json
// @Param    body body request.CalculatorRequest true "Financing inputs"
// @Success  200 {object} response.CalculatorResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /calculator/financing [post]
func (h *SystemHandler) CalculateFinancing(c *gin.Context) {
	var payload request.CalculatorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCalculatorInput.HTTPStatus, errInvalidCalculatorInput.WithDetails(err.Error()).ToHTTPError())
		return
	}
	in, err := payload.ToInputs()
	if err != nil {
		c.JSON(errInvalidCalculatorInput.HTTPStatus, errInvalidCalculatorInput.WithDetails(err.Error()).ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFinancing(finance.ComputeFinancing(in)))
}
