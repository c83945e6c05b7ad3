package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	request "dealdesk/internal/adapter/http/dto/request"
	response "dealdesk/internal/adapter/http/dto/response"
	"dealdesk/internal/domain/finance"
	"dealdesk/internal/usecase"
	"dealdesk/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const exportFilename = "dealdesk-workspace.json"

var (
	errInvalidDealPayload = pkg.NewDomainErrorSimple("INVALID_DEAL_INPUT", "Invalid deal payload", http.StatusBadRequest)
	errInvalidScenario    = pkg.NewDomainErrorSimple("INVALID_SCENARIO", "scenario must be a non-negative integer", http.StatusBadRequest)
)

// DealHandler serves the deal workspace.
type DealHandler struct {
	usecase usecase.IDealUseCase
	log     *zap.Logger
}

func NewDealHandler(uc usecase.IDealUseCase, log *zap.Logger) *DealHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &DealHandler{usecase: uc, log: log}
}

// ListDeals godoc
// @Summary  List deals, most recently updated first
// @Tags     deals
// @Produce  json
// @Success  200 {array} response.DealSummaryResponse
// @Router   /deals [get]
func (h *DealHandler) ListDeals(c *gin.Context) {
	deals, err := h.usecase.List(c.Request.Context())
	if err != nil {
		h.fail(c, "list", err)
		return
	}
	c.JSON(http.StatusOK, response.FromDeals(deals))
}

// CreateDeal godoc
// @Summary  Create an empty deal
// @Tags     deals
// @Accept   json
// @Produce  json
// @Param    body body request.CreateDealRequest false "Optional name"
// @Success  201 {object} response.DealResponse
// @Router   /deals [post]
func (h *DealHandler) CreateDeal(c *gin.Context) {
	var payload request.CreateDealRequest
	body, err := c.GetRawData()
	if err == nil && len(bytes.TrimSpace(body)) > 0 {
		err = json.Unmarshal(body, &payload)
	}
	if err != nil {
		c.JSON(errInvalidDealPayload.HTTPStatus, errInvalidDealPayload.ToHTTPError())
		return
	}

	d, err := h.usecase.Create(c.Request.Context(), payload.Name)
	if err != nil {
		h.fail(c, "create", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromDeal(d))
}

// GetDeal godoc
// @Summary  Get a deal
// @Tags     deals
// @Produce  json
// @Param    id path string true "Deal ID"
// @Success  200 {object} response.DealResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /deals/{id} [get]
func (h *DealHandler) GetDeal(c *gin.Context) {
	d, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, response.FromDeal(d))
}

// UpdateDetails godoc
// @Summary  Update descriptive fields, status and conviction
// @Tags     deals
// @Accept   json
// @Produce  json
// @Param    id   path string true "Deal ID"
// @Param    body body request.UpdateDetailsRequest true "Fields to change"
// @Success  200 {object} response.DealResponse
// @Router   /deals/{id} [patch]
func (h *DealHandler) UpdateDetails(c *gin.Context) {
	var payload request.UpdateDetailsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDealPayload.HTTPStatus, errInvalidDealPayload.ToHTTPError())
		return
	}

	d, err := h.usecase.UpdateDetails(c.Request.Context(), c.Param("id"), payload.ToUpdate())
	if err != nil {
		h.fail(c, "update details", err)
		return
	}
	c.JSON(http.StatusOK, response.FromDeal(d))
}

// UpdateBaseline godoc
// @Summary  Replace revenue and EBITDA figures
// @Tags     deals
// @Accept   json
// @Produce  json
// @Param    id   path string true "Deal ID"
// @Param    body body request.BaselineRequest true "Baseline figures"
// @Success  200 {object} response.DealResponse
// @Router   /deals/{id}/baseline [put]
func (h *DealHandler) UpdateBaseline(c *gin.Context) {
	var payload request.BaselineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDealPayload.HTTPStatus, errInvalidDealPayload.ToHTTPError())
		return
	}
	upd, err := payload.ToUpdate()
	if err != nil {
		c.JSON(errInvalidDealPayload.HTTPStatus, errInvalidDealPayload.WithDetails(err.Error()).ToHTTPError())
		return
	}

	d, err := h.usecase.UpdateBaseline(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		h.fail(c, "update baseline", err)
		return
	}
	c.JSON(http.StatusOK, response.FromDeal(d))
}

// ReplaceAdjustments godoc
// @Summary  Replace the addback and deduction lists
// @Tags     deals
// @Accept   json
// @Produce  json
// @Param    id   path string true "Deal ID"
// @Param    body body request.AdjustmentsRequest true "Adjustment lines"
// @Success  200 {object} response.DealResponse
// @Router   /deals/{id}/adjustments [put]
func (h *DealHandler) ReplaceAdjustments(c *gin.Context) {
	var payload request.AdjustmentsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDealPayload.HTTPStatus, errInvalidDealPayload.ToHTTPError())
		return
	}
	addbacks, deductions, err := payload.ToLines()
	if err != nil {
		c.JSON(errInvalidDealPayload.HTTPStatus, errInvalidDealPayload.WithDetails(err.Error()).ToHTTPError())
		return
	}

	d, err := h.usecase.ReplaceAdjustments(c.Request.Context(), c.Param("id"), addbacks, deductions)
	if err != nil {
		h.fail(c, "replace adjustments", err)
		return
	}
	c.JSON(http.StatusOK, response.FromDeal(d))
}

// UpdateFinancing godoc
// @Summary  Replace financing assumptions
// @Tags     deals
// @Accept   json
// @Produce  json
// @Param    id   path string true "Deal ID"
// @Param    body body request.FinancingRequest true "Financing assumptions"
// @Success  200 {object} response.DealResponse
// @Router   /deals/{id}/financing [put]
func (h *DealHandler) UpdateFinancing(c *gin.Context) {
	var payload request.FinancingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDealPayload.HTTPStatus, errInvalidDealPayload.ToHTTPError())
		return
	}
	upd, err := payload.ToUpdate()
	if err != nil {
		c.JSON(errInvalidDealPayload.HTTPStatus, errInvalidDealPayload.WithDetails(err.Error()).ToHTTPError())
		return
	}

	d, err := h.usecase.UpdateFinancing(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		h.fail(c, "update financing", err)
		return
	}
	c.JSON(http.StatusOK, response.FromDeal(d))
}

// ApplyExtraction godoc
// @Summary  Apply a reviewed CIM extraction to a deal
// @Tags     deals
// @Accept   json
// @Produce  json
// @Param    id   path string true "Deal ID"
// @Param    body body request.ApplyExtractionRequest true "Extraction result"
// @Success  200 {object} response.DealResponse
// @Router   /deals/{id}/extraction [post]
func (h *DealHandler) ApplyExtraction(c *gin.Context) {
	var payload request.ApplyExtractionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDealPayload.HTTPStatus, errInvalidDealPayload.ToHTTPError())
		return
	}

	d, err := h.usecase.ApplyExtraction(c.Request.Context(), c.Param("id"), payload.Result, payload.Reason)
	if err != nil {
		h.fail(c, "apply extraction", err)
		return
	}
	c.JSON(http.StatusOK, response.FromDeal(d))
}

// DeleteDeal godoc
// @Summary  Delete a deal
// @Tags     deals
// @Param    id path string true "Deal ID"
// @Success  204
// @Failure  404 {object} pkg.HTTPError
// @Router   /deals/{id} [delete]
func (h *DealHandler) DeleteDeal(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "delete", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetAnalysis godoc
// @Summary  Financing analysis for one purchase-multiple scenario
// @Tags     deals
// @Produce  json
// @Param    id       path  string true  "Deal ID"
// @Param    scenario query int    false "Scenario index (default 1)"
// @Success  200 {object} response.AnalysisResponse
// @Router   /deals/{id}/analysis [get]
func (h *DealHandler) GetAnalysis(c *gin.Context) {
	scenario, ok := scenarioParam(c)
	if !ok {
		c.JSON(errInvalidScenario.HTTPStatus, errInvalidScenario.ToHTTPError())
		return
	}

	a, err := h.usecase.Analyze(c.Request.Context(), c.Param("id"), scenario)
	if err != nil {
		h.fail(c, "analyze", err)
		return
	}
	c.JSON(http.StatusOK, response.FromAnalysis(a))
}

// GetLOI godoc
// @Summary  Draft LOI terms for one scenario
// @Tags     deals
// @Produce  json
// @Param    id       path  string true  "Deal ID"
// @Param    scenario query int    false "Scenario index (default 1)"
// @Success  200 {object} response.LOIResponse
// @Router   /deals/{id}/loi [get]
func (h *DealHandler) GetLOI(c *gin.Context) {
	scenario, ok := scenarioParam(c)
	if !ok {
		c.JSON(errInvalidScenario.HTTPStatus, errInvalidScenario.ToHTTPError())
		return
	}

	loi, err := h.usecase.DraftLOI(c.Request.Context(), c.Param("id"), scenario)
	if err != nil {
		h.fail(c, "draft loi", err)
		return
	}
	c.JSON(http.StatusOK, response.FromLOI(loi))
}

// ExportWorkspace godoc
// @Summary  Download every deal as JSON
// @Tags     workspace
// @Produce  json
// @Success  200 {array} entities.Deal
// @Router   /deals/export [get]
func (h *DealHandler) ExportWorkspace(c *gin.Context) {
	deals, err := h.usecase.Export(c.Request.Context())
	if err != nil {
		h.fail(c, "export", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	c.JSON(http.StatusOK, deals)
}

// ImportWorkspace godoc
// @Summary  Replace every deal with an exported workspace
// @Tags     workspace
// @Accept   json
// @Produce  json
// @Param    body body []entities.Deal true "Exported workspace"
// @Success  200 {object} response.ImportResponse
// @Router   /deals/import [put]
func (h *DealHandler) ImportWorkspace(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(errInvalidDealPayload.HTTPStatus, errInvalidDealPayload.ToHTTPError())
		return
	}
	deals, err := request.DecodeWorkspace(body)
	if err != nil {
		c.JSON(errInvalidDealPayload.HTTPStatus, errInvalidDealPayload.WithDetails(err.Error()).ToHTTPError())
		return
	}

	n, err := h.usecase.Import(c.Request.Context(), deals)
	if err != nil {
		h.fail(c, "import", err)
		return
	}
	c.JSON(http.StatusOK, response.ImportResponse{Imported: n})
}

func (h *DealHandler) fail(c *gin.Context, op string, err error) {
	appErr := mapDealError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.log.Error("[deal][handler] "+op+" failed", zap.String("deal_id", c.Param("id")), zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// scenarioParam reads ?scenario=N. Out-of-range indexes are resolved by
// the analysis, so only malformed values are rejected here.
func scenarioParam(c *gin.Context) (int, bool) {
	raw := c.Query("scenario")
	if raw == "" {
		return finance.DefaultScenario, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func mapDealError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDealID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid deal status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidConviction):
		return pkg.NewDomainErrorSimple("INVALID_CONVICTION", "Invalid conviction lean", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidConfidence):
		return pkg.NewDomainErrorSimple("INVALID_CONFIDENCE", "Conviction confidence must be between 0 and 100", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDuplicateDealID):
		return pkg.NewDomainErrorSimple("DUPLICATE_DEAL_ID", "Workspace contains the same deal id twice", http.StatusConflict)
	case errors.Is(err, usecase.ErrDealNotFound):
		return pkg.NewDomainErrorSimple("DEAL_NOT_FOUND", "Deal not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
