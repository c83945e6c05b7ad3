package routes

import (
	"dealdesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDeals      = "/deals"
	PathExtractCIM = "/extract-cim"
	PathCalculator = "/calculator"
)

func addDealRoutes(rg *gin.RouterGroup, h *handlers.DealHandler) {
	deals := rg.Group(PathDeals)
	{
		deals.GET("", h.ListDeals)
		deals.POST("", h.CreateDeal)

		deals.GET("/export", h.ExportWorkspace)
		deals.PUT("/import", h.ImportWorkspace)

		deals.GET("/:id", h.GetDeal)
		deals.PATCH("/:id", h.UpdateDetails)
		deals.DELETE("/:id", h.DeleteDeal)
		deals.PUT("/:id/baseline", h.UpdateBaseline)
		deals.PUT("/:id/adjustments", h.ReplaceAdjustments)
		deals.PUT("/:id/financing", h.UpdateFinancing)
		deals.POST("/:id/extraction", h.ApplyExtraction)
		deals.GET("/:id/analysis", h.GetAnalysis)
		deals.GET("/:id/loi", h.GetLOI)
	}
}

func addExtractionRoutes(rg *gin.RouterGroup, h *handlers.ExtractionHandler) {
	rg.POST(PathExtractCIM, h.ExtractCIM)
}
