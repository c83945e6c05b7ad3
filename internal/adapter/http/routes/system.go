package routes

import (
	"dealdesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addSystemRoutes(rg *gin.RouterGroup, h *handlers.SystemHandler) {
	rg.GET("/ping", h.Ping)
	rg.GET("/health", h.Health)
	rg.POST(PathCalculator+"/financing", h.CalculateFinancing)
}
