package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHealth reports service liveness
// @Summary Health check
// @Description Returns ok when the service is up; requires no authentication
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/master/health [get]
func getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RegisterHealthRoutes registers the unauthenticated health endpoint.
func RegisterHealthRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", getHealth)
}
