package handlers

import (
	"net/http"

	response "proposalcraft/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

// GetCatalog godoc
// @Summary Values accepted by the briefing form
// @Tags public
// @Produce json
// @Success 200 {object} response.CatalogResponse
// @Router /catalog [get]
func GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, response.Catalog())
}

// Ping godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
