package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelstore/internal/catalog"
)

// Health reports liveness plus catalog size so a missing data file is visible.
func Health(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":       "ok",
			"catalog_size": cat.Len(),
		})
	}
}
