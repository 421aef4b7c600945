package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travelstore/internal/catalog"
	intconfig "travelstore/internal/config"
	"travelstore/internal/domain/models"
	"travelstore/internal/http/middleware"
	"travelstore/internal/services"
	"travelstore/internal/utils"
)

// ReloadCatalog re-reads the catalog source and swaps the snapshot atomically.
// POST /api/admin/catalog/reload
func ReloadCatalog(env intconfig.Env, cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		loaded, err := loadCatalog(env)
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "catalog reload failed", err)
			return
		}
		cat.Replace(loaded)

		utils.LogEvent(middleware.GetRequestID(c), "catalog", "reload",
			"size="+strconv.Itoa(len(loaded)))
		c.JSON(http.StatusOK, gin.H{"catalog_size": len(loaded)})
	}
}

func loadCatalog(env intconfig.Env) ([]models.Trip, error) {
	if env.CatalogDSN != "" && intconfig.DB != nil {
		return catalog.LoadFromDB(intconfig.DB)
	}
	return catalog.LoadFile(env.CatalogPath)
}

// ListSessions reports active booking sessions for staff inspection.
// GET /api/admin/sessions
func ListSessions(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list := sessions.List()
		c.JSON(http.StatusOK, gin.H{
			"count":    len(list),
			"sessions": list,
		})
	}
}
