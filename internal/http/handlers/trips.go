package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travelstore/internal/catalog"
	"travelstore/internal/domain"
	"travelstore/internal/http/middleware"
	"travelstore/internal/utils"
)

const featuredCount = 6

// SearchTrips runs the catalog query from the canonical query-string keys:
// destination, duration, price, category, sort.
// GET /api/trips
func SearchTrips(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := catalog.ParseQuery(c.Request.URL.Query())
		results := cat.Search(q)

		utils.LogEvent(middleware.GetRequestID(c), "catalog", "search",
			"results="+strconv.Itoa(len(results)))

		c.JSON(http.StatusOK, gin.H{
			"query":   q,
			"count":   len(results),
			"results": results,
		})
	}
}

// FeaturedTrips returns the storefront's home-page picks.
// GET /api/trips/featured
func FeaturedTrips(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"results": cat.Featured(featuredCount)})
	}
}

// GetTripByID returns one catalog record.
// GET /api/trips/:id
func GetTripByID(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil || id <= 0 {
			RespondDomainError(c, domain.ValidationError{Field: "id", Msg: "must be a positive integer"})
			return
		}

		trip, err := cat.FindByID(id)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, trip)
	}
}
