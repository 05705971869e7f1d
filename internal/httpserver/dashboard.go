package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func statsHandler(svc DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svc.Stats(c.Request.Context(), principalFrom(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
