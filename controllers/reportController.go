package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gastro-pos/services"
)

// GetRevenueReport aggregates all recorded payments. Optional start and end
// query params (YYYY-MM-DD) restrict the report to a date range; the end date
// is inclusive.
func GetRevenueReport(reports *services.ReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var start, end time.Time
		if raw := c.Query("start"); raw != "" {
			parsed, err := time.Parse("2006-01-02", raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date format"})
				return
			}
			start = parsed
		}
		if raw := c.Query("end"); raw != "" {
			parsed, err := time.Parse("2006-01-02", raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date format"})
				return
			}
			end = parsed.Add(24*time.Hour - time.Nanosecond)
		}
		c.JSON(http.StatusOK, reports.Build(start, end))
	}
}
