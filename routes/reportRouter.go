package routes

import (
	controller "gastro-pos/controllers"
	"gastro-pos/services"

	"github.com/gin-gonic/gin"
)

func ReportRoutes(incomingRoutes *gin.Engine, reports *services.ReportService) {
	incomingRoutes.GET("/reports/daily", controller.GetRevenueReport(reports))
}
