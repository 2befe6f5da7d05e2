package routes

import (
	controller "gastro-pos/controllers"
	"gastro-pos/services"

	"github.com/gin-gonic/gin"
)

func SessionRoutes(incomingRoutes *gin.Engine, session *services.SessionService) {
	incomingRoutes.POST("/session/open", controller.OpenSession(session))
	incomingRoutes.GET("/session", controller.GetSession(session))
	incomingRoutes.POST("/session/lines/menu", controller.AddMenuLine(session))
	incomingRoutes.POST("/session/lines/weight", controller.AddWeightLine(session))
	incomingRoutes.DELETE("/session/lines/:line_id", controller.RemoveLine(session))
	incomingRoutes.POST("/session/payments", controller.AddPayment(session))
	incomingRoutes.DELETE("/session/payments/:payment_id", controller.RemovePayment(session))
	incomingRoutes.POST("/session/finalize", controller.FinalizeOrder(session))
	incomingRoutes.POST("/session/close", controller.CloseSession(session))
}
