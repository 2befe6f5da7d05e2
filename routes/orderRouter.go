package routes

import (
	controller "gastro-pos/controllers"
	"gastro-pos/store"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(incomingRoutes *gin.Engine, orders *store.OrderStore) {
	incomingRoutes.GET("/orders", controller.GetOrders(orders))
	incomingRoutes.GET("/orders/:order_id", controller.GetOrder(orders))
	incomingRoutes.GET("/ws", controller.HandleWebSocket())
}
