package routes

import (
	controller "gastro-pos/controllers"
	"gastro-pos/store"

	"github.com/gin-gonic/gin"
)

func MenuRoutes(incomingRoutes *gin.Engine, menu *store.MenuStore) {
	incomingRoutes.GET("/menu", controller.GetMenuItems(menu))
	incomingRoutes.POST("/menu", controller.CreateMenuItem(menu))
	incomingRoutes.PATCH("/menu/:item_id", controller.UpdateMenuItem(menu))
	incomingRoutes.DELETE("/menu/:item_id", controller.DeleteMenuItem(menu))
}
