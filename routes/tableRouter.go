package routes

import (
	controller "gastro-pos/controllers"
	"gastro-pos/store"

	"github.com/gin-gonic/gin"
)

func TableRoutes(incomingRoutes *gin.Engine, tables *store.TableStore, orders *store.OrderStore) {
	incomingRoutes.GET("/tables", controller.GetTables(tables, orders))
}
