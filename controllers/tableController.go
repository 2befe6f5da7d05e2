package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gastro-pos/helpers"
	"gastro-pos/store"
)

// TableViewFormat is a table joined with its open order, if one exists, so
// the floor grid can show occupancy and the running total.
type TableViewFormat struct {
	Table_id  int     `json:"table_id"`
	Name      string  `json:"name"`
	Occupied  bool    `json:"occupied"`
	Order_id  *int64  `json:"order_id,omitempty"`
	Total_due *string `json:"total_due,omitempty"`
}

func GetTables(tables *store.TableStore, orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		views := []TableViewFormat{}
		for _, table := range tables.List() {
			view := TableViewFormat{
				Table_id: table.Table_id,
				Name:     table.Name,
			}
			if order, ok := orders.FindOpenOrder(table.Table_id); ok {
				due := helpers.FormatAmount(order.TotalDue())
				view.Occupied = true
				view.Order_id = &order.Order_id
				view.Total_due = &due
			}
			views = append(views, view)
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"message": "Tables fetched successfully",
			"data":    views,
		})
	}
}
