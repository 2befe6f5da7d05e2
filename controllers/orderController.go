package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"gastro-pos/helpers"
	"gastro-pos/models"
	"gastro-pos/store"
)

// OrderViewFormat decorates an order with its derived totals. Totals are
// computed on every read, never stored.
type OrderViewFormat struct {
	*models.Order
	Total_due         decimal.Decimal `json:"total_due"`
	Total_paid        decimal.Decimal `json:"total_paid"`
	Remaining         decimal.Decimal `json:"remaining"`
	Total_due_display string          `json:"total_due_display"`
}

func orderView(order *models.Order) OrderViewFormat {
	return OrderViewFormat{
		Order:             order,
		Total_due:         order.TotalDue(),
		Total_paid:        order.TotalPaid(),
		Remaining:         order.Remaining(),
		Total_due_display: helpers.FormatAmount(order.TotalDue()),
	}
}

func GetOrders(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		views := []OrderViewFormat{}
		for _, order := range orders.All() {
			views = append(views, orderView(order))
		}
		c.JSON(http.StatusOK, views)
	}
}

func GetOrder(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}
		order, ok := orders.Get(orderID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, orderView(order))
	}
}
