package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"gastro-pos/services"
)

type OpenSessionRequest struct {
	Table_id *int `json:"table_id" validate:"required"`
}

type MenuLineRequest struct {
	Menu_item_id  *int64           `json:"menu_item_id" validate:"required"`
	Quantity      *int64           `json:"quantity" validate:"required"`
	Unit_price    *decimal.Decimal `json:"unit_price"`
	Customer_note string           `json:"customer_note"`
}

type WeightLineRequest struct {
	Grams          *decimal.Decimal `json:"grams" validate:"required"`
	Price_per_kilo *decimal.Decimal `json:"price_per_kilo" validate:"required"`
	Customer_note  string           `json:"customer_note"`
}

type PaymentRequest struct {
	Method     *string          `json:"method" validate:"required,eq=Cash|eq=Yape|eq=Plin|eq=Card"`
	Amount     *decimal.Decimal `json:"amount" validate:"required"`
	Payer_name *string          `json:"payer_name" validate:"required"`
}

func sessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNoActiveSession),
		errors.Is(err, services.ErrUnknownTable),
		errors.Is(err, services.ErrUnknownMenuItem):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrOutstandingBalance):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

func OpenSession(session *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req OpenSessionRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&req); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		order, err := session.Open(*req.Table_id)
		if err != nil {
			sessionError(c, err)
			return
		}
		c.JSON(http.StatusOK, orderView(order))
	}
}

func GetSession(session *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := session.Current()
		if err != nil {
			sessionError(c, err)
			return
		}
		c.JSON(http.StatusOK, orderView(order))
	}
}

func AddMenuLine(session *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MenuLineRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&req); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		order, err := session.AddMenuLine(*req.Menu_item_id, *req.Quantity, req.Unit_price, req.Customer_note)
		if err != nil {
			sessionError(c, err)
			return
		}
		c.JSON(http.StatusOK, orderView(order))
	}
}

func AddWeightLine(session *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req WeightLineRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&req); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		order, err := session.AddWeightLine(*req.Grams, *req.Price_per_kilo, req.Customer_note)
		if err != nil {
			sessionError(c, err)
			return
		}
		c.JSON(http.StatusOK, orderView(order))
	}
}

func RemoveLine(session *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lineID, err := strconv.ParseInt(c.Param("line_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid line id"})
			return
		}
		order, err := session.RemoveLine(lineID)
		if err != nil {
			sessionError(c, err)
			return
		}
		c.JSON(http.StatusOK, orderView(order))
	}
}

func AddPayment(session *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PaymentRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&req); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		order, err := session.AddPayment(*req.Method, *req.Amount, *req.Payer_name)
		if err != nil {
			sessionError(c, err)
			return
		}
		c.JSON(http.StatusOK, orderView(order))
	}
}

func RemovePayment(session *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		paymentID, err := strconv.ParseInt(c.Param("payment_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment id"})
			return
		}
		order, err := session.RemovePayment(paymentID)
		if err != nil {
			sessionError(c, err)
			return
		}
		c.JSON(http.StatusOK, orderView(order))
	}
}

func FinalizeOrder(session *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := session.Finalize()
		if err != nil {
			sessionError(c, err)
			return
		}
		c.JSON(http.StatusOK, orderView(order))
	}
}

func CloseSession(session *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session.Close()
		c.JSON(http.StatusOK, gin.H{"message": "session closed"})
	}
}
