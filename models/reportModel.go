package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentDetail is one row of the revenue report: a payment joined back to
// its parent order for table and order display.
type PaymentDetail struct {
	Paid_at        time.Time       `json:"paid_at"`
	Table_name     string          `json:"table_name"`
	Order_id       int64           `json:"order_id"`
	Payer_name     string          `json:"payer_name"`
	Method         string          `json:"method"`
	Amount         decimal.Decimal `json:"amount"`
	Amount_display string          `json:"amount_display"`
}

type RevenueReport struct {
	Total_ingresos     decimal.Decimal            `json:"total_ingresos"`
	Total_display      string                     `json:"total_display"`
	Resumen_por_metodo map[string]decimal.Decimal `json:"resumen_por_metodo"`
	Detalle            []PaymentDetail            `json:"detalle"`
}
