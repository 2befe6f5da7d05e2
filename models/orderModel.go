package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusOpen   = "OPEN"
	StatusClosed = "CLOSED"

	LineByMenu   = "BY_MENU"
	LineByWeight = "BY_WEIGHT"

	MethodCash = "Cash"
	MethodYape = "Yape"
	MethodPlin = "Plin"
	MethodCard = "Card"
)

// SettlementTolerance is the rounding slack allowed when comparing the paid
// total against the due total before an order may be closed.
var SettlementTolerance = decimal.NewFromFloat(0.01)

// WeightDetails keeps the scale reading a buffet line was priced from. It is
// display-only; the line's unit price is never re-derived from it.
type WeightDetails struct {
	Grams          decimal.Decimal `json:"grams"`
	Price_per_kilo decimal.Decimal `json:"price_per_kilo"`
}

type OrderLine struct {
	Line_id        int64           `json:"line_id"`
	Name           string          `json:"name" validate:"required"`
	Unit_price     decimal.Decimal `json:"unit_price"`
	Quantity       int64           `json:"quantity" validate:"min=1"`
	Customer_note  string          `json:"customer_note"`
	Kind           string          `json:"kind" validate:"required,eq=BY_MENU|eq=BY_WEIGHT"`
	Weight_details *WeightDetails  `json:"weight_details,omitempty"`
}

func (l OrderLine) Total() decimal.Decimal {
	return l.Unit_price.Mul(decimal.NewFromInt(l.Quantity))
}

// Payment is immutable once recorded; it can only be removed again while the
// parent order is still open.
type Payment struct {
	Payment_id int64           `json:"payment_id"`
	Method     string          `json:"method" validate:"required,eq=Cash|eq=Yape|eq=Plin|eq=Card"`
	Amount     decimal.Decimal `json:"amount"`
	Payer_name string          `json:"payer_name" validate:"required"`
	Paid_at    time.Time       `json:"paid_at"`
}

type Order struct {
	Order_id   int64       `json:"order_id"`
	Table_id   int         `json:"table_id"`
	Table_name string      `json:"table_name"`
	Lines      []OrderLine `json:"lines"`
	Payments   []Payment   `json:"payments"`
	Status     string      `json:"status" validate:"required,eq=OPEN|eq=CLOSED"`
	Opened_at  time.Time   `json:"opened_at"`
}

// TotalDue is recomputed from the lines on every read so it can never drift.
func (o *Order) TotalDue() decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.Lines {
		total = total.Add(line.Total())
	}
	return total
}

func (o *Order) TotalPaid() decimal.Decimal {
	total := decimal.Zero
	for _, payment := range o.Payments {
		total = total.Add(payment.Amount)
	}
	return total
}

func (o *Order) Remaining() decimal.Decimal {
	return o.TotalDue().Sub(o.TotalPaid())
}

func (o *Order) IsClosed() bool {
	return o.Status == StatusClosed
}

// CanFinalize reports whether the order is settled up to the tolerance.
func (o *Order) CanFinalize() bool {
	return o.Remaining().LessThanOrEqual(SettlementTolerance)
}

// Clone returns a deep copy so callers can hand orders across ownership
// boundaries without sharing line or payment slices.
func (o *Order) Clone() *Order {
	clone := *o
	clone.Lines = make([]OrderLine, len(o.Lines))
	copy(clone.Lines, o.Lines)
	for i, line := range o.Lines {
		if line.Weight_details != nil {
			details := *line.Weight_details
			clone.Lines[i].Weight_details = &details
		}
	}
	clone.Payments = make([]Payment, len(o.Payments))
	copy(clone.Payments, o.Payments)
	return &clone
}
