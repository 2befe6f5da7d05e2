package services

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"gastro-pos/helpers"
	"gastro-pos/models"
	"gastro-pos/store"
)

// ReportService is pure read-side aggregation over the order store. Reports
// are recomputed from scratch on every request; nothing is cached.
type ReportService struct {
	orders *store.OrderStore
}

func NewReportService(orders *store.OrderStore) *ReportService {
	return &ReportService{orders: orders}
}

// Build flattens every payment across all orders, groups totals by method
// and joins each payment back to its parent order. A zero start or end time
// leaves that bound open.
func (s *ReportService) Build(start, end time.Time) *models.RevenueReport {
	report := &models.RevenueReport{
		Total_ingresos:     decimal.Zero,
		Resumen_por_metodo: map[string]decimal.Decimal{},
		Detalle:            []models.PaymentDetail{},
	}
	for _, order := range s.orders.All() {
		for _, payment := range order.Payments {
			if !start.IsZero() && payment.Paid_at.Before(start) {
				continue
			}
			if !end.IsZero() && payment.Paid_at.After(end) {
				continue
			}
			report.Resumen_por_metodo[payment.Method] = report.Resumen_por_metodo[payment.Method].Add(payment.Amount)
			report.Total_ingresos = report.Total_ingresos.Add(payment.Amount)
			report.Detalle = append(report.Detalle, models.PaymentDetail{
				Paid_at:        payment.Paid_at,
				Table_name:     order.Table_name,
				Order_id:       order.Order_id,
				Payer_name:     payment.Payer_name,
				Method:         payment.Method,
				Amount:         payment.Amount,
				Amount_display: helpers.FormatAmount(payment.Amount),
			})
		}
	}
	// most recent first
	sort.Slice(report.Detalle, func(i, j int) bool {
		return report.Detalle[i].Paid_at.After(report.Detalle[j].Paid_at)
	})
	report.Total_display = helpers.FormatAmount(report.Total_ingresos)
	return report
}
