package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"gopkg.in/go-playground/assert.v1"

	"gastro-pos/models"
	"gastro-pos/store"
)

func newTestSession() (*SessionService, *store.OrderStore, models.MenuItem) {
	menu := store.NewMenuStore()
	item := menu.Add(models.MenuItem{
		Name:       "Lomo Saltado",
		Unit_price: decimal.NewFromFloat(35.00),
		Category:   models.CategoryMains,
	})
	tables := store.NewTableStore(9)
	orders := store.NewOrderStore()
	return NewSessionService(orders, menu, tables, nil), orders, item
}

func TestOpenUnknownTable(t *testing.T) {
	session, _, _ := newTestSession()
	_, err := session.Open(42)
	assert.Equal(t, err, ErrUnknownTable)
}

func TestOpenDoesNotCommitUntilFirstMutation(t *testing.T) {
	session, orders, item := newTestSession()

	order, err := session.Open(3)
	assert.Equal(t, err, nil)
	assert.Equal(t, order.Table_name, "Mesa 3")
	assert.Equal(t, order.Status, models.StatusOpen)
	assert.Equal(t, len(orders.All()), 0)

	_, err = session.AddMenuLine(item.Item_id, 1, nil, "")
	assert.Equal(t, err, nil)
	assert.Equal(t, len(orders.All()), 1)
}

func TestTotalsTrackLineMutations(t *testing.T) {
	session, _, item := newTestSession()
	session.Open(3)

	order, err := session.AddMenuLine(item.Item_id, 2, nil, "")
	assert.Equal(t, err, nil)
	assert.Equal(t, order.TotalDue().StringFixed(2), "70.00")

	order, err = session.AddMenuLine(item.Item_id, 1, nil, "sin cebolla")
	assert.Equal(t, err, nil)
	assert.Equal(t, order.TotalDue().StringFixed(2), "105.00")

	order, err = session.RemoveLine(order.Lines[1].Line_id)
	assert.Equal(t, err, nil)
	assert.Equal(t, len(order.Lines), 1)
	assert.Equal(t, order.TotalDue().StringFixed(2), "70.00")
}

func TestMenuLinePriceOverride(t *testing.T) {
	session, _, item := newTestSession()
	session.Open(1)

	override := decimal.NewFromFloat(30.50)
	order, err := session.AddMenuLine(item.Item_id, 1, &override, "")
	assert.Equal(t, err, nil)
	assert.Equal(t, order.Lines[0].Unit_price.StringFixed(2), "30.50")
	assert.Equal(t, order.Lines[0].Name, "Lomo Saltado")
}

func TestAddMenuLineValidation(t *testing.T) {
	session, orders, item := newTestSession()
	session.Open(1)

	_, err := session.AddMenuLine(item.Item_id, 0, nil, "")
	assert.Equal(t, err, ErrInvalidQuantity)

	_, err = session.AddMenuLine(999999, 1, nil, "")
	assert.Equal(t, err, ErrUnknownMenuItem)

	assert.Equal(t, len(orders.All()), 0)
}

func TestWeightLinePricing(t *testing.T) {
	session, _, _ := newTestSession()
	session.Open(2)

	order, err := session.AddWeightLine(decimal.NewFromInt(500), decimal.NewFromFloat(59.90), "")
	assert.Equal(t, err, nil)
	line := order.Lines[0]
	assert.Equal(t, line.Unit_price.StringFixed(2), "29.95")
	assert.Equal(t, line.Quantity, int64(1))
	assert.Equal(t, line.Kind, models.LineByWeight)
	assert.Equal(t, line.Name, "Buffet (500g)")
	assert.Equal(t, line.Weight_details.Grams.StringFixed(0), "500")
	assert.Equal(t, line.Weight_details.Price_per_kilo.StringFixed(2), "59.90")
}

func TestWeightLineNotRepricedByLaterEntries(t *testing.T) {
	session, _, _ := newTestSession()
	session.Open(2)

	order, _ := session.AddWeightLine(decimal.NewFromInt(500), decimal.NewFromFloat(59.90), "")
	first := order.Lines[0].Line_id

	// a later line at a different price per kilo must not touch the first
	order, _ = session.AddWeightLine(decimal.NewFromInt(500), decimal.NewFromFloat(80.00), "")
	for _, line := range order.Lines {
		if line.Line_id == first {
			assert.Equal(t, line.Unit_price.StringFixed(2), "29.95")
		}
	}
	assert.Equal(t, order.TotalDue().StringFixed(2), "69.95")
}

func TestWeightLineRejectsNonPositiveGrams(t *testing.T) {
	session, _, _ := newTestSession()
	session.Open(2)

	_, err := session.AddWeightLine(decimal.Zero, decimal.NewFromFloat(59.90), "")
	assert.Equal(t, err, ErrInvalidWeight)
}

func TestPaymentValidation(t *testing.T) {
	session, _, item := newTestSession()
	session.Open(3)
	session.AddMenuLine(item.Item_id, 2, nil, "")

	_, err := session.AddPayment(models.MethodCash, decimal.NewFromInt(50), "")
	assert.Equal(t, err, ErrPayerNameRequired)

	_, err = session.AddPayment(models.MethodCash, decimal.NewFromInt(50), "   ")
	assert.Equal(t, err, ErrPayerNameRequired)

	_, err = session.AddPayment(models.MethodCash, decimal.Zero, "Juan")
	assert.Equal(t, err, ErrInvalidAmount)

	_, err = session.AddPayment("Cheque", decimal.NewFromInt(50), "Juan")
	assert.Equal(t, err, ErrInvalidMethod)

	order, _ := session.Current()
	assert.Equal(t, order.TotalPaid().StringFixed(2), "0.00")
}

func TestFinalizeRejectedWhileBalanceOutstanding(t *testing.T) {
	session, _, item := newTestSession()
	session.Open(3)
	session.AddMenuLine(item.Item_id, 2, nil, "")
	session.AddWeightLine(decimal.NewFromInt(500), decimal.NewFromFloat(59.90), "")

	_, err := session.AddPayment(models.MethodCash, decimal.NewFromInt(50), "Juan")
	assert.Equal(t, err, nil)

	_, err = session.Finalize()
	assert.Equal(t, err, ErrOutstandingBalance)

	order, _ := session.Current()
	assert.Equal(t, order.Status, models.StatusOpen)
}

func TestMesaTresSettlementScenario(t *testing.T) {
	session, orders, item := newTestSession()
	session.Open(3)

	order, _ := session.AddMenuLine(item.Item_id, 2, nil, "")
	assert.Equal(t, order.TotalDue().StringFixed(2), "70.00")

	order, _ = session.AddWeightLine(decimal.NewFromInt(500), decimal.NewFromFloat(59.90), "")
	assert.Equal(t, order.TotalDue().StringFixed(2), "99.95")

	order, err := session.AddPayment(models.MethodCash, decimal.NewFromFloat(99.95), "Juan")
	assert.Equal(t, err, nil)
	assert.Equal(t, order.TotalPaid().StringFixed(2), "99.95")
	assert.Equal(t, order.Remaining().StringFixed(2), "0.00")

	order, err = session.Finalize()
	assert.Equal(t, err, nil)
	assert.Equal(t, order.Status, models.StatusClosed)

	stored, ok := orders.Get(order.Order_id)
	assert.Equal(t, ok, true)
	assert.Equal(t, stored.Status, models.StatusClosed)
}

func TestFinalizeWithinTolerance(t *testing.T) {
	session, _, item := newTestSession()
	session.Open(4)
	session.AddMenuLine(item.Item_id, 1, nil, "")

	// 34.99 against 35.00 due: short by exactly the tolerance
	_, err := session.AddPayment(models.MethodYape, decimal.NewFromFloat(34.99), "Rosa")
	assert.Equal(t, err, nil)

	order, err := session.Finalize()
	assert.Equal(t, err, nil)
	assert.Equal(t, order.Status, models.StatusClosed)
}

func TestClosedOrderMutationsAreNoOps(t *testing.T) {
	session, _, item := newTestSession()
	session.Open(5)
	order, _ := session.AddMenuLine(item.Item_id, 1, nil, "")
	lineID := order.Lines[0].Line_id
	session.AddPayment(models.MethodCard, decimal.NewFromInt(35), "Ana")
	order, _ = session.Finalize()
	paymentID := order.Payments[0].Payment_id

	order, err := session.AddMenuLine(item.Item_id, 1, nil, "")
	assert.Equal(t, err, nil)
	assert.Equal(t, len(order.Lines), 1)

	order, err = session.AddWeightLine(decimal.NewFromInt(300), decimal.NewFromFloat(59.90), "")
	assert.Equal(t, err, nil)
	assert.Equal(t, len(order.Lines), 1)

	order, err = session.RemoveLine(lineID)
	assert.Equal(t, err, nil)
	assert.Equal(t, len(order.Lines), 1)

	order, err = session.AddPayment(models.MethodCash, decimal.NewFromInt(10), "Ana")
	assert.Equal(t, err, nil)
	assert.Equal(t, len(order.Payments), 1)

	order, err = session.RemovePayment(paymentID)
	assert.Equal(t, err, nil)
	assert.Equal(t, len(order.Payments), 1)

	order, err = session.Finalize()
	assert.Equal(t, err, nil)
	assert.Equal(t, order.Status, models.StatusClosed)
}

func TestRemovePaymentWhileOpen(t *testing.T) {
	session, _, item := newTestSession()
	session.Open(6)
	session.AddMenuLine(item.Item_id, 1, nil, "")
	order, _ := session.AddPayment(models.MethodPlin, decimal.NewFromInt(20), "Luis")

	order, err := session.RemovePayment(order.Payments[0].Payment_id)
	assert.Equal(t, err, nil)
	assert.Equal(t, len(order.Payments), 0)
	assert.Equal(t, order.TotalPaid().StringFixed(2), "0.00")
}

func TestReopeningTableResumesOpenOrder(t *testing.T) {
	session, _, item := newTestSession()

	first, _ := session.Open(7)
	session.AddMenuLine(item.Item_id, 1, nil, "")
	session.Close()

	resumed, err := session.Open(7)
	assert.Equal(t, err, nil)
	assert.Equal(t, resumed.Order_id, first.Order_id)
	assert.Equal(t, len(resumed.Lines), 1)
}

func TestFinalizedTableGetsFreshOrder(t *testing.T) {
	session, orders, item := newTestSession()

	first, _ := session.Open(8)
	session.AddMenuLine(item.Item_id, 1, nil, "")
	session.AddPayment(models.MethodCash, decimal.NewFromInt(35), "Juan")
	session.Finalize()
	session.Close()

	_, found := orders.FindOpenOrder(8)
	assert.Equal(t, found, false)

	second, err := session.Open(8)
	assert.Equal(t, err, nil)
	assert.NotEqual(t, second.Order_id, first.Order_id)
	assert.Equal(t, len(second.Lines), 0)
}

func TestOperationsWithoutSession(t *testing.T) {
	session, _, item := newTestSession()

	_, err := session.Current()
	assert.Equal(t, err, ErrNoActiveSession)

	_, err = session.AddMenuLine(item.Item_id, 1, nil, "")
	assert.Equal(t, err, ErrNoActiveSession)

	_, err = session.Finalize()
	assert.Equal(t, err, ErrNoActiveSession)
}
