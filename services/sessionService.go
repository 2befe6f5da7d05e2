package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"gastro-pos/helpers"
	"gastro-pos/models"
	"gastro-pos/store"
)

const (
	EventOrderOpened  = "orderOpened"
	EventOrderUpdated = "orderUpdated"
	EventOrderClosed  = "orderClosed"
)

var (
	ErrNoActiveSession    = errors.New("no active order session")
	ErrUnknownTable       = errors.New("table not found")
	ErrUnknownMenuItem    = errors.New("menu item not found")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrInvalidWeight      = errors.New("grams must be greater than zero")
	ErrInvalidAmount      = errors.New("payment amount must be greater than zero")
	ErrPayerNameRequired  = errors.New("payer name is required")
	ErrInvalidMethod      = errors.New("unknown payment method")
	ErrOutstandingBalance = errors.New("order still has an outstanding balance")
)

// Notifier receives order lifecycle events after each committed mutation.
type Notifier interface {
	Publish(event string, order *models.Order)
}

// SessionService stages edits to one order at a time. Every add or remove is
// committed back to the order store immediately; there is no multi-step
// transaction and no discard path beyond removing items one by one.
type SessionService struct {
	mu     sync.Mutex
	orders *store.OrderStore
	menu   *store.MenuStore
	tables *store.TableStore
	notify Notifier
	active *models.Order
}

func NewSessionService(orders *store.OrderStore, menu *store.MenuStore, tables *store.TableStore, notify Notifier) *SessionService {
	return &SessionService{
		orders: orders,
		menu:   menu,
		tables: tables,
		notify: notify,
	}
}

// Open loads the table's open order into the session, or stages a fresh one.
// A fresh order is not committed to the store until its first mutation.
func (s *SessionService) Open(tableID int) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	table, ok := s.tables.Get(tableID)
	if !ok {
		return nil, ErrUnknownTable
	}
	if existing, found := s.orders.FindOpenOrder(table.Table_id); found {
		s.active = existing
	} else {
		s.active = &models.Order{
			Order_id:   helpers.NextID(),
			Table_id:   table.Table_id,
			Table_name: table.Name,
			Lines:      []models.OrderLine{},
			Payments:   []models.Payment{},
			Status:     models.StatusOpen,
			Opened_at:  time.Now(),
		}
	}
	s.publish(EventOrderOpened, s.active)
	return s.active.Clone(), nil
}

// Current returns the working copy being edited, if any.
func (s *SessionService) Current() (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return nil, ErrNoActiveSession
	}
	return s.active.Clone(), nil
}

// AddMenuLine appends a carta line. The unit price defaults to the catalog
// price but the operator may override it per line at entry time.
func (s *SessionService) AddMenuLine(menuItemID int64, quantity int64, unitPrice *decimal.Decimal, note string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return nil, ErrNoActiveSession
	}
	if s.active.IsClosed() {
		return s.active.Clone(), nil
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	item, ok := s.menu.Get(menuItemID)
	if !ok {
		return nil, ErrUnknownMenuItem
	}
	price := item.Unit_price
	if unitPrice != nil {
		price = *unitPrice
	}
	s.active.Lines = append(s.active.Lines, models.OrderLine{
		Line_id:       helpers.NextID(),
		Name:          item.Name,
		Unit_price:    price,
		Quantity:      quantity,
		Customer_note: note,
		Kind:          models.LineByMenu,
	})
	s.commit()
	return s.active.Clone(), nil
}

// AddWeightLine appends a weighed buffet line. The unit price is computed
// once from the scale reading and never re-derived, so later changes to the
// price per kilo cannot retroactively alter the line.
func (s *SessionService) AddWeightLine(grams, pricePerKilo decimal.Decimal, note string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return nil, ErrNoActiveSession
	}
	if s.active.IsClosed() {
		return s.active.Clone(), nil
	}
	if grams.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidWeight
	}
	price := grams.Div(decimal.NewFromInt(1000)).Mul(pricePerKilo)
	s.active.Lines = append(s.active.Lines, models.OrderLine{
		Line_id:       helpers.NextID(),
		Name:          fmt.Sprintf("Buffet (%sg)", grams.String()),
		Unit_price:    price,
		Quantity:      1,
		Customer_note: note,
		Kind:          models.LineByWeight,
		Weight_details: &models.WeightDetails{
			Grams:          grams,
			Price_per_kilo: pricePerKilo,
		},
	})
	s.commit()
	return s.active.Clone(), nil
}

// RemoveLine filters out the matching line. Silently ignored once the order
// is closed.
func (s *SessionService) RemoveLine(lineID int64) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return nil, ErrNoActiveSession
	}
	if s.active.IsClosed() {
		return s.active.Clone(), nil
	}
	lines := s.active.Lines[:0]
	for _, line := range s.active.Lines {
		if line.Line_id != lineID {
			lines = append(lines, line)
		}
	}
	s.active.Lines = lines
	s.commit()
	return s.active.Clone(), nil
}

// AddPayment records a collection against the order. Amount and payer name
// are validated as blocking errors; the operator must correct them.
func (s *SessionService) AddPayment(method string, amount decimal.Decimal, payerName string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return nil, ErrNoActiveSession
	}
	if s.active.IsClosed() {
		return s.active.Clone(), nil
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}
	if strings.TrimSpace(payerName) == "" {
		return nil, ErrPayerNameRequired
	}
	switch method {
	case models.MethodCash, models.MethodYape, models.MethodPlin, models.MethodCard:
	default:
		return nil, ErrInvalidMethod
	}
	s.active.Payments = append(s.active.Payments, models.Payment{
		Payment_id: helpers.NextID(),
		Method:     method,
		Amount:     amount,
		Payer_name: payerName,
		Paid_at:    time.Now(),
	})
	s.commit()
	return s.active.Clone(), nil
}

func (s *SessionService) RemovePayment(paymentID int64) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return nil, ErrNoActiveSession
	}
	if s.active.IsClosed() {
		return s.active.Clone(), nil
	}
	payments := s.active.Payments[:0]
	for _, payment := range s.active.Payments {
		if payment.Payment_id != paymentID {
			payments = append(payments, payment)
		}
	}
	s.active.Payments = payments
	s.commit()
	return s.active.Clone(), nil
}

// Finalize is the only transition into CLOSED. It is refused while the paid
// total is short of the due total by more than the settlement tolerance.
func (s *SessionService) Finalize() (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return nil, ErrNoActiveSession
	}
	if s.active.IsClosed() {
		return s.active.Clone(), nil
	}
	if !s.active.CanFinalize() {
		return nil, ErrOutstandingBalance
	}
	s.active.Status = models.StatusClosed
	s.orders.Upsert(s.active)
	s.publish(EventOrderClosed, s.active)
	return s.active.Clone(), nil
}

// Close discards the working copy. Mutations already committed stay in the
// store; nothing is reverted.
func (s *SessionService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = nil
}

func (s *SessionService) commit() {
	s.orders.Upsert(s.active)
	s.publish(EventOrderUpdated, s.active)
}

func (s *SessionService) publish(event string, order *models.Order) {
	if s.notify == nil {
		return
	}
	s.notify.Publish(event, order.Clone())
}
