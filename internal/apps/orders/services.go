package orders

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")

const deliveryWindow = 35 * time.Minute

// CartItem is one checkout line. Price is re-multiplied server-side; the
// client's totalAmount is ignored.
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// CheckoutRequest is the checkout-form payload.
type CheckoutRequest struct {
	RestaurantID    uuid.UUID  `json:"restaurantId"`
	Items           []CartItem `json:"items"`
	CustomerName    string     `json:"customerName"`
	CustomerAddress string     `json:"customerAddress"`
	CustomerPhone   string     `json:"customerPhone"`
}

func (r *CheckoutRequest) validate() error {
	if r.RestaurantID == uuid.Nil {
		return errors.New("restaurantId is required")
	}
	if len(r.Items) == 0 {
		return errors.New("order must contain at least one item")
	}
	for _, item := range r.Items {
		if item.Quantity <= 0 || item.Price < 0 {
			return errors.New("order items need a positive quantity and a non-negative price")
		}
	}
	if r.CustomerName == "" || r.CustomerAddress == "" || r.CustomerPhone == "" {
		return errors.New("customerName, customerAddress and customerPhone are required")
	}
	return nil
}

func totalOf(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return math.Round(total*100) / 100
}

// newOrderNumber derives the customer-facing number, e.g. "RB-7F3A9C2B".
func newOrderNumber(id uuid.UUID) string {
	compact := strings.ReplaceAll(id.String(), "-", "")
	return "RB-" + strings.ToUpper(compact[:8])
}

// Confirmation is what the order-confirmation page renders.
type Confirmation struct {
	OrderID           uuid.UUID `json:"orderId"`
	OrderNumber       string    `json:"orderNumber"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
	TotalAmount       float64   `json:"totalAmount"`
}

// Service handles checkout and order lookups.
type Service struct {
	db  *gorm.DB
	now func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, now: time.Now}
}

// Place persists a checkout. accountID is nil for guest checkouts.
func (s *Service) Place(req *CheckoutRequest, accountID *uuid.UUID) (*Confirmation, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	items, err := json.Marshal(req.Items)
	if err != nil {
		return nil, fmt.Errorf("encode order items: %w", err)
	}

	id := uuid.New()
	order := &Order{
		ID:                id,
		OrderNumber:       newOrderNumber(id),
		RestaurantID:      req.RestaurantID,
		AccountID:         accountID,
		CustomerName:      req.CustomerName,
		CustomerAddress:   req.CustomerAddress,
		CustomerPhone:     req.CustomerPhone,
		Items:             datatypes.JSON(items),
		TotalAmount:       totalOf(req.Items),
		EstimatedDelivery: s.now().Add(deliveryWindow),
		Status:            StatusPlaced,
	}

	if err := s.db.Create(order).Error; err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}
	return confirmationOf(order), nil
}

func (s *Service) Get(id uuid.UUID) (*Confirmation, error) {
	var order Order
	err := s.db.First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return confirmationOf(&order), nil
}

// ListForAccount returns the caller's orders, newest first.
func (s *Service) ListForAccount(accountID uuid.UUID) ([]Order, error) {
	var orders []Order
	err := s.db.Where("account_id = ?", accountID).Order("created_at DESC").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func confirmationOf(order *Order) *Confirmation {
	return &Confirmation{
		OrderID:           order.ID,
		OrderNumber:       order.OrderNumber,
		EstimatedDelivery: order.EstimatedDelivery,
		TotalAmount:       order.TotalAmount,
	}
}
