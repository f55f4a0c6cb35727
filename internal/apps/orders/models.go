package orders

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Order statuses.
const (
	StatusPlaced    = "placed"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// Order is a placed food order. Items keeps the cart snapshot as JSONB so
// later menu edits never rewrite order history.
type Order struct {
	ID                uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"orderId"`
	OrderNumber       string         `gorm:"size:30;uniqueIndex;not null" json:"orderNumber"`
	RestaurantID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"restaurantId"`
	AccountID         *uuid.UUID     `gorm:"type:uuid;index" json:"-"`
	CustomerName      string         `gorm:"size:255;not null" json:"customerName"`
	CustomerAddress   string         `gorm:"size:500;not null" json:"customerAddress"`
	CustomerPhone     string         `gorm:"size:30;not null" json:"customerPhone"`
	Items             datatypes.JSON `gorm:"type:jsonb;not null" json:"items"`
	TotalAmount       float64        `gorm:"not null" json:"totalAmount"`
	EstimatedDelivery time.Time      `json:"estimatedDelivery"`
	Status            string         `gorm:"size:20;default:'placed'" json:"status"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"-"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}
