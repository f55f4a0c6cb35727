package food

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Restaurant is a listed venue on the food side of the marketplace.
type Restaurant struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Cuisine      string         `gorm:"size:100" json:"cuisine"`
	Image        string         `gorm:"size:500" json:"image"`
	DeliveryTime string         `gorm:"size:50" json:"deliveryTime"`
	Rating       float64        `gorm:"default:0" json:"rating"`
	Address      string         `gorm:"size:500" json:"address"`
	IsOpen       bool           `gorm:"default:true" json:"isOpen"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"-"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// MenuItem belongs to a restaurant's menu.
type MenuItem struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RestaurantID uuid.UUID      `gorm:"type:uuid;not null;index" json:"restaurantId"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Description  string         `gorm:"size:1000" json:"description"`
	Price        float64        `gorm:"not null" json:"price"`
	Image        string         `gorm:"size:500" json:"image"`
	Category     string         `gorm:"size:100" json:"category"`
	IsAvailable  bool           `gorm:"default:true" json:"isAvailable"`
	CreatedAt    time.Time      `json:"-"`
	UpdatedAt    time.Time      `json:"-"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
