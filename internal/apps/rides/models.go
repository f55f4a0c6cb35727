package rides

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ride statuses.
const (
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Rider statuses.
const (
	RiderAvailable  = "available"
	RiderOnDelivery = "on-delivery"
	RiderOffline    = "offline"
)

// Ride is a booked trip.
type Ride struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CustomerName     string         `gorm:"size:255;not null" json:"customerName"`
	Pickup           string         `gorm:"size:500;not null" json:"pickup"`
	Destination      string         `gorm:"size:500;not null" json:"destination"`
	VehicleType      string         `gorm:"size:20;not null" json:"vehicleType"`
	DriverName       string         `gorm:"size:255" json:"driverName"`
	Fare             float64        `json:"fare"`
	EstimatedArrival time.Time      `json:"estimatedArrival"`
	Status           string         `gorm:"size:20;default:'confirmed'" json:"status"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"-"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// Vehicle describes a rider's registered vehicle.
type Vehicle struct {
	Type        string `gorm:"size:20" json:"type"`
	PlateNumber string `gorm:"size:20" json:"plateNumber"`
	Color       string `gorm:"size:30" json:"color"`
}

// Rider is a driver on the roster, managed from the admin back-office.
type Rider struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RaiderID        string         `gorm:"size:20;uniqueIndex" json:"raiderId"`
	Name            string         `gorm:"size:255;not null" json:"name"`
	Email           string         `gorm:"size:255" json:"email"`
	Phone           string         `gorm:"size:30" json:"phone"`
	Vehicle         Vehicle        `gorm:"embedded;embeddedPrefix:vehicle_" json:"vehicle"`
	Status          string         `gorm:"size:20;default:'offline'" json:"status"`
	IsActive        bool           `gorm:"default:true" json:"isActive"`
	Rating          float64        `gorm:"default:0" json:"rating"`
	TotalDeliveries int            `gorm:"default:0" json:"totalDeliveries"`
	JoinedDate      time.Time      `json:"joinedDate"`
	LastActive      time.Time      `json:"lastActive"`
	UpdatedAt       time.Time      `json:"-"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
