package rides

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")

// Flat fares and pickup times per vehicle type. The original product
// quoted fixed fares per class; no distance pricing in scope.
var vehicleClasses = map[string]struct {
	Fare          float64
	PickupMinutes int
}{
	"car":  {Fare: 150, PickupMinutes: 8},
	"bike": {Fare: 80, PickupMinutes: 5},
	"auto": {Fare: 100, PickupMinutes: 6},
}

// BookingRequest is the ride-booking form payload.
type BookingRequest struct {
	CustomerName string `json:"customerName"`
	Pickup       string `json:"pickup"`
	Destination  string `json:"destination"`
	VehicleType  string `json:"vehicleType"`
}

func (r *BookingRequest) validate() error {
	if r.CustomerName == "" || r.Pickup == "" || r.Destination == "" {
		return errors.New("customerName, pickup and destination are required")
	}
	if _, ok := vehicleClasses[r.VehicleType]; !ok {
		return fmt.Errorf("vehicleType must be one of: car, bike, auto")
	}
	return nil
}

func fareFor(vehicleType string) float64 {
	return vehicleClasses[vehicleType].Fare
}

func arrivalFor(vehicleType string, now time.Time) time.Time {
	return now.Add(time.Duration(vehicleClasses[vehicleType].PickupMinutes) * time.Minute)
}

// Service handles ride booking and the rider roster.
type Service struct {
	db  *gorm.DB
	now func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, now: time.Now}
}

// Book confirms a ride: assigns an available rider driving the requested
// vehicle type when one exists, quotes the fare and pickup ETA.
func (s *Service) Book(req *BookingRequest) (*Ride, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	now := s.now()
	ride := &Ride{
		ID:               uuid.New(),
		CustomerName:     req.CustomerName,
		Pickup:           req.Pickup,
		Destination:      req.Destination,
		VehicleType:      req.VehicleType,
		DriverName:       "RideBite Driver",
		Fare:             fareFor(req.VehicleType),
		EstimatedArrival: arrivalFor(req.VehicleType, now),
		Status:           StatusConfirmed,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var rider Rider
		err := tx.Where("status = ? AND is_active = true AND vehicle_type = ?", RiderAvailable, req.VehicleType).
			Order("total_deliveries").First(&rider).Error
		if err == nil {
			ride.DriverName = rider.Name
			if err := tx.Model(&rider).Updates(map[string]interface{}{
				"status":      RiderOnDelivery,
				"last_active": now,
			}).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(ride).Error
	})
	if err != nil {
		return nil, fmt.Errorf("book ride: %w", err)
	}
	return ride, nil
}

func (s *Service) ListRides() ([]Ride, error) {
	var rides []Ride
	if err := s.db.Order("created_at DESC").Find(&rides).Error; err != nil {
		return nil, fmt.Errorf("list rides: %w", err)
	}
	return rides, nil
}

func (s *Service) ListRiders() ([]Rider, error) {
	var riders []Rider
	if err := s.db.Order("joined_date DESC").Find(&riders).Error; err != nil {
		return nil, fmt.Errorf("list riders: %w", err)
	}
	return riders, nil
}

func (s *Service) CreateRider(rider *Rider) error {
	if rider.Name == "" {
		return errors.New("rider name is required")
	}
	rider.ID = uuid.New()
	if rider.RaiderID == "" {
		rider.RaiderID = newRaiderID(rider.ID)
	}
	if rider.Status == "" {
		rider.Status = RiderOffline
	}
	now := s.now()
	rider.JoinedDate = now
	rider.LastActive = now
	if err := s.db.Create(rider).Error; err != nil {
		return fmt.Errorf("create rider: %w", err)
	}
	return nil
}

// UpdateRider applies partial updates; the admin UI uses it both for full
// edits and for status-only toggles.
func (s *Service) UpdateRider(id uuid.UUID, updates map[string]interface{}) (*Rider, error) {
	var rider Rider
	if err := s.db.First(&rider, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("rider lookup: %w", err)
	}

	updates["last_active"] = s.now()
	if err := s.db.Model(&rider).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update rider: %w", err)
	}
	if err := s.db.First(&rider, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("rider reload: %w", err)
	}
	return &rider, nil
}

func (s *Service) DeleteRider(id uuid.UUID) error {
	result := s.db.Delete(&Rider{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete rider: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// newRaiderID derives the human-facing roster id from the row id, e.g.
// "RB-R-1A2B3C".
func newRaiderID(id uuid.UUID) string {
	compact := strings.ReplaceAll(id.String(), "-", "")
	return "RB-R-" + strings.ToUpper(compact[:6])
}
