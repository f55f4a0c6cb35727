package food

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")

// Service handles restaurant and menu persistence.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) ListRestaurants() ([]Restaurant, error) {
	var restaurants []Restaurant
	if err := s.db.Order("created_at DESC").Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	return restaurants, nil
}

func (s *Service) GetRestaurant(id uuid.UUID) (*Restaurant, error) {
	var restaurant Restaurant
	err := s.db.First(&restaurant, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get restaurant: %w", err)
	}
	return &restaurant, nil
}

// Menu returns the restaurant's menu items, available ones first.
func (s *Service) Menu(restaurantID uuid.UUID) ([]MenuItem, error) {
	var items []MenuItem
	err := s.db.Where("restaurant_id = ?", restaurantID).
		Order("is_available DESC, category, name").Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("restaurant menu: %w", err)
	}
	return items, nil
}

func (s *Service) ListMenuItems() ([]MenuItem, error) {
	var items []MenuItem
	if err := s.db.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	return items, nil
}

func (s *Service) CreateRestaurant(restaurant *Restaurant) error {
	if restaurant.Name == "" {
		return errors.New("restaurant name is required")
	}
	restaurant.ID = uuid.New()
	if err := s.db.Create(restaurant).Error; err != nil {
		return fmt.Errorf("create restaurant: %w", err)
	}
	return nil
}

// DeleteRestaurant removes the restaurant and its menu.
func (s *Service) DeleteRestaurant(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("restaurant_id = ?", id).Delete(&MenuItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&Restaurant{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *Service) CreateMenuItem(item *MenuItem) error {
	if item.Name == "" || item.RestaurantID == uuid.Nil {
		return errors.New("menu item name and restaurantId are required")
	}
	if _, err := s.GetRestaurant(item.RestaurantID); err != nil {
		return err
	}
	item.ID = uuid.New()
	if err := s.db.Create(item).Error; err != nil {
		return fmt.Errorf("create menu item: %w", err)
	}
	return nil
}

func (s *Service) DeleteMenuItem(id uuid.UUID) error {
	result := s.db.Delete(&MenuItem{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete menu item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
