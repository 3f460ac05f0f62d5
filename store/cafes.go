// cafes.go - Cafe listings repository

package store

import (
	"errors"
	"fmt"
	"slices"

	"gorm.io/gorm"

	"go-cafe-backend/apperr"
	"go-cafe-backend/models"
)

// CafeInput carries the author-supplied fields of a new listing.
type CafeInput struct {
	Name              string
	URL               string
	Address           string
	City              string
	State             string
	Zip               string
	OpenTime          string
	ClosingTime       string
	CoffeeRating      string
	WifiRating        string
	PowerOutletRating string
}

type Cafes struct {
	db *gorm.DB
}

func NewCafes(db *gorm.DB) *Cafes {
	return &Cafes{db: db}
}

// Create validates the input and inserts a listing owned by authorID. The
// unique index on name turns a concurrent duplicate into ErrDuplicateName
// rather than a second row.
func (c *Cafes) Create(authorID uint, input CafeInput) (*models.Cafe, error) {
	if err := validateCafe(input); err != nil {
		return nil, err
	}

	cafe := &models.Cafe{
		AuthorID:          authorID,
		Name:              input.Name,
		URL:               input.URL,
		Address:           input.Address,
		City:              input.City,
		State:             input.State,
		Zip:               input.Zip,
		OpenTime:          input.OpenTime,
		ClosingTime:       input.ClosingTime,
		CoffeeRating:      input.CoffeeRating,
		WifiRating:        input.WifiRating,
		PowerOutletRating: input.PowerOutletRating,
	}

	if err := c.db.Create(cafe).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.ErrDuplicateName
		}
		return nil, err
	}

	return cafe, nil
}

func (c *Cafes) ByID(id uint) (*models.Cafe, error) {
	var cafe models.Cafe
	if err := c.db.First(&cafe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &cafe, nil
}

// List returns every listing in creation order.
func (c *Cafes) List() ([]models.Cafe, error) {
	var cafes []models.Cafe
	if err := c.db.Order("id").Find(&cafes).Error; err != nil {
		return nil, err
	}
	return cafes, nil
}

func validateCafe(input CafeInput) error {
	required := map[string]string{
		"cafe":         input.Name,
		"cafe_url":     input.URL,
		"cafe_address": input.Address,
		"cafe_city":    input.City,
		"cafe_state":   input.State,
		"cafe_zip":     input.Zip,
		"open_time":    input.OpenTime,
		"closing_time": input.ClosingTime,
	}
	for field, value := range required {
		if value == "" {
			return fmt.Errorf("%w: %s is required", apperr.ErrValidation, field)
		}
	}

	if !slices.Contains(models.CoffeeRatings, input.CoffeeRating) {
		return fmt.Errorf("%w: invalid coffee rating", apperr.ErrValidation)
	}
	if !slices.Contains(models.WifiRatings, input.WifiRating) {
		return fmt.Errorf("%w: invalid wifi rating", apperr.ErrValidation)
	}
	if !slices.Contains(models.PowerRatings, input.PowerOutletRating) {
		return fmt.Errorf("%w: invalid power outlet rating", apperr.ErrValidation)
	}

	return nil
}
