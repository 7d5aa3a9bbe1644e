package entity

import (
	"time"

	"github.com/google/uuid"
)

// Apartment は賃貸物件エンティティを定義します
type Apartment struct {
	ID          uuid.UUID
	Title       string
	City        string
	Address     string
	PricePerDay int
	Bedrooms    int
	Description string
	Photos      []string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewApartment は新しい物件を作成します
func NewApartment(title, city, address string, pricePerDay, bedrooms int, description string, photos []string, isActive bool) *Apartment {
	now := time.Now()
	if photos == nil {
		photos = []string{}
	}
	return &Apartment{
		ID:          uuid.New(),
		Title:       title,
		City:        city,
		Address:     address,
		PricePerDay: pricePerDay,
		Bedrooms:    bedrooms,
		Description: description,
		Photos:      photos,
		IsActive:    isActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Deactivate は物件を非公開にします
func (a *Apartment) Deactivate() {
	a.IsActive = false
	a.UpdatedAt = time.Now()
}

// Activate は物件を公開します
func (a *Apartment) Activate() {
	a.IsActive = true
	a.UpdatedAt = time.Now()
}
