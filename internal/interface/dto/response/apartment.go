package response

import (
	"time"

	"github.com/Hiro-mackay/gc-rental/internal/domain/entity"
)

// ApartmentResponse は物件レスポンスを定義します
type ApartmentResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	City        string    `json:"city"`
	Address     string    `json:"address"`
	PricePerDay int       `json:"price_per_day"`
	Bedrooms    int       `json:"bedrooms"`
	Description string    `json:"description"`
	Photos      []string  `json:"photos"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewApartmentResponse はApartmentエンティティからレスポンスを作成します
func NewApartmentResponse(apartment *entity.Apartment) *ApartmentResponse {
	return &ApartmentResponse{
		ID:          apartment.ID.String(),
		Title:       apartment.Title,
		City:        apartment.City,
		Address:     apartment.Address,
		PricePerDay: apartment.PricePerDay,
		Bedrooms:    apartment.Bedrooms,
		Description: apartment.Description,
		Photos:      apartment.Photos,
		IsActive:    apartment.IsActive,
		CreatedAt:   apartment.CreatedAt,
		UpdatedAt:   apartment.UpdatedAt,
	}
}

// NewApartmentListResponse はApartmentエンティティのスライスからレスポンスを作成します
func NewApartmentListResponse(apartments []*entity.Apartment) []*ApartmentResponse {
	responses := make([]*ApartmentResponse, 0, len(apartments))
	for _, apartment := range apartments {
		responses = append(responses, NewApartmentResponse(apartment))
	}
	return responses
}

// DescriptionResponse は説明文生成レスポンスを定義します
type DescriptionResponse struct {
	Description string `json:"description"`
}

// PhotoUploadResponse は写真アップロードURL発行レスポンスを定義します
type PhotoUploadResponse struct {
	UploadURL string    `json:"upload_url"`
	PublicURL string    `json:"public_url"`
	ExpiresAt time.Time `json:"expires_at"`
}
