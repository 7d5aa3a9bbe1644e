package request

// CreateApartmentRequest は物件作成リクエストを定義します
type CreateApartmentRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	City        string   `json:"city" validate:"required,max=100"`
	Address     string   `json:"address" validate:"required,max=255"`
	PricePerDay int      `json:"price_per_day" validate:"required,gt=0"`
	Bedrooms    int      `json:"bedrooms" validate:"gte=0,lte=20"`
	Description string   `json:"description" validate:"max=5000"`
	Photos      []string `json:"photos" validate:"omitempty,dive,url"`
	IsActive    bool     `json:"is_active"`
}

// UpdateApartmentRequest は物件更新リクエストを定義します
// 指定されたフィールドのみ更新されます
type UpdateApartmentRequest struct {
	Title       *string  `json:"title" validate:"omitempty,max=200"`
	City        *string  `json:"city" validate:"omitempty,max=100"`
	Address     *string  `json:"address" validate:"omitempty,max=255"`
	PricePerDay *int     `json:"price_per_day" validate:"omitempty,gt=0"`
	Bedrooms    *int     `json:"bedrooms" validate:"omitempty,gte=0,lte=20"`
	Description *string  `json:"description" validate:"omitempty,max=5000"`
	Photos      []string `json:"photos" validate:"omitempty,dive,url"`
	IsActive    *bool    `json:"is_active"`
}

// GenerateDescriptionRequest は説明文生成リクエストを定義します
type GenerateDescriptionRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	City        string `json:"city" validate:"required,max=100"`
	Bedrooms    int    `json:"bedrooms" validate:"gte=0,lte=20"`
	PricePerDay int    `json:"price_per_day" validate:"required,gt=0"`
}

// CreatePhotoUploadRequest は写真アップロードURL発行リクエストを定義します
type CreatePhotoUploadRequest struct {
	FileName string `json:"file_name" validate:"required,max=255"`
}
