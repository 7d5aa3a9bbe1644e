package command

import (
	"context"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Hiro-mackay/gc-rental/internal/domain/repository"
	"github.com/Hiro-mackay/gc-rental/internal/domain/service"
	"github.com/Hiro-mackay/gc-rental/internal/infrastructure/database"
	"github.com/Hiro-mackay/gc-rental/pkg/apperror"
)

// アップロードを許可する拡張子
var allowedPhotoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// CreatePhotoUploadInput は写真アップロードURL発行の入力を定義します
type CreatePhotoUploadInput struct {
	ApartmentID uuid.UUID
	FileName    string
}

// CreatePhotoUploadOutput は写真アップロードURL発行の出力を定義します
type CreatePhotoUploadOutput struct {
	UploadURL string
	PublicURL string
	ExpiresAt time.Time
}

// CreatePhotoUploadCommand は物件写真の署名付きアップロードURL発行コマンドです
type CreatePhotoUploadCommand struct {
	apartmentRepo repository.ApartmentRepository
	photoStorage  service.PhotoStorage
}

// NewCreatePhotoUploadCommand は新しいCreatePhotoUploadCommandを作成します
func NewCreatePhotoUploadCommand(
	apartmentRepo repository.ApartmentRepository,
	photoStorage service.PhotoStorage,
) *CreatePhotoUploadCommand {
	return &CreatePhotoUploadCommand{
		apartmentRepo: apartmentRepo,
		photoStorage:  photoStorage,
	}
}

// Execute は署名付きアップロードURLを発行します
func (c *CreatePhotoUploadCommand) Execute(ctx context.Context, input CreatePhotoUploadInput) (*CreatePhotoUploadOutput, error) {
	ext := strings.ToLower(path.Ext(input.FileName))
	if !allowedPhotoExtensions[ext] {
		return nil, apperror.NewInvalidRequestError("unsupported photo format")
	}

	// 対象物件の存在確認
	if _, err := c.apartmentRepo.FindByID(ctx, input.ApartmentID); err != nil {
		if database.IsNotFoundError(err) {
			return nil, apperror.NewNotFoundError("apartment")
		}
		return nil, apperror.NewInternalError(err)
	}

	upload, err := c.photoStorage.CreateUploadURL(ctx, input.ApartmentID, input.FileName)
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}

	return &CreatePhotoUploadOutput{
		UploadURL: upload.UploadURL,
		PublicURL: upload.PublicURL,
		ExpiresAt: upload.ExpiresAt,
	}, nil
}
