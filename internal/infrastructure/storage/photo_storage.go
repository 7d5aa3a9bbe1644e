package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Hiro-mackay/gc-rental/internal/domain/service"
)

// Presigned URL有効期限
const PresignedUploadExpiry = 15 * time.Minute

// PhotoStorageService は物件写真のアップロード先を発行します
// クライアントは署名付きURLへ直接PUTします
type PhotoStorageService struct {
	client *MinIOClient
}

// NewPhotoStorageService は新しいPhotoStorageServiceを作成します
func NewPhotoStorageService(client *MinIOClient) *PhotoStorageService {
	return &PhotoStorageService{client: client}
}

// CreateUploadURL は物件写真用の署名付きアップロードURLを発行します
func (s *PhotoStorageService) CreateUploadURL(ctx context.Context, apartmentID uuid.UUID, fileName string) (*service.PhotoUpload, error) {
	objectKey := photoObjectKey(apartmentID, fileName)

	presignedURL, err := s.client.Client().PresignedPutObject(
		ctx,
		s.client.BucketName(),
		objectKey,
		PresignedUploadExpiry,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate presigned put URL: %w", err)
	}

	return &service.PhotoUpload{
		UploadURL: presignedURL.String(),
		PublicURL: s.publicURL(objectKey),
		ExpiresAt: time.Now().Add(PresignedUploadExpiry),
	}, nil
}

// photoObjectKey はオブジェクトキーを生成します
// 形式: apartments/{apartment_id}/{random}{ext}
func photoObjectKey(apartmentID uuid.UUID, fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	return fmt.Sprintf("apartments/%s/%s%s", apartmentID, uuid.NewString(), ext)
}

// publicURL はアップロード完了後の公開URLを返します
func (s *PhotoStorageService) publicURL(objectKey string) string {
	cfg := s.client.Config()
	if cfg.PublicBaseURL != "" {
		return strings.TrimRight(cfg.PublicBaseURL, "/") + "/" + objectKey
	}

	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, cfg.Endpoint, cfg.BucketName, objectKey)
}
