package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PhotoUpload は写真アップロードの宛先を表します
type PhotoUpload struct {
	UploadURL string    // クライアントがPUTする署名付きURL
	PublicURL string    // アップロード完了後の公開URL
	ExpiresAt time.Time // 署名付きURLの有効期限
}

// PhotoStorage は物件写真のオブジェクトストレージ操作を提供します
type PhotoStorage interface {
	// CreateUploadURL は物件写真用の署名付きアップロードURLを発行します
	CreateUploadURL(ctx context.Context, apartmentID uuid.UUID, fileName string) (*PhotoUpload, error)
}
