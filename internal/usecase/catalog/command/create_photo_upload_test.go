package command

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Hiro-mackay/gc-rental/internal/domain/entity"
	"github.com/Hiro-mackay/gc-rental/internal/domain/service"
	"github.com/Hiro-mackay/gc-rental/internal/infrastructure/database"
	"github.com/Hiro-mackay/gc-rental/pkg/apperror"
	"github.com/Hiro-mackay/gc-rental/tests/testutil/mocks"
)

func TestCreatePhotoUploadCommand_Execute_Success(t *testing.T) {
	apartment := entity.NewApartment("Shibuya Flat", "Tokyo", "1-2-3 Shibuya", 10000, 2, "", nil, true)

	apartmentRepo := mocks.NewMockApartmentRepository(t)
	apartmentRepo.On("FindByID", mock.Anything, apartment.ID).Return(apartment, nil)

	expiresAt := time.Now().Add(15 * time.Minute)
	photoStorage := mocks.NewMockPhotoStorage(t)
	photoStorage.On("CreateUploadURL", mock.Anything, apartment.ID, "room.jpg").Return(&service.PhotoUpload{
		UploadURL: "https://minio.example.com/upload?sig=abc",
		PublicURL: "https://minio.example.com/photos/room.jpg",
		ExpiresAt: expiresAt,
	}, nil)

	cmd := NewCreatePhotoUploadCommand(apartmentRepo, photoStorage)

	output, err := cmd.Execute(context.Background(), CreatePhotoUploadInput{
		ApartmentID: apartment.ID,
		FileName:    "room.jpg",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://minio.example.com/upload?sig=abc", output.UploadURL)
	assert.Equal(t, expiresAt, output.ExpiresAt)
}

func TestCreatePhotoUploadCommand_Execute_UnsupportedFormat(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
	}{
		{"executable", "photo.exe"},
		{"no extension", "photo"},
		{"gif not allowed", "photo.gif"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apartmentRepo := mocks.NewMockApartmentRepository(t)
			photoStorage := mocks.NewMockPhotoStorage(t)

			cmd := NewCreatePhotoUploadCommand(apartmentRepo, photoStorage)

			_, err := cmd.Execute(context.Background(), CreatePhotoUploadInput{
				ApartmentID: uuid.New(),
				FileName:    tt.fileName,
			})

			require.Error(t, err)
			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperror.CodeInvalidRequest, appErr.Code)
			photoStorage.AssertNotCalled(t, "CreateUploadURL")
		})
	}
}

func TestCreatePhotoUploadCommand_Execute_UppercaseExtensionAllowed(t *testing.T) {
	apartment := entity.NewApartment("Shibuya Flat", "Tokyo", "1-2-3 Shibuya", 10000, 2, "", nil, true)

	apartmentRepo := mocks.NewMockApartmentRepository(t)
	apartmentRepo.On("FindByID", mock.Anything, apartment.ID).Return(apartment, nil)

	photoStorage := mocks.NewMockPhotoStorage(t)
	photoStorage.On("CreateUploadURL", mock.Anything, apartment.ID, "ROOM.JPG").Return(&service.PhotoUpload{
		UploadURL: "https://minio.example.com/upload?sig=abc",
		PublicURL: "https://minio.example.com/photos/room.jpg",
		ExpiresAt: time.Now().Add(15 * time.Minute),
	}, nil)

	cmd := NewCreatePhotoUploadCommand(apartmentRepo, photoStorage)

	_, err := cmd.Execute(context.Background(), CreatePhotoUploadInput{
		ApartmentID: apartment.ID,
		FileName:    "ROOM.JPG",
	})

	require.NoError(t, err)
}

func TestCreatePhotoUploadCommand_Execute_ApartmentNotFound(t *testing.T) {
	apartmentID := uuid.New()

	apartmentRepo := mocks.NewMockApartmentRepository(t)
	apartmentRepo.On("FindByID", mock.Anything, apartmentID).Return(nil, database.ErrNotFound)

	photoStorage := mocks.NewMockPhotoStorage(t)

	cmd := NewCreatePhotoUploadCommand(apartmentRepo, photoStorage)

	_, err := cmd.Execute(context.Background(), CreatePhotoUploadInput{
		ApartmentID: apartmentID,
		FileName:    "room.png",
	})

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeNotFound, appErr.Code)
	photoStorage.AssertNotCalled(t, "CreateUploadURL")
}
