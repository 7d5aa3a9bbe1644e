package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Hiro-mackay/gc-rental/internal/interface/dto/request"
	"github.com/Hiro-mackay/gc-rental/internal/interface/dto/response"
	"github.com/Hiro-mackay/gc-rental/internal/interface/presenter"
	catalogcmd "github.com/Hiro-mackay/gc-rental/internal/usecase/catalog/command"
	catalogqry "github.com/Hiro-mackay/gc-rental/internal/usecase/catalog/query"
	"github.com/Hiro-mackay/gc-rental/pkg/apperror"
)

// ApartmentHandler は物件関連のHTTPハンドラーです
type ApartmentHandler struct {
	// Commands
	createApartmentCommand     *catalogcmd.CreateApartmentCommand
	updateApartmentCommand     *catalogcmd.UpdateApartmentCommand
	deleteApartmentCommand     *catalogcmd.DeleteApartmentCommand
	generateDescriptionCommand *catalogcmd.GenerateDescriptionCommand
	createPhotoUploadCommand   *catalogcmd.CreatePhotoUploadCommand

	// Queries
	listApartmentsQuery    *catalogqry.ListApartmentsQuery
	getApartmentQuery      *catalogqry.GetApartmentQuery
	listAllApartmentsQuery *catalogqry.ListAllApartmentsQuery
}

// NewApartmentHandler は新しいApartmentHandlerを作成します
func NewApartmentHandler(
	createApartmentCommand *catalogcmd.CreateApartmentCommand,
	updateApartmentCommand *catalogcmd.UpdateApartmentCommand,
	deleteApartmentCommand *catalogcmd.DeleteApartmentCommand,
	generateDescriptionCommand *catalogcmd.GenerateDescriptionCommand,
	createPhotoUploadCommand *catalogcmd.CreatePhotoUploadCommand,
	listApartmentsQuery *catalogqry.ListApartmentsQuery,
	getApartmentQuery *catalogqry.GetApartmentQuery,
	listAllApartmentsQuery *catalogqry.ListAllApartmentsQuery,
) *ApartmentHandler {
	return &ApartmentHandler{
		createApartmentCommand:     createApartmentCommand,
		updateApartmentCommand:     updateApartmentCommand,
		deleteApartmentCommand:     deleteApartmentCommand,
		generateDescriptionCommand: generateDescriptionCommand,
		createPhotoUploadCommand:   createPhotoUploadCommand,
		listApartmentsQuery:        listApartmentsQuery,
		getApartmentQuery:          getApartmentQuery,
		listAllApartmentsQuery:     listAllApartmentsQuery,
	}
}

// List は公開中の物件一覧を返します
// GET /api/v1/apartments
func (h *ApartmentHandler) List(c echo.Context) error {
	output, err := h.listApartmentsQuery.Execute(c.Request().Context())
	if err != nil {
		return err
	}

	return presenter.OK(c, response.NewApartmentListResponse(output.Apartments))
}

// Get は公開中の物件を返します
// GET /api/v1/apartments/:id
func (h *ApartmentHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperror.NewInvalidRequestError("invalid apartment id")
	}

	output, err := h.getApartmentQuery.Execute(c.Request().Context(), catalogqry.GetApartmentInput{ID: id})
	if err != nil {
		return err
	}

	return presenter.OK(c, response.NewApartmentResponse(output.Apartment))
}

// ListAll は全物件一覧を返します（非公開含む）
// GET /api/v1/admin/apartments
func (h *ApartmentHandler) ListAll(c echo.Context) error {
	output, err := h.listAllApartmentsQuery.Execute(c.Request().Context())
	if err != nil {
		return err
	}

	return presenter.OK(c, response.NewApartmentListResponse(output.Apartments))
}

// Create は物件を作成します
// POST /api/v1/admin/apartments
func (h *ApartmentHandler) Create(c echo.Context) error {
	var req request.CreateApartmentRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewValidationError("invalid request body", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.createApartmentCommand.Execute(c.Request().Context(), catalogcmd.CreateApartmentInput{
		Title:       req.Title,
		City:        req.City,
		Address:     req.Address,
		PricePerDay: req.PricePerDay,
		Bedrooms:    req.Bedrooms,
		Description: req.Description,
		Photos:      req.Photos,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return err
	}

	return presenter.Created(c, response.NewApartmentResponse(output.Apartment))
}

// Update は物件を更新します
// PATCH /api/v1/admin/apartments/:id
func (h *ApartmentHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperror.NewInvalidRequestError("invalid apartment id")
	}

	var req request.UpdateApartmentRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewValidationError("invalid request body", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.updateApartmentCommand.Execute(c.Request().Context(), catalogcmd.UpdateApartmentInput{
		ID:          id,
		Title:       req.Title,
		City:        req.City,
		Address:     req.Address,
		PricePerDay: req.PricePerDay,
		Bedrooms:    req.Bedrooms,
		Description: req.Description,
		Photos:      req.Photos,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return err
	}

	return presenter.OK(c, response.NewApartmentResponse(output.Apartment))
}

// Delete は物件を削除します
// DELETE /api/v1/admin/apartments/:id
func (h *ApartmentHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperror.NewInvalidRequestError("invalid apartment id")
	}

	if err := h.deleteApartmentCommand.Execute(c.Request().Context(), catalogcmd.DeleteApartmentInput{ID: id}); err != nil {
		return err
	}

	return presenter.Deleted(c, "apartment deleted")
}

// GenerateDescription は物件説明文を生成します
// POST /api/v1/admin/apartments/description
func (h *ApartmentHandler) GenerateDescription(c echo.Context) error {
	var req request.GenerateDescriptionRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewValidationError("invalid request body", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.generateDescriptionCommand.Execute(c.Request().Context(), catalogcmd.GenerateDescriptionInput{
		Title:       req.Title,
		City:        req.City,
		Bedrooms:    req.Bedrooms,
		PricePerDay: req.PricePerDay,
	})
	if err != nil {
		return err
	}

	return presenter.OK(c, response.DescriptionResponse{Description: output.Description})
}

// CreatePhotoUpload は物件写真の署名付きアップロードURLを発行します
// POST /api/v1/admin/apartments/:id/photos
func (h *ApartmentHandler) CreatePhotoUpload(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperror.NewInvalidRequestError("invalid apartment id")
	}

	var req request.CreatePhotoUploadRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewValidationError("invalid request body", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.createPhotoUploadCommand.Execute(c.Request().Context(), catalogcmd.CreatePhotoUploadInput{
		ApartmentID: id,
		FileName:    req.FileName,
	})
	if err != nil {
		return err
	}

	return presenter.Created(c, response.PhotoUploadResponse{
		UploadURL: output.UploadURL,
		PublicURL: output.PublicURL,
		ExpiresAt: output.ExpiresAt,
	})
}
