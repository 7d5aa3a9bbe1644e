package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Hiro-mackay/gc-rental/internal/interface/dto/request"
	"github.com/Hiro-mackay/gc-rental/internal/interface/dto/response"
	"github.com/Hiro-mackay/gc-rental/internal/interface/middleware"
	"github.com/Hiro-mackay/gc-rental/internal/interface/presenter"
	bookingcmd "github.com/Hiro-mackay/gc-rental/internal/usecase/booking/command"
	bookingqry "github.com/Hiro-mackay/gc-rental/internal/usecase/booking/query"
	"github.com/Hiro-mackay/gc-rental/pkg/apperror"
)

// BookingHandler は予約関連のHTTPハンドラーです
type BookingHandler struct {
	createBookingCommand *bookingcmd.CreateBookingCommand
	listMyBookingsQuery  *bookingqry.ListMyBookingsQuery
	listAllBookingsQuery *bookingqry.ListAllBookingsQuery
}

// NewBookingHandler は新しいBookingHandlerを作成します
func NewBookingHandler(
	createBookingCommand *bookingcmd.CreateBookingCommand,
	listMyBookingsQuery *bookingqry.ListMyBookingsQuery,
	listAllBookingsQuery *bookingqry.ListAllBookingsQuery,
) *BookingHandler {
	return &BookingHandler{
		createBookingCommand: createBookingCommand,
		listMyBookingsQuery:  listMyBookingsQuery,
		listAllBookingsQuery: listAllBookingsQuery,
	}
}

// Create は予約を作成します
// POST /api/v1/bookings
func (h *BookingHandler) Create(c echo.Context) error {
	var req request.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewValidationError("invalid request body", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	apartmentID, err := uuid.Parse(req.ApartmentID)
	if err != nil {
		return apperror.NewInvalidRequestError("invalid apartment id")
	}

	userID, err := middleware.GetUserUUID(c)
	if err != nil || userID == uuid.Nil {
		return apperror.NewUnauthorizedError("authentication required")
	}

	output, err := h.createBookingCommand.Execute(c.Request().Context(), bookingcmd.CreateBookingInput{
		UserID:      userID,
		Role:        middleware.GetRole(c),
		ApartmentID: apartmentID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		return err
	}

	return presenter.Created(c, response.NewBookingResponse(output.Booking))
}

// ListMine は自分の予約一覧を返します
// GET /api/v1/bookings
func (h *BookingHandler) ListMine(c echo.Context) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil || userID == uuid.Nil {
		return apperror.NewUnauthorizedError("authentication required")
	}

	output, err := h.listMyBookingsQuery.Execute(c.Request().Context(), bookingqry.ListMyBookingsInput{
		UserID: userID,
	})
	if err != nil {
		return err
	}

	return presenter.OK(c, response.NewBookingListResponse(output.Bookings, false))
}

// ListAll は全予約一覧を返します（予約者メール付き、管理画面用）
// GET /api/v1/admin/bookings
func (h *BookingHandler) ListAll(c echo.Context) error {
	output, err := h.listAllBookingsQuery.Execute(c.Request().Context())
	if err != nil {
		return err
	}

	return presenter.OK(c, response.NewBookingListResponse(output.Bookings, true))
}
