package di

import (
	bookingcmd "github.com/Hiro-mackay/gc-rental/internal/usecase/booking/command"
	bookingqry "github.com/Hiro-mackay/gc-rental/internal/usecase/booking/query"
)

// BookingUseCases はBooking関連のUseCaseを保持します
type BookingUseCases struct {
	// Commands
	CreateBooking *bookingcmd.CreateBookingCommand

	// Queries
	ListMyBookings  *bookingqry.ListMyBookingsQuery
	ListAllBookings *bookingqry.ListAllBookingsQuery
}

// NewBookingUseCases は新しいBookingUseCasesを作成します
func NewBookingUseCases(c *Container) *BookingUseCases {
	return &BookingUseCases{
		CreateBooking:   bookingcmd.NewCreateBookingCommand(c.BookingRepo, c.ApartmentRepo, c.TxManager),
		ListMyBookings:  bookingqry.NewListMyBookingsQuery(c.BookingRepo),
		ListAllBookings: bookingqry.NewListAllBookingsQuery(c.BookingRepo),
	}
}
