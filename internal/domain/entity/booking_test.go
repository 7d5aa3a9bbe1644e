package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNumberOfDays_ExactDays_ReturnsCount(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 3)

	if got := NumberOfDays(start, end); got != 3 {
		t.Errorf("got %d, want 3", got)
	}
}

func TestNumberOfDays_PartialDay_RoundsUp(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(36 * time.Hour)

	if got := NumberOfDays(start, end); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
}

func TestNewBooking_CalculatesTotalPrice(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 4)

	booking := NewBooking(uuid.New(), uuid.New(), start, end, 150)

	if booking.TotalPrice != 600 {
		t.Errorf("got total price %d, want 600", booking.TotalPrice)
	}
	if booking.Status != BookingStatusConfirmed {
		t.Errorf("got status %q, want CONFIRMED", booking.Status)
	}
}

func TestRole_IsValid(t *testing.T) {
	if !RoleUser.IsValid() || !RoleAdmin.IsValid() {
		t.Error("USER and ADMIN must be valid roles")
	}
	if Role("MANAGER").IsValid() {
		t.Error("unknown role must be invalid")
	}
}
