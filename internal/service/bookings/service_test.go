package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avklm/STR-BookingService/internal/domain"
	bookingRepo "github.com/avklm/STR-BookingService/internal/infra/storage/booking"
	"github.com/avklm/STR-BookingService/internal/service/bookings/models"
)

// --- фейки для контрактов сервиса ---

type fakeBookingRepo struct {
	byID      *domain.Booking
	byIDErr   error
	list      []*domain.Booking
	listErr   error
	cancelErr error

	gotStatus *domain.BookingStatus
	cancelled struct {
		id     int64
		status domain.BookingStatus
		reason string
	}
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	return f.byID, f.byIDErr
}

func (f *fakeBookingRepo) GetByGuestID(_ context.Context, _ int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	f.gotStatus = status
	return f.list, f.listErr
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, status domain.BookingStatus, reason string) error {
	f.cancelled.id = id
	f.cancelled.status = status
	f.cancelled.reason = reason
	return f.cancelErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:                   1,
		GuestID:              10,
		PropertyID:           1,
		RoomID:               5,
		StartDateUTC:         time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC),
		EndDateUTC:           time.Date(2025, 10, 18, 10, 0, 0, 0, time.UTC),
		Status:               domain.StatusConfirmed,
		RoomName:             "Studio",
		RoomPricePerNightNet: decimal.RequireFromString("100"),
		RoomTaxPercent:       decimal.RequireFromString("9"),
	}
}

func TestGetByID(t *testing.T) {
	t.Run("owner gets the booking", func(t *testing.T) {
		repo := &fakeBookingRepo{byID: testBooking()}
		svc := NewService(repo, nopLogger{})

		resp, err := svc.GetByID(context.Background(), 1, 10)

		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "2025-10-15", resp.CheckInDate)
		assert.Equal(t, "14:00", resp.CheckInTime)
		assert.Equal(t, "2025-10-18", resp.CheckOutDate)
		assert.Equal(t, "10:00", resp.CheckOutTime)
		assert.Equal(t, 3, resp.Nights)
		assert.Equal(t, "100.00", resp.RoomPricePerNightNet)
		assert.Equal(t, []int64{}, resp.ProductIDs)
	})

	t.Run("other guest is denied", func(t *testing.T) {
		repo := &fakeBookingRepo{byID: testBooking()}
		svc := NewService(repo, nopLogger{})

		_, err := svc.GetByID(context.Background(), 1, 99)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &fakeBookingRepo{byIDErr: bookingRepo.ErrBookingNotFound}
		svc := NewService(repo, nopLogger{})

		_, err := svc.GetByID(context.Background(), 404, 10)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestGetGuestBookings(t *testing.T) {
	t.Run("without status filter", func(t *testing.T) {
		repo := &fakeBookingRepo{list: []*domain.Booking{testBooking()}}
		svc := NewService(repo, nopLogger{})

		resp, err := svc.GetGuestBookings(context.Background(), &models.GetGuestBookingsRequest{GuestID: 10})

		require.NoError(t, err)
		require.Len(t, resp.Bookings, 1)
		assert.Nil(t, repo.gotStatus)
	})

	t.Run("with status filter", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		svc := NewService(repo, nopLogger{})

		status := "cancelled_by_guest"
		resp, err := svc.GetGuestBookings(context.Background(), &models.GetGuestBookingsRequest{GuestID: 10, Status: &status})

		require.NoError(t, err)
		assert.Empty(t, resp.Bookings)
		require.NotNil(t, repo.gotStatus)
		assert.Equal(t, domain.StatusCancelledByGuest, *repo.gotStatus)
	})

	t.Run("invalid status", func(t *testing.T) {
		svc := NewService(&fakeBookingRepo{}, nopLogger{})

		status := "teleported"
		_, err := svc.GetGuestBookings(context.Background(), &models.GetGuestBookingsRequest{GuestID: 10, Status: &status})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestCancel(t *testing.T) {
	t.Run("owner cancels confirmed booking", func(t *testing.T) {
		repo := &fakeBookingRepo{byID: testBooking()}
		svc := NewService(repo, nopLogger{})

		err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
			GuestID:            10,
			CancellationReason: "планы изменились",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(1), repo.cancelled.id)
		assert.Equal(t, domain.StatusCancelledByGuest, repo.cancelled.status)
		assert.Equal(t, "планы изменились", repo.cancelled.reason)
	})

	t.Run("other guest cannot cancel", func(t *testing.T) {
		repo := &fakeBookingRepo{byID: testBooking()}
		svc := NewService(repo, nopLogger{})

		err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{GuestID: 99})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("checked-in booking cannot be cancelled", func(t *testing.T) {
		booking := testBooking()
		booking.Status = domain.StatusCheckedIn

		repo := &fakeBookingRepo{byID: booking}
		svc := NewService(repo, nopLogger{})

		err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{GuestID: 10})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("already cancelled booking cannot be cancelled again", func(t *testing.T) {
		booking := testBooking()
		booking.Status = domain.StatusCancelledByGuest

		repo := &fakeBookingRepo{byID: booking}
		svc := NewService(repo, nopLogger{})

		err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{GuestID: 10})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &fakeBookingRepo{byIDErr: bookingRepo.ErrBookingNotFound}
		svc := NewService(repo, nopLogger{})

		err := svc.Cancel(context.Background(), 404, &models.CancelBookingRequest{GuestID: 10})
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}
