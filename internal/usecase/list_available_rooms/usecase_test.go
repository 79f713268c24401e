package list_available_rooms

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avklm/STR-BookingService/internal/domain"
	"github.com/avklm/STR-BookingService/internal/integrations/inventoryservice"
)

// --- фейки для контрактов use case ---

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error

	gotFilter domain.PropertyBookingsFilter
}

func (f *fakeBookingRepo) GetByPropertyWithFilter(_ context.Context, filter domain.PropertyBookingsFilter) ([]*domain.Booking, error) {
	f.gotFilter = filter
	return f.bookings, f.err
}

type fakeConfigProvider struct {
	config *domain.PropertyPricingConfig
	err    error
}

func (f *fakeConfigProvider) GetDomainConfig(_ context.Context, propertyID int64) (*domain.PropertyPricingConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.config != nil {
		return f.config, nil
	}
	return domain.DefaultPricingConfig(propertyID), nil
}

type fakeInventoryClient struct {
	property    *inventoryservice.Property
	propertyErr error
	rooms       []inventoryservice.Room
	roomsErr    error
}

func (f *fakeInventoryClient) GetProperty(_ context.Context, _ int64) (*inventoryservice.Property, error) {
	return f.property, f.propertyErr
}

func (f *fakeInventoryClient) GetRooms(_ context.Context, _ int64) ([]inventoryservice.Room, error) {
	return f.rooms, f.roomsErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// --- вспомогательные конструкторы ---

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func instant(date, clock string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", date+" "+clock)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func confirmedBooking(roomID int64, startDate, startClock, endDate, endClock string) *domain.Booking {
	return &domain.Booking{
		ID:           100 + roomID,
		PropertyID:   1,
		RoomID:       roomID,
		StartDateUTC: instant(startDate, startClock),
		EndDateUTC:   instant(endDate, endClock),
		Status:       domain.StatusConfirmed,
	}
}

func testProperty() *inventoryservice.Property {
	return &inventoryservice.Property{
		ID:       1,
		Name:     "Seaside Apartments",
		Timezone: "Europe/Tallinn",
	}
}

func testRooms() []inventoryservice.Room {
	return []inventoryservice.Room{
		{ID: 1, Name: "Studio", PricePerNightNet: dec("100"), PriceTaxPercentage: dec("9"), Image: "studio.jpg"},
		{ID: 2, Name: "Loft", PricePerNightNet: dec("150"), PriceTaxPercentage: dec("9"), Image: "loft.jpg"},
	}
}

func newTestUseCase(repo *fakeBookingRepo, inv *fakeInventoryClient, cfg *fakeConfigProvider) *UseCase {
	if cfg == nil {
		cfg = &fakeConfigProvider{}
	}
	return NewUseCase(repo, cfg, inv, nopLogger{})
}

func TestExecute_AllRoomsFree(t *testing.T) {
	repo := &fakeBookingRepo{}
	inv := &fakeInventoryClient{property: testProperty(), rooms: testRooms()}
	uc := newTestUseCase(repo, inv, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		PropertyID: 1,
		StartDate:  "2025-10-15", CheckIn: "14:00",
		EndDate: "2025-10-19", CheckOut: "10:00",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.PropertyID)
	assert.Equal(t, "Europe/Tallinn", resp.Timezone)
	assert.Equal(t, 4, resp.Nights)
	require.Len(t, resp.Rooms, 2)

	// 100 net, 9% налог, скидка 5% за 4 ночи:
	// 95.00 net -> 103.55 gross, 103.55 * 4 = 414.20
	studio := resp.Rooms[0]
	assert.Equal(t, "Studio", studio.Name)
	assert.Equal(t, "103.55", studio.PricePerNight)
	assert.Equal(t, "414.20", studio.TotalPrice)
	assert.Equal(t, "436.00", studio.FullPrice)
	assert.True(t, studio.Discounted)

	// фильтр бронирований покрывает запрошенный период
	require.NotNil(t, repo.gotFilter.StartDate)
	assert.Equal(t, instant("2025-10-15", "14:00"), *repo.gotFilter.StartDate)
	assert.False(t, repo.gotFilter.IncludeInactive)
}

func TestExecute_NoDiscountBelowThreshold(t *testing.T) {
	inv := &fakeInventoryClient{property: testProperty(), rooms: testRooms()}
	uc := newTestUseCase(&fakeBookingRepo{}, inv, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		PropertyID: 1,
		StartDate:  "2025-10-15", CheckIn: "14:00",
		EndDate: "2025-10-17", CheckOut: "10:00",
	})

	require.NoError(t, err)
	require.Len(t, resp.Rooms, 2)
	assert.Equal(t, "109.00", resp.Rooms[0].PricePerNight)
	assert.Equal(t, "218.00", resp.Rooms[0].TotalPrice)
	assert.False(t, resp.Rooms[0].Discounted)
	assert.Equal(t, resp.Rooms[0].TotalPrice, resp.Rooms[0].FullPrice)
}

func TestExecute_OccupiedRoomExcluded(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		confirmedBooking(1, "2025-10-16", "14:00", "2025-10-18", "10:00"),
	}}
	inv := &fakeInventoryClient{property: testProperty(), rooms: testRooms()}
	uc := newTestUseCase(repo, inv, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		PropertyID: 1,
		StartDate:  "2025-10-15", CheckIn: "14:00",
		EndDate: "2025-10-19", CheckOut: "10:00",
	})

	require.NoError(t, err)
	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, int64(2), resp.Rooms[0].ID)
}

func TestExecute_SameDayTurnover(t *testing.T) {
	// Существующее бронирование выезжает в 10:00 в день заезда кандидата
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		confirmedBooking(1, "2025-10-12", "14:00", "2025-10-15", "10:00"),
	}}
	inv := &fakeInventoryClient{property: testProperty(), rooms: testRooms()}
	uc := newTestUseCase(repo, inv, nil)

	t.Run("later check-in keeps the room available", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), &Request{
			PropertyID: 1,
			StartDate:  "2025-10-15", CheckIn: "14:00",
			EndDate: "2025-10-19", CheckOut: "10:00",
		})

		require.NoError(t, err)
		assert.Len(t, resp.Rooms, 2)
	})

	t.Run("check-in before the earlier check-out conflicts", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), &Request{
			PropertyID: 1,
			StartDate:  "2025-10-15", CheckIn: "09:00",
			EndDate: "2025-10-19", CheckOut: "10:00",
		})

		require.NoError(t, err)
		require.Len(t, resp.Rooms, 1)
		assert.Equal(t, int64(2), resp.Rooms[0].ID)
	})
}

func TestExecute_MalformedStay(t *testing.T) {
	inv := &fakeInventoryClient{property: testProperty(), rooms: testRooms()}
	uc := newTestUseCase(&fakeBookingRepo{}, inv, nil)

	t.Run("bad date", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			PropertyID: 1,
			StartDate:  "2025-13-40", CheckIn: "14:00",
			EndDate: "2025-10-19", CheckOut: "10:00",
		})
		assert.ErrorIs(t, err, ErrMalformedStay)
	})

	t.Run("check-out not after check-in", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			PropertyID: 1,
			StartDate:  "2025-10-19", CheckIn: "14:00",
			EndDate: "2025-10-15", CheckOut: "10:00",
		})
		assert.ErrorIs(t, err, ErrMalformedStay)
	})
}

func TestExecute_PropertyNotFound(t *testing.T) {
	inv := &fakeInventoryClient{propertyErr: inventoryservice.ErrPropertyNotFound}
	uc := newTestUseCase(&fakeBookingRepo{}, inv, nil)

	_, err := uc.Execute(context.Background(), &Request{
		PropertyID: 42,
		StartDate:  "2025-10-15", CheckIn: "14:00",
		EndDate: "2025-10-19", CheckOut: "10:00",
	})

	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestExecute_PropertyWithoutTimezone(t *testing.T) {
	inv := &fakeInventoryClient{property: &inventoryservice.Property{ID: 1, Timezone: ""}}
	uc := newTestUseCase(&fakeBookingRepo{}, inv, nil)

	_, err := uc.Execute(context.Background(), &Request{
		PropertyID: 1,
		StartDate:  "2025-10-15", CheckIn: "14:00",
		EndDate: "2025-10-19", CheckOut: "10:00",
	})

	assert.ErrorIs(t, err, ErrPropertyNotConfigured)
}

func TestExecute_InvalidPropertyID(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeInventoryClient{}, nil)

	_, err := uc.Execute(context.Background(), &Request{
		PropertyID: 0,
		StartDate:  "2025-10-15", CheckIn: "14:00",
		EndDate: "2025-10-19", CheckOut: "10:00",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
