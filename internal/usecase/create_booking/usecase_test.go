package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avklm/STR-BookingService/internal/domain"
	"github.com/avklm/STR-BookingService/internal/integrations/inventoryservice"
	"github.com/avklm/STR-BookingService/pkg/types"
)

// --- фейки для контрактов use case ---

type fakeBookingRepo struct {
	existing  []*domain.Booking
	createErr error

	created   *domain.Booking
	gotFilter domain.PropertyBookingsFilter
}

func (f *fakeBookingRepo) GetByPropertyWithFilter(_ context.Context, filter domain.PropertyBookingsFilter) ([]*domain.Booking, error) {
	f.gotFilter = filter
	return f.existing, nil
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *booking
	created.ID = 777
	created.CreatedAt = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

type fakeInventoryClient struct {
	property    *inventoryservice.Property
	propertyErr error
	room        *inventoryservice.Room
	roomErr     error
	products    []inventoryservice.Product
	productsErr error
}

func (f *fakeInventoryClient) GetProperty(_ context.Context, _ int64) (*inventoryservice.Property, error) {
	return f.property, f.propertyErr
}

func (f *fakeInventoryClient) GetRoom(_ context.Context, _, _ int64) (*inventoryservice.Room, error) {
	return f.room, f.roomErr
}

func (f *fakeInventoryClient) GetProductsByIDs(_ context.Context, _ int64, _ []int64) ([]inventoryservice.Product, error) {
	return f.products, f.productsErr
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
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

func testProperty() *inventoryservice.Property {
	return &inventoryservice.Property{
		ID:              1,
		Name:            "Seaside Apartments",
		Timezone:        "Europe/Tallinn",
		StartTimesLocal: []types.TimeString{"14:00", "16:00"},
		EndTimesLocal:   []types.TimeString{"10:00", "12:00"},
	}
}

func testRoom() *inventoryservice.Room {
	return &inventoryservice.Room{
		ID:                 5,
		Name:               "Studio",
		PricePerNightNet:   dec("100"),
		PriceTaxPercentage: dec("9"),
	}
}

func validRequest() *Request {
	return &Request{
		GuestID:    10,
		PropertyID: 1,
		RoomID:     5,
		StartDate:  "2025-10-15", CheckIn: "14:00",
		EndDate: "2025-10-18", CheckOut: "10:00",
	}
}

func newTestUseCase(repo *fakeBookingRepo, inv *fakeInventoryClient, tx *fakeTxManager) *UseCase {
	return NewUseCase(repo, inv, tx, nopLogger{})
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeBookingRepo{}
	inv := &fakeInventoryClient{property: testProperty(), room: testRoom()}
	tx := &fakeTxManager{}
	uc := newTestUseCase(repo, inv, tx)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(777), resp.ID)
	assert.Equal(t, int64(10), resp.GuestID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, "2025-10-15", resp.StartDate)
	assert.Equal(t, "14:00", resp.CheckIn)
	assert.Equal(t, "2025-10-18", resp.EndDate)
	assert.Equal(t, "10:00", resp.CheckOut)
	assert.Equal(t, 3, resp.Nights)
	assert.Equal(t, []int64{}, resp.ProductIDs)
	assert.Equal(t, 1, tx.calls)

	// Денормализация данных комнаты на момент бронирования
	assert.Equal(t, "Studio", resp.RoomName)
	assert.Equal(t, "100.00", resp.RoomPricePerNightNet)
	assert.Equal(t, "9", resp.RoomTaxPercent)

	// Границы проживания сохранены по соглашению civiltime
	require.NotNil(t, repo.created)
	assert.Equal(t, instant("2025-10-15", "14:00"), repo.created.StartDateUTC)
	assert.Equal(t, instant("2025-10-18", "10:00"), repo.created.EndDateUTC)

	// Проверка пересечений шла с фильтром по комнате
	require.NotNil(t, repo.gotFilter.RoomID)
	assert.Equal(t, int64(5), *repo.gotFilter.RoomID)
}

func TestExecute_RoomNotAvailable(t *testing.T) {
	repo := &fakeBookingRepo{existing: []*domain.Booking{
		{
			ID:           200,
			RoomID:       5,
			StartDateUTC: instant("2025-10-16", "14:00"),
			EndDateUTC:   instant("2025-10-20", "10:00"),
			Status:       domain.StatusConfirmed,
		},
	}}
	inv := &fakeInventoryClient{property: testProperty(), room: testRoom()}
	uc := newTestUseCase(repo, inv, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrRoomNotAvailable)
	assert.Nil(t, repo.created)
}

func TestExecute_SameDayTurnoverAllowed(t *testing.T) {
	// Предыдущий гость выезжает в 10:00, новый заезжает в 14:00 того же дня
	repo := &fakeBookingRepo{existing: []*domain.Booking{
		{
			ID:           200,
			RoomID:       5,
			StartDateUTC: instant("2025-10-12", "14:00"),
			EndDateUTC:   instant("2025-10-15", "10:00"),
			Status:       domain.StatusConfirmed,
		},
	}}
	inv := &fakeInventoryClient{property: testProperty(), room: testRoom()}
	uc := newTestUseCase(repo, inv, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(777), resp.ID)
}

func TestExecute_CheckInTimeNotInCatalog(t *testing.T) {
	inv := &fakeInventoryClient{property: testProperty(), room: testRoom()}
	uc := newTestUseCase(&fakeBookingRepo{}, inv, &fakeTxManager{})

	req := validRequest()
	req.CheckIn = "15:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidCheckInTime)
}

func TestExecute_CheckOutTimeNotInCatalog(t *testing.T) {
	inv := &fakeInventoryClient{property: testProperty(), room: testRoom()}
	uc := newTestUseCase(&fakeBookingRepo{}, inv, &fakeTxManager{})

	req := validRequest()
	req.CheckOut = "11:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidCheckOutTime)
}

func TestExecute_EmptyCatalogAllowsAnyTime(t *testing.T) {
	property := testProperty()
	property.StartTimesLocal = nil
	property.EndTimesLocal = nil

	inv := &fakeInventoryClient{property: property, room: testRoom()}
	uc := newTestUseCase(&fakeBookingRepo{}, inv, &fakeTxManager{})

	req := validRequest()
	req.CheckIn = "03:17"
	req.CheckOut = "23:59"

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecute_ProductNotFound(t *testing.T) {
	inv := &fakeInventoryClient{
		property: testProperty(),
		room:     testRoom(),
		products: []inventoryservice.Product{{ID: 1, Name: "Breakfast"}},
	}
	uc := newTestUseCase(&fakeBookingRepo{}, inv, &fakeTxManager{})

	req := validRequest()
	req.ProductIDs = []int64{1, 2}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestExecute_RoomNotFound(t *testing.T) {
	inv := &fakeInventoryClient{property: testProperty(), roomErr: inventoryservice.ErrRoomNotFound}
	uc := newTestUseCase(&fakeBookingRepo{}, inv, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_PropertyNotFound(t *testing.T) {
	inv := &fakeInventoryClient{propertyErr: inventoryservice.ErrPropertyNotFound}
	uc := newTestUseCase(&fakeBookingRepo{}, inv, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeInventoryClient{}, &fakeTxManager{})

	t.Run("non-positive room id", func(t *testing.T) {
		req := validRequest()
		req.RoomID = 0
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("malformed check-in date", func(t *testing.T) {
		req := validRequest()
		req.StartDate = "15.10.2025"
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrMalformedStay)
	})

	t.Run("check-out not after check-in", func(t *testing.T) {
		inv := &fakeInventoryClient{property: testProperty(), room: testRoom()}
		uc := newTestUseCase(&fakeBookingRepo{}, inv, &fakeTxManager{})

		req := validRequest()
		req.StartDate = "2025-10-18"
		req.EndDate = "2025-10-15"
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrMalformedStay)
	})

	t.Run("notes too long", func(t *testing.T) {
		req := validRequest()
		long := string(make([]byte, domain.MaxNotesLength+1))
		req.Notes = &long
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
