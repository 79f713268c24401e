package create_booking

import (
	"errors"
	"fmt"

	"github.com/avklm/STR-BookingService/internal/domain"
	"github.com/avklm/STR-BookingService/internal/integrations/inventoryservice"
	"github.com/avklm/STR-BookingService/pkg/civiltime"
	"github.com/avklm/STR-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса и разбирает
// календарные моменты заезда и выезда
func validateRequest(req *Request) (start, end civiltime.CivilMoment, err error) {
	if req.GuestID <= 0 {
		return start, end, fmt.Errorf("%w: guestID must be positive", ErrInvalidInput)
	}

	if req.PropertyID <= 0 {
		return start, end, fmt.Errorf("%w: propertyID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return start, end, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	for _, productID := range req.ProductIDs {
		if productID <= 0 {
			return start, end, fmt.Errorf("%w: productIDs must be positive", ErrInvalidInput)
		}
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return start, end, fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	start, err = civiltime.Parse(req.StartDate, req.CheckIn)
	if err != nil {
		if errors.Is(err, civiltime.ErrMalformedMoment) {
			return start, end, fmt.Errorf("%w: check-in: %v", ErrMalformedStay, err)
		}
		return start, end, fmt.Errorf("%w: check-in: %v", ErrInvalidInput, err)
	}

	end, err = civiltime.Parse(req.EndDate, req.CheckOut)
	if err != nil {
		if errors.Is(err, civiltime.ErrMalformedMoment) {
			return start, end, fmt.Errorf("%w: check-out: %v", ErrMalformedStay, err)
		}
		return start, end, fmt.Errorf("%w: check-out: %v", ErrInvalidInput, err)
	}

	return start, end, nil
}

// validateStayTimes проверяет, что времена заезда и выезда входят
// в каталоги допустимых времён объекта размещения
func validateStayTimes(property *inventoryservice.Property, checkIn, checkOut string) error {
	if !property.HasStartTime(types.TimeString(checkIn)) {
		return ErrInvalidCheckInTime
	}
	if !property.HasEndTime(types.TimeString(checkOut)) {
		return ErrInvalidCheckOutTime
	}
	return nil
}

// validateProductsFound проверяет, что все запрошенные продукты найдены в каталоге
func validateProductsFound(requested []int64, found []inventoryservice.Product) error {
	foundIDs := make(map[int64]struct{}, len(found))
	for _, p := range found {
		foundIDs[p.ID] = struct{}{}
	}

	for _, id := range requested {
		if _, ok := foundIDs[id]; !ok {
			return fmt.Errorf("%w: product id=%d", ErrProductNotFound, id)
		}
	}

	return nil
}
