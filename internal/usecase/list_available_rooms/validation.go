package list_available_rooms

import (
	"errors"
	"fmt"

	"github.com/avklm/STR-BookingService/pkg/civiltime"
)

// validateRequest валидирует входные данные запроса и разбирает
// календарные моменты заезда и выезда
func validateRequest(req *Request) (start, end civiltime.CivilMoment, err error) {
	if req.PropertyID <= 0 {
		return start, end, fmt.Errorf("%w: propertyID must be positive", ErrInvalidInput)
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
