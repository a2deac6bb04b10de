package block_day

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.EstablishmentID <= 0 {
		return fmt.Errorf("%w: establishmentId must be positive", ErrInvalidInput)
	}

	if req.ServiceTypeID <= 0 {
		return fmt.Errorf("%w: serviceTypeId must be positive", ErrInvalidInput)
	}

	if req.ClientID < 0 {
		return fmt.Errorf("%w: clientId must not be negative", ErrInvalidInput)
	}

	if req.ResourceID <= 0 || req.ResourceID2 <= 0 {
		return fmt.Errorf("%w: both resource ids must be positive", ErrInvalidInput)
	}

	if req.ResourceID == req.ResourceID2 {
		return fmt.Errorf("%w: resources must be different", ErrInvalidInput)
	}

	if req.Weekday != "" && !req.Weekday.IsValid() {
		return fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, req.Weekday)
	}

	return nil
}
