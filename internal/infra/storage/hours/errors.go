package hours

import "errors"

var (
	// ErrHoursNotFound возвращается, когда запись с часами работы отсутствует
	ErrHoursNotFound = errors.New("hours.repository: operating hours not found")

	ErrBuildQuery = errors.New("hours.repository: failed to build query")
	ErrExecQuery  = errors.New("hours.repository: failed to execute query")
	ErrScanRow    = errors.New("hours.repository: failed to scan row")
)
