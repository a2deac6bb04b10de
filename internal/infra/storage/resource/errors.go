package resource

import "errors"

var (
	// ErrResourceNotFound возвращается, когда ресурс не найден
	ErrResourceNotFound = errors.New("resource.repository: resource not found")

	ErrBuildQuery = errors.New("resource.repository: failed to build query")
	ErrExecQuery  = errors.New("resource.repository: failed to execute query")
	ErrScanRow    = errors.New("resource.repository: failed to scan row")
)
