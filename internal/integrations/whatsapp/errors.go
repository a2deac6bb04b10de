package whatsapp

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("whatsapp client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("whatsapp client: invalid response")

	// ErrUnavailable API недоступно (сеть, таймаут)
	ErrUnavailable = errors.New("whatsapp client: api unavailable")
)

// APIError ошибка, которую вернул Graph API
type APIError struct {
	Status     int
	Code       int
	Message    string
	RetryAfter time.Duration // для 429
}

func (e *APIError) Error() string {
	return fmt.Sprintf("whatsapp api error status=%d code=%d: %s", e.Status, e.Code, e.Message)
}

// Retryable ограничение частоты и ошибки сервера имеет смысл повторить
func (e *APIError) Retryable() bool {
	return e.Status == http.StatusTooManyRequests || e.Status >= http.StatusInternalServerError
}

// IsAPIError проверяет, что ошибка пришла от API
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsRetryable сообщает, стоит ли повторять отправку
func IsRetryable(err error) bool {
	if apiErr, ok := IsAPIError(err); ok {
		return apiErr.Retryable()
	}
	return errors.Is(err, ErrUnavailable)
}
