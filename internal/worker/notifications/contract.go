package notifications

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/integrations/whatsapp"
)

// Queue источник событий уведомлений
type Queue interface {
	Pop(ctx context.Context, wait time.Duration) (*domain.Notification, error)
	Publish(ctx context.Context, n domain.Notification) error
	Bury(ctx context.Context, n domain.Notification, reason string) error
}

// Sender канал доставки шаблонных сообщений
type Sender interface {
	SendTemplate(ctx context.Context, phone string, template string) (*whatsapp.SendResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
