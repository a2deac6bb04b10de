package notifier

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/metrics"
)

// Publisher публикует событие уведомления в outbox
type Publisher interface {
	Publish(ctx context.Context, n domain.Notification) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Templates имена шаблонов сообщений
type Templates struct {
	Confirmation string
	Cancellation string
}

// Notifier ставит уведомления клиентам в очередь доставки.
// Ошибки публикации только логируются: бронирование от них не зависит
type Notifier struct {
	publisher      Publisher
	templates      Templates
	timeout        time.Duration
	systemClientID int64
	metrics        *metrics.Metrics
	logger         Logger
}

func New(
	publisher Publisher,
	templates Templates,
	timeout time.Duration,
	systemClientID int64,
	m *metrics.Metrics,
	logger Logger,
) *Notifier {
	return &Notifier{
		publisher:      publisher,
		templates:      templates,
		timeout:        timeout,
		systemClientID: systemClientID,
		metrics:        m,
		logger:         logger,
	}
}

// Notify публикует уведомление о бронировании.
// Системный клиент и клиенты без телефона уведомления не получают
func (n *Notifier) Notify(ctx context.Context, kind domain.NotificationKind, res *domain.Reservation, client *domain.Client) {
	if client == nil || client.ID == n.systemClientID {
		return
	}
	if client.Phone == "" {
		n.logger.Warn("Notify: client id=%d has no phone, %s for reservation id=%d skipped", client.ID, kind, res.ID)
		return
	}

	event := domain.Notification{
		ID:            uuid.New().String(),
		Kind:          kind,
		ReservationID: res.ID,
		ClientID:      client.ID,
		Phone:         client.Phone,
		Template:      n.template(kind),
		CreatedAt:     time.Now().UTC(),
	}

	// Публикация не должна зависеть от отмены запроса клиента, но ограничена по времени
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
	defer cancel()

	if err := n.publisher.Publish(pubCtx, event); err != nil {
		n.logger.Error("Notify: failed to publish %s id=%s for reservation id=%d: %v", kind, event.ID, res.ID, err)
		return
	}

	if n.metrics != nil {
		n.metrics.NotificationsPublished.WithLabelValues(string(kind)).Inc()
	}
	n.logger.Info("Notify: %s id=%s queued for reservation id=%d", kind, event.ID, res.ID)
}

// IsSystemClient сообщает, принадлежит ли ID системному клиенту
func (n *Notifier) IsSystemClient(clientID int64) bool {
	return clientID == n.systemClientID
}

func (n *Notifier) template(kind domain.NotificationKind) string {
	if kind == domain.NotificationCancellation {
		return n.templates.Cancellation
	}
	return n.templates.Confirmation
}
