package notifications

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	queue "github.com/m04kA/SMC-FacilityBooking/internal/infra/queue/notifications"
	"github.com/m04kA/SMC-FacilityBooking/internal/integrations/whatsapp"
	"github.com/m04kA/SMC-FacilityBooking/pkg/metrics"
)

const requeueTimeout = 5 * time.Second

// Worker забирает события из очереди и доставляет их в WhatsApp
// с ограничением частоты и повторами
type Worker struct {
	queue    Queue
	sender   Sender
	limiter  *rate.Limiter
	retry    RetryConfig
	pollWait time.Duration
	metrics  *metrics.Metrics
	logger   Logger
}

func NewWorker(q Queue, sender Sender, cfg Config, m *metrics.Metrics, logger Logger) *Worker {
	pollWait := cfg.PollWait
	if pollWait <= 0 {
		pollWait = 5 * time.Second
	}
	return &Worker{
		queue:    q,
		sender:   sender,
		limiter:  cfg.limiter(),
		retry:    cfg.Retry,
		pollWait: pollWait,
		metrics:  m,
		logger:   logger,
	}
}

// Run обрабатывает очередь до отмены контекста
func (w *Worker) Run(ctx context.Context) error {
	w.logger.Info("NotificationWorker: started")
	backoff := time.Duration(0)

	for {
		if ctx.Err() != nil {
			w.logger.Info("NotificationWorker: stopped")
			return nil
		}

		n, err := w.queue.Pop(ctx, w.pollWait)
		switch {
		case err == nil:
			backoff = 0
			w.Deliver(ctx, n)
		case errors.Is(err, queue.ErrEmpty):
			backoff = 0
		case errors.Is(err, queue.ErrDecode):
			w.logger.Error("NotificationWorker: dropping malformed event: %v", err)
		case ctx.Err() != nil:
			// BRPOP прерван остановкой
		default:
			backoff = nextBackoff(backoff)
			w.logger.Error("NotificationWorker: queue error, retry in %s: %v", backoff, err)
			if !sleep(ctx, backoff) {
				w.logger.Info("NotificationWorker: stopped")
				return nil
			}
		}
	}
}

// Deliver отправляет одно событие. Не бросает ошибок: событие либо доставлено,
// либо отложено в список неудачных, либо возвращено в очередь при остановке
func (w *Worker) Deliver(ctx context.Context, n *domain.Notification) {
	kind := string(n.Kind)

	for attempt := 0; attempt <= w.retry.MaxRetries; attempt++ {
		n.Attempt = attempt + 1

		if err := w.limiter.Wait(ctx); err != nil {
			w.requeue(n)
			return
		}

		_, err := w.sender.SendTemplate(ctx, n.Phone, n.Template)
		if err == nil {
			if w.metrics != nil {
				w.metrics.NotificationsSent.WithLabelValues(kind).Inc()
			}
			w.logger.Info("NotificationWorker: %s id=%s delivered for reservation id=%d (attempt %d)",
				kind, n.ID, n.ReservationID, n.Attempt)
			return
		}

		if ctx.Err() != nil {
			w.requeue(n)
			return
		}

		if !whatsapp.IsRetryable(err) {
			w.bury(ctx, n, fmt.Sprintf("rejected: %v", err))
			return
		}

		if attempt == w.retry.MaxRetries {
			break
		}

		wait := w.retry.delay(attempt)
		if apiErr, ok := whatsapp.IsAPIError(err); ok && apiErr.RetryAfter > 0 {
			wait = apiErr.RetryAfter
		}
		if w.metrics != nil {
			w.metrics.NotificationRetries.WithLabelValues(kind).Inc()
		}
		w.logger.Warn("NotificationWorker: %s id=%s attempt %d failed, retry in %s: %v",
			kind, n.ID, n.Attempt, wait, err)

		if !sleep(ctx, wait) {
			w.requeue(n)
			return
		}
	}

	w.bury(ctx, n, "retries exhausted")
}

func (w *Worker) bury(ctx context.Context, n *domain.Notification, reason string) {
	if w.metrics != nil {
		w.metrics.NotificationsFailed.WithLabelValues(string(n.Kind)).Inc()
	}
	w.logger.Error("NotificationWorker: %s id=%s for reservation id=%d failed: %s",
		n.Kind, n.ID, n.ReservationID, reason)

	if err := w.queue.Bury(ctx, *n, reason); err != nil {
		w.logger.Error("NotificationWorker: cannot store failed event id=%s: %v", n.ID, err)
	}
}

// requeue возвращает событие в очередь, когда воркер останавливается посреди доставки
func (w *Worker) requeue(n *domain.Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), requeueTimeout)
	defer cancel()

	if err := w.queue.Publish(ctx, *n); err != nil {
		w.logger.Error("NotificationWorker: event id=%s lost on shutdown: %v", n.ID, err)
		return
	}
	w.logger.Info("NotificationWorker: event id=%s returned to queue", n.ID)
}

func nextBackoff(current time.Duration) time.Duration {
	if current == 0 {
		return 500 * time.Millisecond
	}
	if next := current * 2; next < 30*time.Second {
		return next
	}
	return 30 * time.Second
}

func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
