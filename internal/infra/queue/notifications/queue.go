package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// DeadLetter событие, доставка которого окончательно не удалась
type DeadLetter struct {
	Event    domain.Notification `json:"event"`
	Reason   string              `json:"reason"`
	FailedAt time.Time           `json:"failedAt"`
}

// Queue outbox уведомлений поверх списка Redis.
// Публикация делает LPUSH, воркер забирает события BRPOP, порядок FIFO
type Queue struct {
	rdb     redis.Cmdable
	key     string
	deadKey string
}

// NewQueue создает очередь в списке key, неудачные события складываются в key + ":dead"
func NewQueue(rdb redis.Cmdable, key string) *Queue {
	return &Queue{
		rdb:     rdb,
		key:     key,
		deadKey: key + ":dead",
	}
}

// Publish добавляет событие в очередь
func (q *Queue) Publish(ctx context.Context, n domain.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	if err := q.rdb.LPush(ctx, q.key, payload).Err(); err != nil {
		return fmt.Errorf("%w: LPUSH %s: %v", ErrCommand, q.key, err)
	}
	return nil
}

// Pop ждет следующее событие не дольше wait. Пустая очередь возвращает ErrEmpty
func (q *Queue) Pop(ctx context.Context, wait time.Duration) (*domain.Notification, error) {
	result, err := q.rdb.BRPop(ctx, wait, q.key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("%w: BRPOP %s: %v", ErrCommand, q.key, err)
	}

	// BRPOP возвращает [ключ, значение]
	var n domain.Notification
	if err := json.Unmarshal([]byte(result[1]), &n); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return &n, nil
}

// Bury перекладывает событие в список неудачных
func (q *Queue) Bury(ctx context.Context, n domain.Notification, reason string) error {
	payload, err := json.Marshal(DeadLetter{Event: n, Reason: reason, FailedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	if err := q.rdb.LPush(ctx, q.deadKey, payload).Err(); err != nil {
		return fmt.Errorf("%w: LPUSH %s: %v", ErrCommand, q.deadKey, err)
	}
	return nil
}

// Len количество событий, ожидающих доставки
func (q *Queue) Len(ctx context.Context) (int64, error) {
	n, err := q.rdb.LLen(ctx, q.key).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: LLEN %s: %v", ErrCommand, q.key, err)
	}
	return n, nil
}

// DeadLetters возвращает до limit последних неудачных событий
func (q *Queue) DeadLetters(ctx context.Context, limit int64) ([]DeadLetter, error) {
	raw, err := q.rdb.LRange(ctx, q.deadKey, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: LRANGE %s: %v", ErrCommand, q.deadKey, err)
	}

	result := make([]DeadLetter, 0, len(raw))
	for _, item := range raw {
		var dl DeadLetter
		if err := json.Unmarshal([]byte(item), &dl); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		result = append(result, dl)
	}
	return result, nil
}
