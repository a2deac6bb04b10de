package notifications

import "errors"

var (
	// ErrEmpty очередь пуста в течение таймаута ожидания
	ErrEmpty = errors.New("notifications.queue: no events")

	ErrEncode  = errors.New("notifications.queue: failed to encode event")
	ErrDecode  = errors.New("notifications.queue: failed to decode event")
	ErrCommand = errors.New("notifications.queue: redis command failed")
)
