package domain

import "time"

// NotificationKind тип уведомления
type NotificationKind string

const (
	NotificationConfirmation NotificationKind = "confirmation"
	NotificationCancellation NotificationKind = "cancellation"
)

// Notification событие для асинхронной доставки уведомления клиенту
type Notification struct {
	ID            string           `json:"id"`
	Kind          NotificationKind `json:"kind"`
	ReservationID int64            `json:"reservationId"`
	ClientID      int64            `json:"clientId"`
	Phone         string           `json:"phone"`
	Template      string           `json:"template"`
	Attempt       int              `json:"attempt"`
	CreatedAt     time.Time        `json:"createdAt"`
}
