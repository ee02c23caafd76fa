package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "ORDER_PLACED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

func NewUserRegistered(userId, email string) Event {
	return BaseEvent{
		Type: "USER_REGISTERED",
		Data: map[string]interface{}{
			"user_id": userId,
			"email":   email,
		},
		OccurredAt: time.Now(),
	}
}

func NewOrderPlaced(orderId, orderNumber, userId string, total float64) Event {
	return BaseEvent{
		Type: "ORDER_PLACED",
		Data: map[string]interface{}{
			"order_id":     orderId,
			"order_number": orderNumber,
			"user_id":      userId,
			"total":        total,
		},
		OccurredAt: time.Now(),
	}
}

func NewOrderCancelled(orderId, orderNumber, userId string) Event {
	return BaseEvent{
		Type: "ORDER_CANCELLED",
		Data: map[string]interface{}{
			"order_id":     orderId,
			"order_number": orderNumber,
			"user_id":      userId,
		},
		OccurredAt: time.Now(),
	}
}
