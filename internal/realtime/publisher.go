package realtime

import (
	"context"
	"encoding/json"
	"log"

	"github.com/go-redis/redis/v8"
)

// Channel carries a message for every committed appointment transition. The
// presentation layer subscribes to re-render lists without polling.
const Channel = "appointments:changed"

type AppointmentChanged struct {
	AppointmentID uint   `json:"appointment_id"`
	Status        string `json:"status"`
}

type Publisher struct {
	rdb *redis.Client
}

// NewPublisher accepts a nil client; publishing then becomes a no-op so the
// API keeps working without Redis.
func NewPublisher(rdb *redis.Client) *Publisher {
	return &Publisher{rdb: rdb}
}

// AppointmentChanged is fire-and-forget: a failed publish is logged, never
// surfaced to the caller whose transition already committed.
func (p *Publisher) AppointmentChanged(ctx context.Context, appointmentID uint, status string) {
	if p.rdb == nil {
		return
	}

	payload, err := json.Marshal(AppointmentChanged{
		AppointmentID: appointmentID,
		Status:        status,
	})
	if err != nil {
		return
	}

	if err := p.rdb.Publish(ctx, Channel, payload).Err(); err != nil {
		log.Println("realtime: publish failed:", err)
	}
}
