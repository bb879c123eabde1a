package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Типы событий жизненного цикла бронирования
const (
	EventBookingSubmitted = "booking.submitted"
	EventBookingApproved  = "booking.approved"
	EventBookingRejected  = "booking.rejected"
	EventBookingCancelled = "booking.cancelled"
)

// Event событие изменения статуса бронирования
// Публикуется в Redis-канал для внешних потребителей
// (сервис уведомлений, заявки на обслуживание)
type Event struct {
	Type       string    `json:"type"`
	BookingID  uuid.UUID `json:"bookingId"`
	FacilityID uuid.UUID `json:"facilityId"`
	UserID     string    `json:"userId"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Publisher публикует события бронирований в Redis-канал
type Publisher struct {
	client  redis.UniversalClient
	channel string
	log     Logger
}

// NewPublisher создает publisher для указанного канала
func NewPublisher(client redis.UniversalClient, channel string, log Logger) *Publisher {
	return &Publisher{
		client:  client,
		channel: channel,
		log:     log,
	}
}

// PublishBookingEvent публикует событие в канал
// Ошибка публикации не должна приводить к откату операции над бронированием:
// вызывающий код логирует её и продолжает
func (p *Publisher) PublishBookingEvent(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("notifier: marshal event: %w", err)
	}

	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("notifier: publish to %s: %w", p.channel, err)
	}

	p.log.Info("Published %s event for booking %s", event.Type, event.BookingID)
	return nil
}
