package notifier

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestPublishBookingEvent(t *testing.T) {
	client, mock := redismock.NewClientMock()
	publisher := NewPublisher(client, "booking_events", noopLogger{})

	event := Event{
		Type:       EventBookingApproved,
		BookingID:  uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
		FacilityID: uuid.MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8"),
		UserID:     "user-1",
		Status:     "approved",
		OccurredAt: time.Date(2025, 11, 10, 12, 0, 0, 0, time.UTC),
	}

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	mock.ExpectPublish("booking_events", payload).SetVal(1)

	err = publisher.PublishBookingEvent(context.Background(), event)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPublishBookingEvent_RedisError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	publisher := NewPublisher(client, "booking_events", noopLogger{})

	event := Event{
		Type:      EventBookingCancelled,
		BookingID: uuid.New(),
	}

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	mock.ExpectPublish("booking_events", payload).SetErr(assert.AnError)

	err = publisher.PublishBookingEvent(context.Background(), event)
	assert.Error(t, err)
}
