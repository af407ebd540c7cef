package events

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stpnv0/VillaBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

type fakeWriter struct {
	mu     sync.Mutex
	msgs   []kafka.Message
	err    error
	closed int
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed++
	return nil
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testEvent() domain.BookingEvent {
	at := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	b := &domain.Booking{
		ID:          "b1",
		RoomID:      "ocean-suite-a",
		CheckIn:     time.Date(2025, 7, 11, 0, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2025, 7, 13, 0, 0, 0, 0, time.UTC),
		Status:      domain.BookingStatusConfirmed,
		TotalAmount: 770000,
	}
	return domain.NewBookingEvent(domain.EventBookingConfirmed, b, at)
}

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := newPublisher(w, "bookings", newTestLogger(t))

	require.NoError(t, p.Publish(context.Background(), testEvent()))

	require.Len(t, w.msgs, 1)
	msg := w.msgs[0]
	assert.Equal(t, "b1", string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, domain.EventBookingConfirmed, string(msg.Headers[0].Value))

	var got domain.BookingEvent
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, "2025-07-11", got.CheckIn)
	assert.Equal(t, int64(770000), got.Amount)
	assert.Equal(t, domain.BookingStatusConfirmed, got.Status)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker down")}
	p := newPublisher(w, "bookings", newTestLogger(t))

	err := p.Publish(context.Background(), testEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bookings")
}

func TestKafkaPublisher_Close(t *testing.T) {
	w := &fakeWriter{}
	p := newPublisher(w, "bookings", newTestLogger(t))

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())

	assert.Equal(t, 1, w.closed)
	assert.ErrorIs(t, p.Publish(context.Background(), testEvent()), ErrPublisherClosed)
}

func TestNewKafkaPublisher_Validation(t *testing.T) {
	_, err := NewKafkaPublisher(nil, "bookings", newTestLogger(t))
	assert.Error(t, err)

	_, err = NewKafkaPublisher([]string{"localhost:9092"}, "", newTestLogger(t))
	assert.Error(t, err)
}

func TestNewKafkaPublisher_HashesOnBookingKey(t *testing.T) {
	p, err := NewKafkaPublisher([]string{"localhost:9092"}, "bookings", newTestLogger(t))
	require.NoError(t, err)
	defer p.Close()

	w, ok := p.writer.(*kafka.Writer)
	require.True(t, ok)
	assert.IsType(t, &kafka.Hash{}, w.Balancer)
	assert.Equal(t, kafka.RequireAll, w.RequiredAcks)
	assert.Equal(t, "bookings", w.Topic)
}
