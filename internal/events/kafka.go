// Package events publishes booking lifecycle changes to Kafka.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stpnv0/VillaBooker/internal/domain"
	wbfkafka "github.com/wb-go/wbf/kafka"
	"github.com/wb-go/wbf/logger"
)

var ErrPublisherClosed = errors.New("publisher is closed")

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher keys every message by booking id so one booking's events stay ordered.
type KafkaPublisher struct {
	writer messageWriter
	topic  string
	logger logger.Logger

	mu     sync.RWMutex
	closed bool
}

func NewKafkaPublisher(brokers []string, topic string, log logger.Logger) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}

	// wbf defaults to LeastBytes; hashing on the key keeps a booking on one partition.
	writer := wbfkafka.NewProducer(brokers, topic).Writer
	writer.Balancer = &kafka.Hash{}
	writer.RequiredAcks = kafka.RequireAll
	writer.MaxAttempts = 3
	writer.BatchTimeout = 10 * time.Millisecond
	writer.AllowAutoTopicCreation = true
	writer.Logger = kafka.LoggerFunc(func(string, ...any) {})
	writer.ErrorLogger = kafka.LoggerFunc(func(msg string, args ...any) {
		log.Error("kafka writer error", logger.String("error", fmt.Sprintf(msg, args...)))
	})

	return newPublisher(writer, topic, log), nil
}

func newPublisher(w messageWriter, topic string, log logger.Logger) *KafkaPublisher {
	return &KafkaPublisher{writer: w, topic: topic, logger: log}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event domain.BookingEvent) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.BookingID),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
	}

	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write to %s: %w", p.topic, err)
	}

	p.logger.Debug("booking event published",
		logger.String("type", event.Type),
		logger.String("booking_id", event.BookingID),
	)

	return nil
}

func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	return p.writer.Close()
}

// NopPublisher is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, domain.BookingEvent) error { return nil }

func (NopPublisher) Close() error { return nil }
