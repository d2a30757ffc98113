package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// TravelEvent is the payload published for every state change worth notifying about.
type TravelEvent struct {
	Type       string            `json:"type"`
	UserID     string            `json:"user_id"`
	EntityID   string            `json:"entity_id"`
	Amount     float64           `json:"amount,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

type Producer struct {
	brokers []string
	writer  *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}

	return &Producer{
		brokers: brokers,
		writer:  writer,
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}

// EventPublisher fans one TravelEvent out to the events topic and, when set,
// the notifications topic. Keys are the user id so a user's events stay ordered.
type EventPublisher struct {
	producer           Publisher
	eventsTopic        string
	notificationsTopic string
}

type Publisher interface {
	Publish(ctx context.Context, topic, key string, payload interface{}) error
}

func NewEventPublisher(producer Publisher, eventsTopic, notificationsTopic string) *EventPublisher {
	return &EventPublisher{producer: producer, eventsTopic: eventsTopic, notificationsTopic: notificationsTopic}
}

func (p *EventPublisher) PublishEvent(ctx context.Context, event TravelEvent) error {
	if p == nil || p.producer == nil || p.eventsTopic == "" {
		return nil
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}
	if err := p.producer.Publish(ctx, p.eventsTopic, event.UserID, event); err != nil {
		return err
	}
	if p.notificationsTopic != "" {
		return p.producer.Publish(ctx, p.notificationsTopic, event.UserID, event)
	}
	return nil
}
