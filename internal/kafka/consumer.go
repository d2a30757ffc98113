package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(brokers []string, groupID, topic string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// EventHandler receives decoded events. A returned error stops consumption.
type EventHandler func(context.Context, TravelEvent) error

// Consume reads until ctx is done. Undecodable messages go to onBadMessage and are skipped.
func (c *Consumer) Consume(ctx context.Context, handle EventHandler, onBadMessage func(kafka.Message, error)) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		event, err := DecodeEvent(msg.Value)
		if err != nil {
			if onBadMessage != nil {
				onBadMessage(msg, err)
			}
			continue
		}
		if err := handle(ctx, event); err != nil {
			return err
		}
	}
}

func DecodeEvent(data []byte) (TravelEvent, error) {
	var event TravelEvent
	err := json.Unmarshal(data, &event)
	return event, err
}
