package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sbilibin2017/gw-social-network/internal/logger"
)

// Event types emitted by the service.
const (
	TypeTweetCreated = "tweet.created"
	TypeTweetDeleted = "tweet.deleted"
	TypeInteraction  = "interaction.toggled"
)

// Event is the JSON payload written to the stream. TweetID keys the
// message so all events of one tweet land in the same partition.
type Event struct {
	Type       string    `json:"type"`
	UserID     uuid.UUID `json:"userId"`
	TweetID    uuid.UUID `json:"tweetId"`
	Action     string    `json:"action,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Publisher writes service events to a Kafka topic. Publishing is
// best-effort: failures are logged and never surfaced to request handlers.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a publisher for the given broker and topic.
func NewPublisher(broker, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(broker),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			Async:        true,
		},
	}
}

// Publish writes one event. A nil publisher is a no-op so callers never
// need to branch on whether the event stream is configured.
func (p *Publisher) Publish(ctx context.Context, event Event) {
	if p == nil {
		return
	}

	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	value, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal event", "type", event.Type, "error", err)
		return
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.TweetID.String()),
		Value: value,
	})
	if err != nil {
		logger.Log.Errorw("failed to publish event", "type", event.Type, "error", err)
	}
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
