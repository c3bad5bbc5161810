package nats

import (
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/campuspool/campuspool/internal/pkg/logger"
)

// MessageHandler is a function that processes NATS messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from NATS subjects
type Consumer struct {
	conn          *nats.Conn
	subscriptions []*nats.Subscription
}

// NewConsumer creates a consumer over an existing client connection
func NewConsumer(client *Client) *Consumer {
	return &Consumer{conn: client.GetConn()}
}

// Subscribe registers a handler for a subject. Handler errors are logged and
// never abort the subscription; delivery order within the subject is kept.
func (c *Consumer) Subscribe(subject string, handler MessageHandler) error {
	sub, err := c.conn.Subscribe(subject, func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Warn("error processing message",
				logger.String("subject", subject),
				logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to subject %s: %w", subject, err)
	}

	c.subscriptions = append(c.subscriptions, sub)
	return nil
}

// Unsubscribe drains every open subscription
func (c *Consumer) Unsubscribe() {
	for _, sub := range c.subscriptions {
		_ = sub.Unsubscribe()
	}
	c.subscriptions = nil
}
