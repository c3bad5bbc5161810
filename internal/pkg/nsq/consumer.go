package nsq

import (
	"fmt"

	"github.com/nsqio/go-nsq"
)

// MessageHandler is a function that processes NSQ messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from an NSQ topic
type Consumer struct {
	consumer *nsq.Consumer
}

// NewConsumer creates a consumer for a topic/channel pair connected through
// nsqlookupd.
func NewConsumer(topic, channel, lookupdAddr string, handler MessageHandler) (*Consumer, error) {
	config := nsq.NewConfig()
	consumer, err := nsq.NewConsumer(topic, channel, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}

	consumer.AddHandler(nsq.HandlerFunc(func(msg *nsq.Message) error {
		return handler(msg.Body)
	}))

	if err := consumer.ConnectToNSQLookupd(lookupdAddr); err != nil {
		return nil, fmt.Errorf("failed to connect to nsqlookupd: %w", err)
	}

	return &Consumer{consumer: consumer}, nil
}

// Stop gracefully stops the consumer
func (c *Consumer) Stop() {
	c.consumer.Stop()
	<-c.consumer.StopChan
}
