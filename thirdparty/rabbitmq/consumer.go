package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/muhammadheryan/bhrc-portal/thirdparty/mailer"
	"github.com/muhammadheryan/bhrc-portal/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	sender  mailer.Sender
}

func NewConsumer(host string, port int, user, password string, sender mailer.Sender) (*Consumer, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Consumer{conn: conn, channel: channel, sender: sender}, nil
}

// Outcome of handling one delivery.
type Outcome int

const (
	Ack Outcome = iota
	Requeue
	Drop
)

// Handle decodes body and sends it. Malformed payloads are dropped; a failed send
// is requeued once and dropped when it fails again on redelivery.
func Handle(ctx context.Context, sender mailer.Sender, body []byte, redelivered bool) Outcome {
	var msg mailer.Message
	if err := json.Unmarshal(body, &msg); err != nil || !msg.Valid() {
		logger.Warn("[Consumer] drop malformed email job", zap.ByteString("body", body))
		return Drop
	}

	if err := sender.Send(ctx, msg); err != nil {
		logger.Error("[Consumer] err sender.Send",
			zap.String("to", msg.To),
			zap.Bool("redelivered", redelivered),
			zap.String("error", err.Error()))
		if redelivered {
			return Drop
		}
		return Requeue
	}
	return Ack
}

func (c *Consumer) Start(ctx context.Context) error {
	// Set QoS to 1 - process one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		emailQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok { // channel closed
					return
				}

				switch Handle(ctx, c.sender, msg.Body, msg.Redelivered) {
				case Ack:
					msg.Ack(false)
				case Requeue:
					msg.Nack(false, true)
				case Drop:
					msg.Nack(false, false)
				}
			}
		}
	}()

	return nil
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
