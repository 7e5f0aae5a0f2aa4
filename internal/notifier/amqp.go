// Package notifier delivers in-app notification events over AMQP. The
// broker is treated as a black-box publish/subscribe transport;
// publishing is best-effort and failures never fail the originating
// operation.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Swayam792/Bugwise-Backend/internal/entities"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	inAppExchange   = "inapp.notifications.exchange"
	inAppQueue      = "inapp.notifications.queue"
	inAppRoutingKey = "inapp.notifications.routingKey"

	deadLetterExchange = "inapp.notifications.dlx"
	deadLetterQueue    = "inapp.notifications.dlq"
)

// Publisher is the port the lifecycle service emits events through.
type Publisher interface {
	Publish(ctx context.Context, msg entities.NotificationMessage) error
	Close() error
}

// AMQP implements Publisher against RabbitMQ.
type AMQP struct {
	log  *zap.SugaredLogger
	conn *amqp.Connection
	ch   *amqp.Channel
}

// New connects to the broker and declares the notification topology:
// a topic exchange bound to a durable queue whose rejects land on a
// dead-letter queue.
func New(url string, log *zap.SugaredLogger) (*AMQP, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declareTopology(ch); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	return &AMQP{log: log.Named("notifier.amqp"), conn: conn, ch: ch}, nil
}

func declareTopology(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(deadLetterExchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare dlx: %w", err)
	}
	if _, err := ch.QueueDeclare(deadLetterQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare dlq: %w", err)
	}
	if err := ch.QueueBind(deadLetterQueue, deadLetterQueue, deadLetterExchange, false, nil); err != nil {
		return fmt.Errorf("bind dlq: %w", err)
	}

	if err := ch.ExchangeDeclare(inAppExchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}
	if _, err := ch.QueueDeclare(inAppQueue, true, false, false, false, amqp.Table{
		"x-dead-letter-exchange":    deadLetterExchange,
		"x-dead-letter-routing-key": deadLetterQueue,
	}); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}
	if err := ch.QueueBind(inAppQueue, inAppRoutingKey, inAppExchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

// Publish sends one notification message to the exchange.
func (a *AMQP) Publish(ctx context.Context, msg entities.NotificationMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}
	if err := a.ch.PublishWithContext(ctx, inAppExchange, inAppRoutingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	}); err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	a.log.Infow("notification published", "type", msg.Type, "recipients", len(msg.Recipients))
	return nil
}

// Close shuts down the channel and connection.
func (a *AMQP) Close() error {
	if err := a.ch.Close(); err != nil {
		_ = a.conn.Close()
		return err
	}
	return a.conn.Close()
}
