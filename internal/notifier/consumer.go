package notifier

import (
	"context"
	"encoding/json"

	"github.com/Swayam792/Bugwise-Backend/internal/entities"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// NotificationStore persists delivered notifications for in-app reads.
type NotificationStore interface {
	CreateNotifications(ctx context.Context, msg entities.NotificationMessage) error
}

// Consumer drains the notification queue into the store. Messages that
// cannot be decoded or stored are rejected without requeue and flow to
// the dead-letter queue.
type Consumer struct {
	log   *zap.SugaredLogger
	ch    *amqp.Channel
	store NotificationStore
}

// NewConsumer opens a consumer channel on an existing connection.
func NewConsumer(a *AMQP, store NotificationStore, log *zap.SugaredLogger) (*Consumer, error) {
	ch, err := a.conn.Channel()
	if err != nil {
		return nil, err
	}
	return &Consumer{log: log.Named("notifier.consumer"), ch: ch, store: store}, nil
}

// Run consumes until the context is cancelled or the channel closes.
func (c *Consumer) Run(ctx context.Context) error {
	deliveries, err := c.ch.Consume(inAppQueue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return c.ch.Close()
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}
			c.handle(ctx, d)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, d amqp.Delivery) {
	var msg entities.NotificationMessage
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		c.log.Errorw("failed to decode notification", "error", err)
		_ = d.Nack(false, false)
		return
	}
	if err := c.store.CreateNotifications(ctx, msg); err != nil {
		c.log.Errorw("failed to store notification", "error", err, "type", msg.Type)
		_ = d.Nack(false, false)
		return
	}
	_ = d.Ack(false)
	c.log.Infow("notification stored", "type", msg.Type, "recipients", len(msg.Recipients))
}
