package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/stajdefterim/backend/internal/config"
)

// PushEvent is published for the mobile push worker when a reminder has
// been dispatched and the user has push notifications enabled.
type PushEvent struct {
	UserID     string    `json:"user_id"`
	ReminderID string    `json:"reminder_id"`
	Title      string    `json:"title"`
	Body       string    `json:"body,omitempty"`
	SentAt     time.Time `json:"sent_at"`
}

type RabbitClient struct {
	Conn    *amqp.Connection
	Channel *amqp.Channel
	Config  config.RabbitMQConfig
}

func NewRabbitClient(cfg config.RabbitMQConfig) (*RabbitClient, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}
	client := &RabbitClient{
		Conn:    conn,
		Channel: channel,
		Config:  cfg,
	}
	if err := client.setUpExchangeAndQueue(); err != nil {
		client.CloseConnection()
		return nil, err
	}
	return client, nil
}

func (r *RabbitClient) CloseConnection() {
	r.Channel.Close()
	r.Conn.Close()
}

func (r *RabbitClient) IsConnected() bool {
	return r.Conn != nil && !r.Conn.IsClosed()
}

func (r *RabbitClient) setUpExchangeAndQueue() error {
	if err := r.Channel.ExchangeDeclare(
		r.Config.Exchange,
		"direct",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,   // arguments
	); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}
	if _, err := r.Channel.QueueDeclare(
		r.Config.PushQueue,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("declare queue %s: %w", r.Config.PushQueue, err)
	}
	if err := r.Channel.QueueBind(
		r.Config.PushQueue,
		r.Config.PushQueue,
		r.Config.Exchange,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("bind queue %s: %w", r.Config.PushQueue, err)
	}
	return nil
}

func (r *RabbitClient) publish(ctx context.Context, routingKey string, message interface{}) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}
	err = r.Channel.PublishWithContext(
		ctx,
		r.Config.Exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}
	return nil
}

func (r *RabbitClient) PublishPush(ctx context.Context, event PushEvent) error {
	return r.publish(ctx, r.Config.PushQueue, event)
}
