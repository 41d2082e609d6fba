package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"coinpitch/pkg/config"
	"coinpitch/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	LedgerQueueName      = "ledger_events"
	LedgerExchange       = "ledger"
	LedgerRoutingKey     = "transaction_processed"
)

// LedgerEvent is published after every processed transaction so downstream
// consumers (analytics dashboards, notifications) can react without polling.
type LedgerEvent struct {
	TransactionID   string `json:"transaction_id"`
	UserID          string `json:"user_id"`
	Type            string `json:"type"`
	Amount          string `json:"amount"`
	PlatformFee     string `json:"platform_fee"`
	FounderProfit   string `json:"founder_profit"`
	TransactionHash string `json:"transaction_hash"`
}

type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *logger.Logger
}

func NewRabbitMQClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		cfg.RabbitMQUser,
		cfg.RabbitMQPassword,
		cfg.RabbitMQHost,
		cfg.RabbitMQPort,
	)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		LedgerExchange, // name
		"direct",       // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	_, err = channel.QueueDeclare(
		LedgerQueueName, // name
		true,            // durable
		false,           // delete when unused
		false,           // exclusive
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	err = channel.QueueBind(
		LedgerQueueName,  // queue name
		LedgerRoutingKey, // routing key
		LedgerExchange,   // exchange
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	log.Info("Connected to RabbitMQ at %s:%s", cfg.RabbitMQHost, cfg.RabbitMQPort)

	return &Client{
		conn:    conn,
		channel: channel,
		logger:  log,
	}, nil
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// PublishLedgerEvent publishes a processed-transaction event. Delivery is
// best effort; the ledger write has already been committed by the caller.
func (c *Client) PublishLedgerEvent(event LedgerEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger event: %w", err)
	}

	err = c.channel.Publish(
		LedgerExchange,   // exchange
		LedgerRoutingKey, // routing key
		false,            // mandatory
		false,            // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish ledger event: %w", err)
	}

	c.logger.Info("Published ledger event for transaction %s", event.TransactionID)
	return nil
}
