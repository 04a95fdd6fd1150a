package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/meridianlabs-io/staking-rewards-ledger/internal/config"
)

// QueueManager publishes observable ledger events to RabbitMQ. All queues
// are durable and messages persistent; consumers (indexers, auditors) are
// free to come and go.
type QueueManager struct {
	cfg     *config.QueueConfig
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *zap.Logger
}

func NewQueueManager(cfg *config.QueueConfig, logger *zap.Logger) (*QueueManager, error) {
	amqpURI := fmt.Sprintf("amqp://%s:%s@%s", cfg.User, cfg.Password, cfg.URL)
	conn, err := amqp.Dial(amqpURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	queueNames := []string{
		DepositQueueName,
		WithdrawQueueName,
		RewardsClaimedQueueName,
		RewardsDistributedQueueName,
	}
	for _, name := range queueNames {
		if _, err := channel.QueueDeclare(
			name,
			true,  // durable
			false, // autoDelete
			false, // exclusive
			false, // noWait
			nil,
		); err != nil {
			channel.Close()
			conn.Close()
			return nil, fmt.Errorf("failed to declare queue %s: %w", name, err)
		}
	}

	return &QueueManager{
		cfg:     cfg,
		conn:    conn,
		channel: channel,
		logger:  logger.With(zap.String("module", "queue")),
	}, nil
}

func (qm *QueueManager) publish(ctx context.Context, queueName, eventID string, event any) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, qm.cfg.PublishTimeout)
	defer cancel()

	err = qm.channel.PublishWithContext(ctx,
		"",        // default exchange
		queueName, // routing key == queue name
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    eventID,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", queueName, err)
	}

	qm.logger.Debug("published event",
		zap.String("queue", queueName),
		zap.String("eventId", eventID),
	)
	return nil
}

func (qm *QueueManager) PushDepositEvent(ctx context.Context, ev *DepositEvent) error {
	return qm.publish(ctx, DepositQueueName, ev.EventID, ev)
}

func (qm *QueueManager) PushWithdrawEvent(ctx context.Context, ev *WithdrawEvent) error {
	return qm.publish(ctx, WithdrawQueueName, ev.EventID, ev)
}

func (qm *QueueManager) PushRewardsClaimedEvent(ctx context.Context, ev *RewardsClaimedEvent) error {
	return qm.publish(ctx, RewardsClaimedQueueName, ev.EventID, ev)
}

func (qm *QueueManager) PushRewardsDistributedEvent(ctx context.Context, ev *RewardsDistributedEvent) error {
	return qm.publish(ctx, RewardsDistributedQueueName, ev.EventID, ev)
}

// Shutdown gracefully stops the interaction with the queue, ensuring all
// resources are properly released.
func (qm *QueueManager) Shutdown() {
	qm.logger.Info("shutting down queue manager")
	if err := qm.channel.Close(); err != nil {
		qm.logger.Error("failed to close channel", zap.Error(err))
	}
	if err := qm.conn.Close(); err != nil {
		qm.logger.Error("failed to close connection", zap.Error(err))
	}
}
