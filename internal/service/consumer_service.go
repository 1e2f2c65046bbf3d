package service

import (
	"context"
	"encoding/json"

	"ai-topiclist-be/internal/pkg/logger"
	"ai-topiclist-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

// EventForwarder ships events beyond this process; *nats.Publisher satisfies it.
type EventForwarder interface {
	Publish(ctx context.Context, event events.Event) error
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	forwarder  EventForwarder
	log        logger.ILogger
}

// NewConsumerService drains the in-process bus. forwarder may be nil.
func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	forwarder EventForwarder,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		forwarder:  forwarder,
		log:        log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

// processMessage always acks: events are best-effort and a nack on the
// in-process channel would redeliver immediately.
func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	var evt events.BaseEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		cs.log.Error("events", "Failed to unmarshal event", map[string]interface{}{
			"error":      err,
			"message_id": msg.UUID,
		})
		return
	}

	cs.log.Info("events", evt.Type, map[string]interface{}{
		"message_id":  msg.UUID,
		"occurred_at": evt.OccurredAt,
		"data":        evt.Data,
	})

	if cs.forwarder == nil {
		return
	}
	if err := cs.forwarder.Publish(ctx, evt); err != nil {
		cs.log.Warn("events", "Failed to forward event", map[string]interface{}{
			"error":      err,
			"event_type": evt.Type,
		})
	}
}
