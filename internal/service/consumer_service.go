package service

import (
	"context"
	"encoding/json"
	"log"

	"storefront-be/internal/dto"
	"storefront-be/internal/pkg/mailer"
	"storefront-be/internal/repository/specification"
	"storefront-be/internal/repository/unitofwork"
	"storefront-be/pkg/events"
	pktNats "storefront-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the order-placed topic: for each committed
// order it sends the confirmation email and mirrors the event onto the
// NATS bus for downstream systems.
type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
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

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishOrderPlacedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal order placed message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing order confirmation for OrderId: %s", payload.OrderId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: payload.OrderId})
	if err != nil {
		log.Printf("[ERROR] Failed to get order %s: %v", payload.OrderId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if order == nil {
		log.Printf("[ERROR] Order not found: %s", payload.OrderId)
		msg.Ack() // Order deleted? Ack.
		return
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: order.UserId})
	if err != nil {
		log.Printf("[ERROR] Failed to get user %s: %v", order.UserId, err)
		msg.Nack()
		return
	}
	if user == nil {
		log.Printf("[WARN] Order %s has no owning user (implied id %s)", order.Id, order.UserId)
		msg.Ack()
		return
	}

	if err := cs.emailService.SendOrderConfirmation(user.Email, order.OrderNumber, order.Total, order.Currency); err != nil {
		log.Printf("[ERROR] Failed to send confirmation email for order %s: %v", order.OrderNumber, err)
		msg.Nack()
		return
	}

	if cs.eventPublisher != nil {
		event := events.NewOrderPlaced(order.Id.String(), order.OrderNumber, order.UserId.String(), order.Total)
		if err := cs.eventPublisher.Publish(ctx, event); err != nil {
			// Email already went out; event loss is logged, not retried.
			log.Printf("[WARN] Failed to publish order placed event for %s: %v", order.OrderNumber, err)
		}
	}

	log.Printf("[INFO] Order confirmation sent for %s", order.OrderNumber)
	msg.Ack()
}
