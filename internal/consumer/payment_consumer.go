package consumer

import (
	"context"
	"log"

	"github.com/tonatiuh19/intelipadel-sub001/internal/events"
	"github.com/tonatiuh19/intelipadel-sub001/internal/repository"
	"github.com/tonatiuh19/intelipadel-sub001/pkg/mq"
)

// PaymentConsumer confirms bookings when the payment gateway settles
// them. Confirmation is idempotent per payment ID, so redelivered
// messages are safe to ack.
type PaymentConsumer struct {
	repo *repository.BookingRepo
	cons *mq.Consumer
}

func NewPaymentConsumer(repo *repository.BookingRepo, cons *mq.Consumer) *PaymentConsumer {
	return &PaymentConsumer{repo: repo, cons: cons}
}

func (pc *PaymentConsumer) Run(ctx context.Context) error {
	msgs, err := pc.cons.Deliveries(ctx)
	if err != nil {
		return err
	}
	go func() {
		for d := range msgs {
			switch d.RoutingKey {
			case events.RKPaymentPaid:
				evt, err := events.MustUnmarshal[events.PaymentPaid](d.Body)
				if err != nil {
					log.Printf("[payment-consumer] unmarshal error: %v", err)
					_ = d.Nack(false, false)
					continue
				}
				if evt.Data.BookingID == "" || evt.Data.PaymentID == "" {
					log.Printf("[payment-consumer] invalid event payload")
					_ = d.Ack(false)
					continue
				}
				if _, err := pc.repo.ConfirmIfNotProcessed(ctx, evt.Data.BookingID, evt.Data.PaymentID, events.RKPaymentPaid); err != nil {
					log.Printf("[payment-consumer] confirm error: %v", err)
					_ = d.Nack(false, true)
					continue
				}
				_ = d.Ack(false)
			default:
				// payment.failed is informational here; the booking
				// stays PENDING until paid or cancelled.
				_ = d.Ack(false)
			}
		}
	}()
	return nil
}
