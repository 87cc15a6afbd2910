package notify

import (
	"context"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/tonatiuh19/intelipadel-sub001/internal/events"
)

type Config struct {
	RabbitURL string
	Exchanges []string // booking + payment exchanges
	Queue     string
	Bindings  []string // e.g. "booking.*", "payment.*"
	Prefetch  int
	UseDLX    bool
	DLXName   string
	DLXQueue  string
	Consumer  string
}

// Worker turns booking and payment events into user-facing
// notifications. Failed deliveries are nacked with requeue; with DLX
// enabled poison messages end up on the dead-letter queue.
type Worker struct {
	cfg      Config
	notifier Notifier

	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewWorker(cfg Config, n Notifier) *Worker {
	return &Worker{cfg: cfg, notifier: n}
}

func (w *Worker) Connect() error {
	conn, err := amqp.Dial(w.cfg.RabbitURL)
	if err != nil {
		return fmt.Errorf("rabbit dial failed: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("open channel failed: %w", err)
	}

	args := amqp.Table{}
	if w.cfg.UseDLX {
		args["x-dead-letter-exchange"] = w.cfg.DLXName
	}
	q, err := ch.QueueDeclare(w.cfg.Queue, true, false, false, false, args)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("declare queue failed: %w", err)
	}

	for _, ex := range w.cfg.Exchanges {
		if err := ch.ExchangeDeclare(ex, "topic", true, false, false, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return fmt.Errorf("declare exchange %s failed: %w", ex, err)
		}
		for _, key := range w.cfg.Bindings {
			if err := ch.QueueBind(q.Name, key, ex, false, nil); err != nil {
				_ = ch.Close()
				_ = conn.Close()
				return fmt.Errorf("bind exchange=%s key=%s failed: %w", ex, key, err)
			}
		}
	}

	if w.cfg.UseDLX {
		if err := ch.ExchangeDeclare(w.cfg.DLXName, "topic", true, false, false, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return fmt.Errorf("declare dlx failed: %w", err)
		}
		if _, err := ch.QueueDeclare(w.cfg.DLXQueue, true, false, false, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return fmt.Errorf("declare dlq failed: %w", err)
		}
		if err := ch.QueueBind(w.cfg.DLXQueue, "#", w.cfg.DLXName, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return fmt.Errorf("bind dlq failed: %w", err)
		}
	}

	if w.cfg.Prefetch <= 0 {
		w.cfg.Prefetch = 8
	}
	if err := ch.Qos(w.cfg.Prefetch, 0, false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("set qos failed: %w", err)
	}

	w.conn = conn
	w.ch = ch
	return nil
}

func (w *Worker) Close() {
	if w.ch != nil {
		_ = w.ch.Close()
	}
	if w.conn != nil {
		_ = w.conn.Close()
	}
}

func (w *Worker) Run(ctx context.Context) error {
	msgs, err := w.ch.ConsumeWithContext(ctx, w.cfg.Queue, w.cfg.Consumer, false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume failed: %w", err)
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			if err := w.handleDelivery(d); err != nil {
				log.Printf("[notify] handle error key=%s err=%v -> Nack&requeue", d.RoutingKey, err)
				_ = d.Nack(false, true)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (w *Worker) handleDelivery(d amqp.Delivery) error {
	switch d.RoutingKey {
	case events.RKBookingCreated:
		ev, err := events.MustUnmarshal[events.BookingCreated](d.Body)
		if err != nil {
			return err
		}
		return w.notifier.Notify("Booking created",
			fmt.Sprintf("Booking %s (court=%s) %s", ev.BookingID, ev.CourtID, HumanSlot(ev.Date, ev.Start, ev.End)))

	case events.RKBookingConfirmed:
		ev, err := events.MustUnmarshal[events.BookingSimple](d.Body)
		if err != nil {
			return err
		}
		return w.notifier.Notify("Booking confirmed",
			fmt.Sprintf("Booking %s has been confirmed.", ev.BookingID))

	case events.RKBookingCancelled:
		ev, err := events.MustUnmarshal[events.BookingSimple](d.Body)
		if err != nil {
			return err
		}
		return w.notifier.Notify("Booking cancelled",
			fmt.Sprintf("Booking %s has been cancelled.", ev.BookingID))

	case events.RKPaymentPaid:
		ev, err := events.MustUnmarshal[events.PaymentPaid](d.Body)
		if err != nil {
			return err
		}
		return w.notifier.Notify("Payment received",
			fmt.Sprintf("Booking %s paid %d %s.", ev.Data.BookingID, ev.Data.Amount, ev.Data.Currency))

	case events.RKPaymentFailed:
		ev, err := events.MustUnmarshal[events.PaymentFailed](d.Body)
		if err != nil {
			return err
		}
		msg := fmt.Sprintf("Payment failed for booking %s.", ev.BookingID)
		if ev.FailureCode != "" || ev.FailureMessage != "" {
			msg = fmt.Sprintf("%s Reason: %s %s", msg, ev.FailureCode, ev.FailureMessage)
		}
		return w.notifier.Notify("Payment failed", msg)

	default:
		log.Printf("[notify] skip unknown key=%s", d.RoutingKey)
	}
	return nil
}
