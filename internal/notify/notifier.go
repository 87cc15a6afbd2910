package notify

import (
	"fmt"
	"log"
)

// Notifier abstracts the delivery channel (email, push, chat) so the
// worker does not care which one is wired.
type Notifier interface {
	Notify(subject, message string) error
}

// ConsoleNotifier logs to stdout; the default until a real channel is
// configured.
type ConsoleNotifier struct{}

func NewConsole() *ConsoleNotifier {
	return &ConsoleNotifier{}
}

func (c *ConsoleNotifier) Notify(subject, message string) error {
	log.Printf("[notify] %s :: %s", subject, message)
	return nil
}

// HumanSlot renders a booked slot for message bodies.
func HumanSlot(date, start, end string) string {
	return fmt.Sprintf("%s %s-%s", date, start, end)
}
