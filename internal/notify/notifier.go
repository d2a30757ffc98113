package notify

import (
	"context"
	"fmt"

	"github.com/Domenick1991/tripmate/internal/kafka"
	"github.com/sirupsen/logrus"
)

// Notifier turns travel events into user notifications. Delivery is
// simulated by logging the rendered message.
type Notifier struct {
	log logrus.FieldLogger
}

func NewNotifier(log logrus.FieldLogger) *Notifier {
	return &Notifier{log: log}
}

func (n *Notifier) Notify(_ context.Context, event kafka.TravelEvent) error {
	message, ok := Render(event)
	if !ok {
		n.log.WithField("event", event.Type).Debug("no notification for event")
		return nil
	}
	n.log.WithFields(logrus.Fields{
		"event":     event.Type,
		"user_id":   event.UserID,
		"entity_id": event.EntityID,
	}).Info(message)
	return nil
}

// Render formats the notification text for event. It reports false for
// event types nobody is notified about.
func Render(event kafka.TravelEvent) (string, bool) {
	attr := func(k string) string { return event.Attributes[k] }
	switch event.Type {
	case "booking_created":
		return fmt.Sprintf("Your stay at %s from %s is confirmed (%.2f paid).", attr("hotel_name"), attr("check_in"), event.Amount), true
	case "booking_cancelled":
		if event.Amount < 0 {
			return fmt.Sprintf("Booking %s was cancelled and %.2f refunded.", event.EntityID, -event.Amount), true
		}
		return fmt.Sprintf("Booking %s was cancelled.", event.EntityID), true
	case "carpool_booked":
		return fmt.Sprintf("Your ride from %s to %s on %s is booked.", attr("from"), attr("to"), attr("departure_date")), true
	case "carpool_cancelled":
		if event.Amount < 0 {
			return fmt.Sprintf("Ride %s was cancelled and %.2f refunded.", event.EntityID, -event.Amount), true
		}
		return fmt.Sprintf("Ride %s was cancelled.", event.EntityID), true
	case "match_created":
		return fmt.Sprintf("You matched with a travel buddy for %s.", attr("destination")), true
	case "message_sent":
		return fmt.Sprintf("New message from %s.", attr("sender_id")), true
	case "review_responded":
		return "The provider responded to your review.", true
	}
	return "", false
}
