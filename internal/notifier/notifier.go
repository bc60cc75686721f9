package notifier

import (
	"time"

	"hackwatch/internal/logger"
	"hackwatch/internal/telegram"
	"hackwatch/internal/urgency"
)

// messageDelay spaces out sends to stay under Telegram's rate limits.
const messageDelay = 2 * time.Second

// Result counts how a notification run went.
type Result struct {
	Sent   int
	Failed int
}

// Notifier delivers alerts for a batch of scored hackathons.
type Notifier interface {
	Notify(records []*urgency.Scored) Result
}

// MessageSender is the part of the Telegram client the notifier uses.
type MessageSender interface {
	SendMessage(text string) error
}

// TelegramNotifier sends one alert message per hackathon.
type TelegramNotifier struct {
	sender MessageSender
	delay  time.Duration
}

// NewTelegramNotifier creates a notifier backed by the given client.
func NewTelegramNotifier(client *telegram.Client) *TelegramNotifier {
	return &TelegramNotifier{
		sender: client,
		delay:  messageDelay,
	}
}

// Notify sends an alert for each hackathon. A failed send is logged and
// counted, never fatal, so one bad record cannot block the rest.
func (n *TelegramNotifier) Notify(records []*urgency.Scored) Result {
	var res Result

	for i, rec := range records {
		msg := telegram.FormatMessage(rec)

		if err := n.sender.SendMessage(msg); err != nil {
			logger.Error("sending alert", logger.Fields{"hackathon": rec.Name}, err)
			res.Failed++
		} else {
			logger.Info("alert sent", logger.Fields{
				"hackathon": rec.Name,
				"level":     string(rec.Level),
			})
			res.Sent++
		}

		if i < len(records)-1 {
			time.Sleep(n.delay)
		}
	}

	return res
}
