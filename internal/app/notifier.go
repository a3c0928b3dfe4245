package app

import (
	"homework_status_bot/internal/domain/homework"
	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// Notifier delivers text to the single configured chat. Delivery failures are
// logged and dropped; the next poll cycle is the only retry.
type Notifier struct {
	client domainTelegram.Client
	chatID int64
	logger *logrus.Entry
}

func NewNotifier(client domainTelegram.Client, chatID int64, logger *logrus.Entry) *Notifier {
	return &Notifier{
		client: client,
		chatID: chatID,
		logger: logger.WithField("component", "notifier").WithField("chat_id", chatID),
	}
}

// Notify reports whether the message was delivered.
func (n *Notifier) Notify(text string) bool {
	if err := n.client.SendMessage(n.chatID, text, nil); err != nil {
		derr := homework.Wrap(homework.KindDelivery, err, "could not send message")
		n.logger.WithError(derr).Error("Failed to send notification")
		return false
	}
	n.logger.WithField("text", text).Debug("Notification sent")
	return true
}
