package app

import (
	"fmt"

	"homework_status_bot/internal/domain/homework"
	domainTelegram "homework_status_bot/internal/domain/telegram"
)

// Notifier relays notification texts to a single configured chat.
type Notifier struct {
	client domainTelegram.Client
	chatID string
}

func NewNotifier(client domainTelegram.Client, chatID string) *Notifier {
	return &Notifier{client: client, chatID: chatID}
}

// Notify sends text to the configured chat. An empty text is never sent.
// Transport errors are wrapped with homework.ErrDelivery.
func (n *Notifier) Notify(text string) error {
	if text == "" {
		return nil
	}
	if err := n.client.SendMessage(n.chatID, text); err != nil {
		return fmt.Errorf("%w to chat %s: %w", homework.ErrDelivery, n.chatID, err)
	}
	return nil
}
