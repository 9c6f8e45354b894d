package telegram

// Client defines an interface for sending messages via a Telegram bot.
// This keeps the polling loop independent of the bot library.
type Client interface {
	// SendMessage sends text to a chat identified by its numeric ID or @username.
	SendMessage(chatID string, text string) error
}
