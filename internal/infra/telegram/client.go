// internal/infra/telegram/client.go
package telegram

import (
	"fmt"
	"net/http"
	"time"

	"gopkg.in/telebot.v3"
)

// NewBot creates a send-only bot. It does not call getMe, so a bad token or an
// unreachable Telegram API shows up as a delivery failure instead of a startup crash.
func NewBot(token, apiURL string, timeout time.Duration) (*telebot.Bot, error) {
	pref := telebot.Settings{
		URL:     apiURL,
		Token:   token,
		Offline: true,
	}
	if timeout > 0 {
		pref.Client = &http.Client{Timeout: timeout}
	}
	bot, err := telebot.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("could not create telegram bot: %w", err)
	}
	return bot, nil
}

// TelebotAdapter implements the Client interface using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot *telebot.Bot
}

func NewTelebotAdapter(b *telebot.Bot) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

// SendMessage sends a text message to the specified chat.
func (tba *TelebotAdapter) SendMessage(chatID int64, text string, options *telebot.SendOptions) error {
	if options == nil {
		options = &telebot.SendOptions{}
	}

	_, err := tba.bot.Send(telebot.ChatID(chatID), text, options)
	return err
}
