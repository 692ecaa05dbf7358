package channel

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramChannel шлёт уведомления напрямую через Bot API.
// Идентификатор пользователя на платформе — это chat id в Telegram.
type TelegramChannel struct {
	bot *tgbotapi.BotAPI
}

func NewTelegramChannel(token string) (*TelegramChannel, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &TelegramChannel{bot: bot}, nil
}

func (c *TelegramChannel) Deliver(ctx context.Context, userID int64, text string) error {
	msg := tgbotapi.NewMessage(userID, text)
	_, err := c.bot.Send(msg)
	return err
}
