package channel

import (
	"context"
	"log"
)

// ConsoleChannel — канал для локального запуска без токена бота.
type ConsoleChannel struct{}

func NewConsoleChannel() *ConsoleChannel {
	return &ConsoleChannel{}
}

func (c *ConsoleChannel) Deliver(ctx context.Context, userID int64, text string) error {
	log.Printf("Уведомление для %d: %s", userID, text)
	return nil
}
