package main

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/redis/go-redis/v9"

	"courseplatform/services/telegram-bot/config"
	"courseplatform/services/telegram-bot/internal/bot"
	"courseplatform/services/telegram-bot/internal/client"
	"courseplatform/services/telegram-bot/internal/state"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is required")
	}

	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}
	log.Printf("Authorized on account %s", api.Self.UserName)

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	gateway := client.NewGatewayClient(cfg.GatewayURL)
	b := bot.New(api, gateway, state.NewStore(rdb))

	log.Println("Telegram bot is running")
	b.Run(context.Background())
}
