package main

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"courseplatform/services/notification-service/config"
	"courseplatform/services/notification-service/internal/channel"
	"courseplatform/services/notification-service/internal/client"
	"courseplatform/services/notification-service/internal/queue"
	handlers "courseplatform/services/notification-service/internal/transport/http"
	"courseplatform/services/notification-service/internal/worker"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Config load failed: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("Connected to Redis at", cfg.RedisAddr)

	jobQueue := queue.New(rdb)

	// Канал доставки: Telegram, если задан токен, иначе консоль.
	var deliver worker.Channel
	if cfg.TelegramToken != "" {
		tg, err := channel.NewTelegramChannel(cfg.TelegramToken)
		if err != nil {
			log.Fatalf("Telegram channel init failed: %v", err)
		}
		deliver = tg
	} else {
		log.Println("TELEGRAM_BOT_TOKEN is empty, delivering to console")
		deliver = channel.NewConsoleChannel()
	}

	reminderHandler := worker.NewReminderHandler(
		client.NewManagementClient(cfg.ManagementSvcURL),
		client.NewEnrollingClient(cfg.EnrollingSvcURL),
		deliver,
	)

	w := worker.New(jobQueue, time.Duration(cfg.PollIntervalSec)*time.Second, 50)
	w.Register(worker.JobTypeReminder, reminderHandler.Handle)
	go w.Run(context.Background())

	router := handlers.NewRouter(handlers.NewNotificationHandler(jobQueue))

	log.Printf("Notification Service running on %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
