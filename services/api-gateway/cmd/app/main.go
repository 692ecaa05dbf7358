package main

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"courseplatform/services/api-gateway/internal/client"
	"courseplatform/services/api-gateway/internal/config"
	"courseplatform/services/api-gateway/internal/middleware"
	handlers "courseplatform/services/api-gateway/internal/transport/http"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("Connected to Redis at", cfg.RedisAddr)

	rateLimiter := middleware.NewRateLimiter(rdb)
	authClient := client.NewAuthClient(cfg.AuthSvcURL)

	authProxy := client.NewProxy(cfg.AuthSvcURL)
	managementProxy := client.NewProxy(cfg.ManagementSvcURL)
	enrollingProxy := client.NewProxy(cfg.EnrollingSvcURL)

	authHandler := handlers.NewAuthHandler(authProxy)
	courseHandler := handlers.NewCourseHandler(managementProxy, enrollingProxy)
	enrollHandler := handlers.NewEnrollHandler(enrollingProxy)

	router := handlers.NewRouter(authHandler, courseHandler, enrollHandler, rateLimiter, authClient, cfg.AllowedOrigins)

	log.Printf("API Gateway running on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
