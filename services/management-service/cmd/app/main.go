package main

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"courseplatform/services/management-service/config"
	"courseplatform/services/management-service/internal/application/usecase"
	"courseplatform/services/management-service/internal/infrastructure/notifier"
	"courseplatform/services/management-service/internal/infrastructure/repository"
	handlers "courseplatform/services/management-service/internal/transport/http"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Config load failed: %v", err)
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	// TranslateError нужен, чтобы нарушение уникального индекса
	// приходило как gorm.ErrDuplicatedKey, а не сырой ошибкой драйвера.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("DB connect failed: %v", err)
	}

	// Миграции
	if err := db.AutoMigrate(&repository.CourseGorm{}, &repository.ScheduleGorm{}); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("Bad timezone %q: %v", cfg.Timezone, err)
	}

	courseRepo := repository.NewCourseRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	reminderClient := notifier.NewClient(cfg.NotificationSvcURL)

	uc := usecase.NewCourseUseCase(courseRepo, scheduleRepo, reminderClient, loc)
	router := handlers.NewRouter(handlers.NewCourseHandler(uc))

	log.Printf("Management Service running on %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
