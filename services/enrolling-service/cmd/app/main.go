package main

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"courseplatform/services/enrolling-service/config"
	"courseplatform/services/enrolling-service/internal/application/usecase"
	"courseplatform/services/enrolling-service/internal/infrastructure/repository"
	handlers "courseplatform/services/enrolling-service/internal/transport/http"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	log.Println("Running migrations...")
	if err := db.AutoMigrate(&repository.EnrollmentGorm{}); err != nil {
		log.Fatalf("Failed to migrate DB: %v", err)
	}

	repo := repository.NewEnrollmentRepository(db)
	uc := usecase.NewEnrollmentUseCase(repo)
	router := handlers.NewRouter(handlers.NewEnrollmentHandler(uc))

	log.Printf("Enrolling Service running on %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
