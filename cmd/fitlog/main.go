package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/fitlog-dev/fitlog/db"
	"github.com/fitlog-dev/fitlog/internal/auth"
	"github.com/fitlog-dev/fitlog/internal/lifecycle"
	"github.com/fitlog-dev/fitlog/internal/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	if err := auth.InitJWTSecret(); err != nil {
		log.Fatalf("Failed to initialize auth: %v", err)
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	gdb, err := db.Connect(dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	events := lifecycle.NewPublisher(os.Getenv("LIFECYCLE_WEBHOOK_URL"))

	r := router.NewRouter(gdb, events)

	var port string

	if port = os.Getenv("PORT"); port == "" {
		port = "3000"
		log.Println("PORT not set, defaulting to 3000")
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
