package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"emenu-backend/config"
	"emenu-backend/internal/analytics"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[analytics-worker] no .env file found, using environment")
	}

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader(config.EventsTopic, "analytics-worker")
	defer reader.Close()

	consumer := analytics.NewConsumer(reader, analytics.NewStore(db, rdb))
	consumer.Start(context.Background())
}
