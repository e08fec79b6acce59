package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"emenu-backend/config"
	"emenu-backend/internal/analytics"
	httpapi "emenu-backend/internal/api/http"
	"emenu-backend/internal/service"
	"emenu-backend/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[main] no .env file found, using environment")
	}

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	var publisher service.EventPublisher
	if writer := config.NewKafkaWriter(config.EventsTopic); writer != nil {
		defer writer.Close()
		publisher = &storage.KafkaPublisher{Writer: writer}
	} else {
		log.Println("[main] KAFKA_BROKER not set, event publishing disabled")
	}

	menuBaseURL := os.Getenv("MENU_BASE_URL")
	if menuBaseURL == "" {
		menuBaseURL = "http://localhost:3000/menu"
	}
	qr := service.DefaultQRGenerator{BaseURL: menuBaseURL}

	tables := service.NewTableService(repo, repo, repo, repo, qr)
	menu := service.NewMenuService(repo)
	orders := service.NewOrderService(repo, repo, repo, publisher)
	calls := service.NewStaffCallService(repo, repo, publisher)
	payments := service.NewPaymentRequestService(repo, repo, publisher)

	staffToken := os.Getenv("STAFF_TOKEN")
	adminToken := os.Getenv("ADMIN_TOKEN")
	if staffToken == "" && adminToken == "" {
		log.Println("[main] STAFF_TOKEN/ADMIN_TOKEN not set, protected routes are open")
	}
	auth := httpapi.NewAuth(staffToken, adminToken)

	handler := httpapi.NewHandler(tables, menu, orders, calls, payments, analytics.NewStore(db, rdb), auth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	httpapi.StartServer(":"+port, httpapi.NewRouter(handler))
}
