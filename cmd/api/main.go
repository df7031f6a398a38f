package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/softharbor/zenvia-bridge/internal/infra/database"
	"github.com/softharbor/zenvia-bridge/internal/infra/http/handlers"
	"github.com/softharbor/zenvia-bridge/internal/infra/http/middleware"
	"github.com/softharbor/zenvia-bridge/internal/infra/mail"
	"github.com/softharbor/zenvia-bridge/internal/infra/queue"
	"github.com/softharbor/zenvia-bridge/internal/usecase"
	"github.com/softharbor/zenvia-bridge/pkg/zenvia"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		os.Getenv("RABBITMQ_USER"), os.Getenv("RABBITMQ_PASS"),
		os.Getenv("RABBITMQ_HOST"), os.Getenv("RABBITMQ_PORT"),
	)
	if err != nil {
		panic(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositories
	subRepo := database.NewSubscriptionRepository(db)
	eventRepo := database.NewInboundEventRepository(db)

	// 2. Gateways and adapters
	client := zenvia.NewClient(os.Getenv("ZENVIA_API_TOKEN"))
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailPort, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
	if mailPort == 0 {
		mailPort = 587
	}
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), mailPort, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		os.Getenv("OPS_EMAIL"),
	)

	// 3. Worker (consumes the queue and notifies operations)
	worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
	go worker.Start(queue.QueueName)

	// 4. Use cases
	registerUC := usecase.NewRegisterWebhookUseCase(client, subRepo)
	removeUC := usecase.NewRemoveWebhookUseCase(client, subRepo)
	sendUC := usecase.NewSendMessageUseCase(client)
	ingestUC := usecase.NewIngestEventUseCase(eventRepo, producer)

	// 5. Handlers
	subHandler := handlers.NewSubscriptionHandler(client, registerUC, removeUC, subRepo)
	messageHandler := handlers.NewMessageHandler(sendUC)
	templateHandler := handlers.NewTemplateHandler(client)
	eventHandler := handlers.NewEventHandler(ingestUC, eventRepo)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/webhooks", subHandler.HandleList)
	r.Get("/webhooks/mirror", subHandler.HandleListMirror)
	r.Get("/webhooks/{id}", subHandler.HandleGet)
	r.Post("/webhooks", subHandler.HandleCreate)
	r.Delete("/webhooks/{id}", subHandler.HandleDelete)

	r.Post("/messages/whatsapp", messageHandler.HandleSend)

	r.Get("/templates", templateHandler.HandleList)
	r.Get("/templates/{id}", templateHandler.HandleGet)

	r.Post("/events/zenvia", eventHandler.HandleReceive)
	r.Get("/events", eventHandler.HandleListRecent)

	port := ":8080"
	log.Printf("🔥 Zenvia bridge running on port %s", port)
	http.ListenAndServe(port, r)
}
