package main

import (
	"fmt"
	"log"
	"net/http"

	"fitography/cmd/app"
	"fitography/internal/config"
	handlers "fitography/internal/handler"
	"fitography/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	db, feed, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(feed, services, cfg)

	mux := http.NewServeMux()

	// setting up routes
	mux.HandleFunc("/", handlers.HomeHandler)
	mux.HandleFunc("/health", handlers.HealthHandler)

	mux.HandleFunc("/api/posts", handler.Posts)
	mux.HandleFunc("/api/posts/", handler.PostByID)
	mux.HandleFunc("/api/tags", handler.GetTags)
	mux.HandleFunc("/api/feed/events", handler.FeedEvents)

	handlerChain := middleware.Chain(
		mux,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	// Starting the local viewer
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("fitography running on http://localhost%s/\n", addr)
	fmt.Printf("feed storage: %s\n", cfg.Storage.Path)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
