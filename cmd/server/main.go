package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yamadaken1/jikoboard/internal/auth"
	"github.com/yamadaken1/jikoboard/internal/board"
	"github.com/yamadaken1/jikoboard/internal/config"
	"github.com/yamadaken1/jikoboard/internal/gen"
	routes "github.com/yamadaken1/jikoboard/internal/http"
	"github.com/yamadaken1/jikoboard/internal/store"
	"github.com/yamadaken1/jikoboard/internal/ws"
)

func main() {
	// A missing .env is fine: in production the variables are set
	// directly in the environment.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// 1. Stores and services
	users := store.NewUserStore(cfg.UsersFile)
	posts := store.NewBoardStore(cfg.BoardFile)
	authSvc := auth.NewService(users)
	boardSvc := board.NewService(posts)

	generator, err := gen.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GenTimeout)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}

	// 2. WebSocket hub
	hub := ws.NewHub()
	go hub.Run()

	// 3. Router
	router := gin.New()
	routes.SetupRoutes(router, cfg, authSvc, boardSvc, generator, hub)

	// 4. Start server with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Server listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
