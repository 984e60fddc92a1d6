package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gravity-games/dropfour/internal/config"
	"github.com/gravity-games/dropfour/internal/service/cleanup"
	"github.com/gravity-games/dropfour/internal/service/session"
	transportHttp "github.com/gravity-games/dropfour/internal/transport/http"
	"github.com/gravity-games/dropfour/internal/transport/http/middleware"
	"github.com/gravity-games/dropfour/internal/transport/websocket"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.LoadConfig()

	// Session registry and background eviction
	sessionManager := session.NewManager()
	cleanupWorker := cleanup.NewWorker(sessionManager, cfg.CleanupInterval, cfg.SessionTTL)
	cleanupWorker.Start()

	// Handlers
	matchHandler := transportHttp.NewMatchHandler(sessionManager, cfg.DefaultBotTier)
	wsHandler := websocket.NewHandler(sessionManager, cfg.DefaultBotTier)

	// Router
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.CORSMiddleware())

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": sessionManager.Count()})
	})

	router.POST("/api/match", matchHandler.Create)
	router.GET("/api/match/:id", matchHandler.Get)
	router.POST("/api/match/:id/move", matchHandler.Move)
	router.DELETE("/api/match/:id", matchHandler.Delete)

	router.GET("/ws", wsHandler.HandleWebSocket)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
