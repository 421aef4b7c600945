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

	"travelstore/internal/catalog"
	intconfig "travelstore/internal/config"
	"travelstore/internal/domain/models"
	router "travelstore/internal/http"
	"travelstore/internal/services"
	"travelstore/internal/utils"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	utils.InitLogger(env.LogLevel)

	var trips []models.Trip
	var err error
	if env.CatalogDSN != "" {
		db := intconfig.ConnectDB(env.CatalogDSN)
		defer intconfig.CloseDB()
		trips, err = catalog.LoadFromDB(db)
	} else {
		trips, err = catalog.LoadFile(env.CatalogPath)
	}
	if err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}
	cat := catalog.New(trips)

	sessions := services.NewSessionService()

	r := router.NewRouter(env, cat, sessions)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on http://localhost%s (catalog: %d trips)", env.AppAddr, cat.Len())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly.")
}
