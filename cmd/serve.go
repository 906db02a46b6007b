package main

import (
	"Food-Waste-Tracker/cmd/config"
	"Food-Waste-Tracker/internal/utils"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func serve(db *gorm.DB) {
	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("error building app: %v", err)
	}

	go func() {
		addr := ":" + utils.GetConfig("APP_PORT")
		log.Infof("server is listening on %s", addr)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("could not listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("server is shutting down")

	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}
	log.Info("server stopped")
}
