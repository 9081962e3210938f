package main

import (
	"context"
	"log"

	"github.com/Shravansapate/legislate-voice-aid/internal/bootstrap"
	"github.com/Shravansapate/legislate-voice-aid/internal/config"
	"github.com/Shravansapate/legislate-voice-aid/internal/server"
	"github.com/Shravansapate/legislate-voice-aid/pkg/database"
)

func main() {
	// 0. Initialize Tracer - DISABLED
	// shutdownTracer := tracer.InitTracer()
	// defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Speech Service...")
		if err := container.SpeechService.Consume(context.Background()); err != nil {
			log.Printf("Background Speech Consumer Error: %v", err)
		}
	}()

	if container.NotificationService != nil {
		go container.NotificationService.Start()
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
