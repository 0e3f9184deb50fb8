package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	appfx "github.com/amityadav/threatlens/internal/fx"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		appfx.ConfigModule,     // Provides: config.Config
		appfx.StoreModule,      // Provides: *store.TrendStore
		appfx.DetectModule,     // Provides: *detect.Detector
		appfx.ClassifierModule, // Provides: classifier.Labeler (Gemini)
		appfx.ProviderModule,   // Provides: *provider.Registry
		appfx.CoreModule,       // Provides: *core.AnalysisCore
		appfx.WatchModule,      // Provides: *watch.Worker (optional)
		appfx.ServerModule,     // Starts HTTP server + watch worker

		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ConsoleLogger{W: log.Writer()}
		}),
	)

	// Run blocks until the app receives a shutdown signal
	app.Run()
}
