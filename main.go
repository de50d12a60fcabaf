package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"

	"incomedash/internal"
	"incomedash/internal/config"
	"incomedash/internal/dashboard"
	"incomedash/internal/dataset"
	"incomedash/ui"
	"incomedash/ui/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	internal.SetLevel(internal.ParseLogLevel(appConfig.LogLevel))
	gin.SetMode(appConfig.Server.GinMode)

	loader := dataset.NewLoader(appConfig.Data.File, appConfig.Dashboard.PreviewRows)
	selector := dashboard.NewSelector(loader, dashboard.NewRenderer(appConfig.Dashboard.ScatterSampleLimit))
	log.Printf("[Main] Dataset %s, session %s", loader.Path(), selector.SessionID())

	server := ui.NewServer(ui.Assets)
	if err := server.Initialize(services.NewDataService(selector)); err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	// Start pprof server for performance profiling
	if appConfig.Profiling.Enabled {
		go func() {
			log.Printf("[Main] Profiling server starting on :%s", appConfig.Profiling.Port)
			if err := http.ListenAndServe(":"+appConfig.Profiling.Port, nil); err != nil {
				log.Printf("[Main] pprof server failed: %v", err)
			}
		}()
	}

	log.Fatal(server.Start(":" + appConfig.Server.Port))
}
