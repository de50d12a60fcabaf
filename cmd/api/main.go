package main

import (
	"log"

	"incomedash/internal"
	"incomedash/internal/config"
	"incomedash/internal/dashboard"
	"incomedash/internal/dataset"
	"incomedash/ui"
	"incomedash/ui/services"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	internal.SetLevel(internal.ParseLogLevel(appConfig.LogLevel))

	loader := dataset.NewLoader(appConfig.Data.File, appConfig.Dashboard.PreviewRows)
	selector := dashboard.NewSelector(loader, dashboard.NewRenderer(appConfig.Dashboard.ScatterSampleLimit))

	app := ui.NewApp(services.NewDataService(selector))
	log.Fatal(app.Start(ui.Config{Port: appConfig.Server.Port}))
}
