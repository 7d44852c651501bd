package main

import (
	"log"

	"datareport/adapters/charts"
	"datareport/adapters/render"
	"datareport/app"
	"datareport/internal/analysis"
	"datareport/internal/assemble"
	"datareport/internal/config"
	"datareport/ui"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real environment wins.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	analyzer := analysis.NewEngine()
	generator := charts.NewGenerator()
	service := app.NewReportService(generator, analyzer, assemble.NewAssembler())

	server := ui.NewServer(cfg, service, analyzer, generator, render.NewHTMLRenderer())
	if err := server.Run(); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
