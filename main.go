package main

import (
	"log"

	"complaintscope/app"
	"complaintscope/internal/config"
	"complaintscope/ui"
)

func main() {
	cfg := config.Load()

	service := app.NewAnalysisService(cfg)
	server := ui.NewServer(service, cfg)

	log.Printf("[Main] complaintscope session %s listening on %s", service.Registry().ID(), cfg.ListenAddr)
	if err := server.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("[Main] server failed: %v", err)
	}
}
