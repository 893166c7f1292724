package main

import (
	"log"

	"MyWhiteboard/internal/config"
	"MyWhiteboard/internal/ui"
)

func main() {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	log.Printf("Starting %s's whiteboard", cfg.Owner)
	ui.RunApp(cfg)
}
