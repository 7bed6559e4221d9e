package main

import (
	"log"

	"assetledger/internal/app/bootstrap"
)

// API process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build app wiring (ports + adapters + use cases).
// 3) Start HTTP server.
func main() {
	app, err := bootstrap.BuildAPI()
	if err != nil {
		log.Fatalf("assetledger api bootstrap failed: %v", err)
	}
	if err := app.Run(); err != nil {
		log.Fatalf("assetledger api stopped: %v", err)
	}
}
