package main

import (
	"log"

	"github.com/mkarrel/botdeck/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ botdeck failed to start: %v", err)
	}
}
