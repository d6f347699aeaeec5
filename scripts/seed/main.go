package main

import (
	"fmt"
	"log"

	"github.com/blaisecz/gym-dashboard/internal/calculator"
	"github.com/blaisecz/gym-dashboard/internal/config"
	"github.com/blaisecz/gym-dashboard/internal/seed"
)

func main() {
	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	calc := calculator.New(calculator.ParseOtherGenderPolicy(cfg.BMROtherGenderFormula))
	if err := seed.Run(db, calc); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	fmt.Println("\nSample client IDs for testing:")
	for _, client := range seed.Clients {
		fmt.Printf("  %s (%s, goal %s)\n", client.ID, client.Profile.Gender, client.Profile.Goal)
	}
}
