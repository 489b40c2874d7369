package seeders

import (
	"context"
	"log"

	"github.com/lac-hong-legacy/guestbook_api/services"
)

// MainSeeder coordinates all seeding operations
type MainSeeder struct {
	store services.EntryStore
}

func NewMainSeeder(store services.EntryStore) *MainSeeder {
	return &MainSeeder{store: store}
}

// SeedAll runs all seeders in the correct order
func (s *MainSeeder) SeedAll(ctx context.Context) error {
	log.Println("Starting database seeding...")

	guestbookSeeder := NewGuestbookSeeder(s.store)
	if _, err := guestbookSeeder.SeedWelcomeEntries(ctx); err != nil {
		log.Printf("Guestbook seeding failed: %v", err)
		return err
	}

	log.Println("Database seeding completed successfully!")
	return nil
}
