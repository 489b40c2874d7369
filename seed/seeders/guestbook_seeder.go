package seeders

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/lac-hong-legacy/guestbook_api/services"
)

const seedClientID = "seeder"

type welcomeEntry struct {
	Name    string
	Message string
}

var welcomeEntries = []welcomeEntry{
	{Name: "Portfolio Bot", Message: "Welcome to the guestbook! Leave a note and say hi."},
	{Name: "Ada", Message: "Loved the particle background on the landing page."},
	{Name: "Linus", Message: "Clean project write-ups. The <canvas> demos run smoothly."},
}

type GuestbookSeeder struct {
	store services.EntryStore
}

func NewGuestbookSeeder(store services.EntryStore) *GuestbookSeeder {
	return &GuestbookSeeder{store: store}
}

// SeedWelcomeEntries writes the welcome entries through GuestbookService so
// they are validated and escaped like real submissions. An already populated
// guestbook is left alone. Returns how many entries were written.
func (s *GuestbookSeeder) SeedWelcomeEntries(ctx context.Context) (int, error) {
	count, err := s.store.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		log.Printf("Guestbook already has %d entries, skipping", count)
		return 0, nil
	}

	limiter := services.NewRateLimitService(len(welcomeEntries), time.Minute, nil)
	guestbookSvc := services.NewGuestbookService(limiter, s.store, nil)

	for i, entry := range welcomeEntries {
		if _, err := guestbookSvc.Submit(ctx, entry.Name, entry.Message, seedClientID); err != nil {
			return i, fmt.Errorf("seed entry %d: %w", i, err)
		}
	}

	log.Printf("Seeded %d guestbook entries", len(welcomeEntries))
	return len(welcomeEntries), nil
}
