package repositories

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/lac-hong-legacy/guestbook_api/model"
	"gorm.io/gorm"
)

// GuestbookRepository is the append-only entry store shared by the sqlite and
// postgres services.
type GuestbookRepository struct {
	BaseRepository
}

func NewGuestbookRepository(db *gorm.DB) *GuestbookRepository {
	return &GuestbookRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// Append assigns a fresh id and inserts the entry.
func (r *GuestbookRepository) Append(ctx context.Context, entry *model.GuestbookEntry) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate entry id: %w", err)
	}
	entry.ID = id.String()

	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return "", HandleError(err)
	}
	return entry.ID, nil
}

// ListAll reads every entry in timestamp order and returns it newest first.
// Ties keep insertion order because v7 ids sort by creation time.
func (r *GuestbookRepository) ListAll(ctx context.Context) ([]model.GuestbookEntry, error) {
	var entries []model.GuestbookEntry
	err := r.db.WithContext(ctx).
		Order("timestamp ASC").
		Order("id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, HandleError(err)
	}

	slices.Reverse(entries)
	return entries, nil
}

func (r *GuestbookRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.GuestbookEntry{}).Count(&count).Error; err != nil {
		return 0, HandleError(err)
	}
	return count, nil
}

// Migrate creates the entries table and its timestamp index.
func (r *GuestbookRepository) Migrate() error {
	return r.db.AutoMigrate(&model.GuestbookEntry{})
}
