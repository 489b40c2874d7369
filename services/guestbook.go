package services

import (
	"context"
	"fmt"
	"os"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/lac-hong-legacy/guestbook_api/dto"
	"github.com/lac-hong-legacy/guestbook_api/model"
	"github.com/lac-hong-legacy/guestbook_api/shared"
	log "github.com/sirupsen/logrus"
)

// EntryStore is the durable, append-only guestbook collection.
type EntryStore interface {
	Append(ctx context.Context, entry *model.GuestbookEntry) (string, error)
	ListAll(ctx context.Context) ([]model.GuestbookEntry, error)
	Count(ctx context.Context) (int64, error)
}

// GuestbookService runs the write path (limit, validate, sanitize, append)
// and the newest-first read path.
type GuestbookService struct {
	appContext.DefaultService

	limiter RateLimiter
	store   EntryStore
	now     func() time.Time
}

const GUESTBOOK_SVC = "guestbook_svc"

func NewGuestbookService(limiter RateLimiter, store EntryStore, now func() time.Time) *GuestbookService {
	if now == nil {
		now = time.Now
	}
	return &GuestbookService{
		limiter: limiter,
		store:   store,
		now:     now,
	}
}

func (svc GuestbookService) Id() string {
	return GUESTBOOK_SVC
}

func (svc *GuestbookService) Configure(ctx *appContext.Context) error {
	svc.now = time.Now
	return svc.DefaultService.Configure(ctx)
}

func (svc *GuestbookService) Start() error {
	switch os.Getenv("DB_DRIVER") {
	case "postgres":
		svc.store = svc.Service(POSTGRES_SVC).(*PostgresService)
	default:
		svc.store = svc.Service(SQLITE_SVC).(*SqliteService)
	}

	switch os.Getenv("RATE_LIMIT_BACKEND") {
	case "redis":
		svc.limiter = svc.Service(REDIS_RATE_LIMIT_SVC).(*RedisRateLimitService)
	default:
		svc.limiter = svc.Service(RATE_LIMIT_SVC).(*RateLimitService)
	}
	return nil
}

// Submit stores one entry. The limiter runs first and its quota is not
// refunded when validation fails afterwards.
func (svc *GuestbookService) Submit(ctx context.Context, name, message, clientIdentifier string) (*dto.SubmitEntryResponse, error) {
	logEntry := log.WithField("client_id", clientIdentifier)

	decision, err := svc.limiter.CheckAndConsume(ctx, clientIdentifier)
	if err != nil {
		guestbookSubmissionsTotal.WithLabelValues(submissionFailed).Inc()
		logEntry.WithError(err).Error("Rate limit check failed")
		return nil, shared.NewPersistenceError(err, "Failed to submit entry")
	}
	if !decision.Allowed {
		guestbookSubmissionsTotal.WithLabelValues(submissionRateLimited).Inc()
		logEntry.WithField("remaining_ms", decision.RemainingMs).Info("Guestbook submission rate limited")
		return nil, shared.NewRateLimitedError(decision.RemainingMs)
	}

	if err := dto.ValidateGuestbookInput(name, message); err != nil {
		guestbookSubmissionsTotal.WithLabelValues(submissionInvalid).Inc()
		return nil, err
	}

	entry := &model.GuestbookEntry{
		Name:      shared.Sanitize(name),
		Message:   shared.Sanitize(message),
		Timestamp: svc.now().UnixMilli(),
	}

	id, err := svc.store.Append(ctx, entry)
	if err != nil {
		guestbookSubmissionsTotal.WithLabelValues(submissionFailed).Inc()
		logEntry.WithError(err).Error("Failed to append guestbook entry")
		return nil, shared.NewPersistenceError(err, "Failed to submit entry")
	}

	guestbookSubmissionsTotal.WithLabelValues(submissionCreated).Inc()
	logEntry.WithField("entry_id", id).Info("Guestbook entry created")

	return &dto.SubmitEntryResponse{Success: true, ID: id}, nil
}

// List returns every entry, most recent first.
func (svc *GuestbookService) List(ctx context.Context) ([]dto.GuestbookEntryResponse, error) {
	entries, err := svc.store.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list guestbook entries")
		return nil, shared.NewPersistenceError(err, "Failed to load entries")
	}

	res := make([]dto.GuestbookEntryResponse, 0, len(entries))
	for _, entry := range entries {
		res = append(res, dto.NewGuestbookEntryResponse(entry))
	}
	return res, nil
}

func (svc *GuestbookService) Stats(ctx context.Context) (*dto.GuestbookStatsResponse, error) {
	count, err := svc.store.Count(ctx)
	if err != nil {
		return nil, shared.NewPersistenceError(fmt.Errorf("count entries: %w", err), "Failed to load entries")
	}

	stats := &dto.GuestbookStatsResponse{Entries: count}
	if tracker, ok := svc.limiter.(interface{ Len() int }); ok {
		tracked := tracker.Len()
		stats.TrackedIdentifiers = &tracked
	}
	return stats, nil
}
