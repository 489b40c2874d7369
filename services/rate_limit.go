package services

import (
	"context"
	"sync"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/lac-hong-legacy/guestbook_api/dto"
	"github.com/lac-hong-legacy/guestbook_api/model"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultRateLimitMax    = 3
	DefaultRateLimitWindow = time.Minute
)

// RateLimiter is the throttle consulted before every guestbook write.
type RateLimiter interface {
	CheckAndConsume(ctx context.Context, identifier string) (*dto.RateLimitDecision, error)
}

// RateLimitService is a fixed-window, per-identifier limiter held in process
// memory. Records are never evicted unless a sweep interval is configured.
type RateLimitService struct {
	appContext.DefaultService

	records map[string]*model.RateLimitRecord
	mutex   sync.Mutex

	maxPerWindow  int
	window        time.Duration
	sweepInterval time.Duration
	now           func() time.Time

	closed chan struct{}
}

const RATE_LIMIT_SVC = "rate_limit_svc"

func NewRateLimitService(maxPerWindow int, window time.Duration, now func() time.Time) *RateLimitService {
	if now == nil {
		now = time.Now
	}
	return &RateLimitService{
		records:      make(map[string]*model.RateLimitRecord),
		maxPerWindow: maxPerWindow,
		window:       window,
		now:          now,
	}
}

func (svc *RateLimitService) Id() string {
	return RATE_LIMIT_SVC
}

func (svc *RateLimitService) Configure(ctx *appContext.Context) error {
	svc.records = make(map[string]*model.RateLimitRecord)
	svc.maxPerWindow = getEnvInt("RATE_LIMIT_MAX", DefaultRateLimitMax)
	svc.window = getEnvDuration("RATE_LIMIT_WINDOW", DefaultRateLimitWindow)
	svc.sweepInterval = getEnvDuration("RATE_LIMIT_SWEEP_INTERVAL", 0)
	svc.now = time.Now
	return svc.DefaultService.Configure(ctx)
}

func (svc *RateLimitService) Start() error {
	svc.closed = make(chan struct{})
	if svc.sweepInterval > 0 {
		go svc.startSweepJob()
	}

	log.WithFields(log.Fields{
		"max_per_window": svc.maxPerWindow,
		"window":         svc.window,
		"sweep_interval": svc.sweepInterval,
	}).Info("In-memory rate limiter ready")
	return nil
}

func (svc *RateLimitService) Shutdown() {
	if svc.closed != nil {
		close(svc.closed)
	}
}

// CheckAndConsume applies the fixed window for identifier. A denied call
// leaves the record untouched, so rejected attempts do not use quota.
func (svc *RateLimitService) CheckAndConsume(_ context.Context, identifier string) (*dto.RateLimitDecision, error) {
	now := svc.now().UnixMilli()
	windowMs := svc.window.Milliseconds()

	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	record, exists := svc.records[identifier]
	if !exists || now-record.WindowStart > windowMs {
		svc.records[identifier] = &model.RateLimitRecord{
			Identifier:  identifier,
			Count:       1,
			WindowStart: now,
		}
		rateLimitIdentifiers.Set(float64(len(svc.records)))
		return &dto.RateLimitDecision{Allowed: true}, nil
	}

	if record.Count >= svc.maxPerWindow {
		return &dto.RateLimitDecision{
			Allowed:     false,
			RemainingMs: windowMs - (now - record.WindowStart),
		}, nil
	}

	record.Count++
	return &dto.RateLimitDecision{Allowed: true}, nil
}

// Record returns a copy of the current window for identifier.
func (svc *RateLimitService) Record(identifier string) (model.RateLimitRecord, bool) {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	record, exists := svc.records[identifier]
	if !exists {
		return model.RateLimitRecord{}, false
	}
	return *record, true
}

// Len is the number of identifiers currently tracked.
func (svc *RateLimitService) Len() int {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()
	return len(svc.records)
}

// Sweep drops records whose window has already expired and returns how many
// were removed. An expired record would be reset on its next use anyway.
func (svc *RateLimitService) Sweep() int {
	now := svc.now().UnixMilli()
	windowMs := svc.window.Milliseconds()

	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	removed := 0
	for identifier, record := range svc.records {
		if now-record.WindowStart > windowMs {
			delete(svc.records, identifier)
			removed++
		}
	}
	rateLimitIdentifiers.Set(float64(len(svc.records)))
	return removed
}

func (svc *RateLimitService) startSweepJob() {
	ticker := time.NewTicker(svc.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			removed := svc.Sweep()
			log.WithField("removed", removed).Debug("Rate limit sweep completed")
		case <-svc.closed:
			return
		}
	}
}
