// Package scheduler hosts the background jobs of the service.
package scheduler

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"

	"github.com/topraklif/deals-api/infrastructure/repository"
	"github.com/topraklif/deals-api/internal/config"
	"github.com/topraklif/deals-api/internal/domain"
	"github.com/topraklif/deals-api/internal/usecases/notifying"
	"github.com/topraklif/deals-api/pkg/log"
)

// DealPicker selects the deal a synthetic notification advertises.
type DealPicker interface {
	PickDeal() (domain.Deal, bool)
}

// RandomDealPicker picks uniformly from the current listing set.
type RandomDealPicker struct {
	repo repository.DealRepository
	rng  *rand.Rand
}

func NewRandomDealPicker(repo repository.DealRepository) *RandomDealPicker {
	return &RandomDealPicker{
		repo: repo,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (p *RandomDealPicker) PickDeal() (domain.Deal, bool) {
	deals := p.repo.List()
	if len(deals) == 0 {
		return domain.Deal{}, false
	}
	return deals[p.rng.Intn(len(deals))], true
}

// SyntheticFeedService periodically pushes a new-deal notification so the
// feed stays lively without a real ingestion pipeline behind it.
type SyntheticFeedService struct {
	scheduler     *gocron.Scheduler
	interval      time.Duration
	enabled       bool
	picker        DealPicker
	notifier      notifying.Notifier
	mu            sync.Mutex
	lastEmittedAt time.Time
}

func NewSyntheticFeedService(
	picker DealPicker,
	notifier notifying.Notifier,
	cfg *config.Config,
) *SyntheticFeedService {
	return &SyntheticFeedService{
		scheduler: gocron.NewScheduler(time.Local),
		interval:  cfg.SyntheticFeed.Interval,
		enabled:   cfg.SyntheticFeed.Enabled,
		picker:    picker,
		notifier:  notifier,
	}
}

// Start schedules the emitter and stops it when the context ends.
func (s *SyntheticFeedService) Start(ctx context.Context) error {
	if !s.enabled {
		log.L.Info("synthetic feed disabled by configuration")
		return nil
	}

	log.L.WithField("interval", s.interval.String()).Info("starting synthetic feed")

	_, err := s.scheduler.Every(s.interval).Do(func() {
		s.EmitOnce()
	})
	if err != nil {
		return errors.Wrap(err, "schedule synthetic feed job")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("stopping synthetic feed")
		s.scheduler.Stop()
	}()

	return nil
}

// EmitOnce is the job body, exported so it can be driven directly in
// tests without the scheduler.
func (s *SyntheticFeedService) EmitOnce() {
	deal, ok := s.picker.PickDeal()
	if !ok {
		log.L.Debug("synthetic feed has no deals to pick from")
		return
	}

	notification := s.notifier.Notify(domain.NotificationNewDeal, deal)

	s.mu.Lock()
	s.lastEmittedAt = notification.Timestamp
	s.mu.Unlock()

	log.L.WithFields(log.Fields{
		"notification_id": notification.ID,
		"deal_id":         deal.ID,
	}).Debug("synthetic notification emitted")
}

// LastEmittedAt reports when the feed last produced a notification.
func (s *SyntheticFeedService) LastEmittedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastEmittedAt
}
