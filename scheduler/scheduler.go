// Package scheduler runs the poll loop: check every property, notify on
// newly available rooms, sleep, repeat until interrupted.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"ryokan_check/config"
	"ryokan_check/models"
	"ryokan_check/notify"
	"ryokan_check/properties"
	"ryokan_check/scraper"
	"ryokan_check/state"
)

type Scheduler struct {
	cfg      *config.Config
	orch     *scraper.Orchestrator
	states   map[models.Property]*state.Store
	notifier notify.Notifier

	cron     *cron.Cron
	stopCh   chan struct{}
	stopOnce sync.Once
	cycles   int
}

func New(cfg *config.Config, orch *scraper.Orchestrator, states map[models.Property]*state.Store, notifier notify.Notifier) *Scheduler {
	return &Scheduler{
		cfg:      cfg,
		orch:     orch,
		states:   states,
		notifier: notifier,
		stopCh:   make(chan struct{}),
	}
}

// Run blocks until the context is cancelled or Stop is called. Each state
// save is durable per room, so interruption mid-cycle leaves nothing
// inconsistent.
func (s *Scheduler) Run(ctx context.Context) error {
	s.logStartup()

	for _, warning := range s.cfg.GuestWarnings() {
		log.Printf("Warning: %s", warning)
	}

	if s.cfg.Cron != "" {
		return s.runCron(ctx)
	}

	for {
		s.runCycle(ctx)

		log.Printf("Next check in %s...", s.cfg.Interval)
		select {
		case <-time.After(s.cfg.Interval):
		case <-ctx.Done():
			log.Println("Shutting down...")
			return nil
		case <-s.stopCh:
			return nil
		}
	}
}

func (s *Scheduler) runCron(ctx context.Context) error {
	log.Printf("Scheduling checks with cron: %s", s.cfg.Cron)

	s.cron = cron.New()
	if _, err := s.cron.AddFunc(s.cfg.Cron, func() {
		s.runCycle(ctx)
	}); err != nil {
		return fmt.Errorf("invalid cron expression: %w", err)
	}
	s.cron.Start()

	select {
	case <-ctx.Done():
	case <-s.stopCh:
	}
	s.cron.Stop()
	log.Println("Shutting down...")
	return nil
}

func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
}

// RunOnce performs a single check cycle without sending notifications.
func (s *Scheduler) RunOnce(ctx context.Context) []*models.CheckResult {
	results := s.orch.RunAll(ctx)
	for _, result := range results {
		s.report(result)
	}
	return results
}

func (s *Scheduler) runCycle(ctx context.Context) {
	s.cycles++
	log.Printf("Check #%d", s.cycles)

	for _, result := range s.orch.RunAll(ctx) {
		s.report(result)
		s.notifyAvailable(ctx, result)
	}
}

func (s *Scheduler) logStartup() {
	log.Printf("Starting availability checker for %s (%d night(s), %d guest(s))",
		s.cfg.CheckInDate.Format("2006-01-02"), s.cfg.Nights, s.cfg.Guests)

	props := make([]string, len(s.cfg.Properties))
	for i, p := range s.cfg.Properties {
		props[i] = string(p)
	}
	log.Printf("Properties: %v", props)

	if s.notifier != nil {
		log.Println("Notifications enabled")
	} else {
		log.Println("No notification method configured - will only log to console")
	}
}

func (s *Scheduler) report(result *models.CheckResult) {
	log.Printf("%s", result.Property.DisplayName())

	if result.Err != "" {
		log.Printf("  Error: %s", result.Err)
		return
	}

	available := result.AvailableRooms()
	if len(available) == 0 {
		log.Println("  No rooms available")
		return
	}

	log.Printf("  Found %d available room(s)!", len(available))
	for _, room := range available {
		badge := ""
		if room.Room.HasPrivateOnsen() {
			badge = " (Private Onsen!)"
		}
		log.Printf("  - %s%s", room.Room.DisplayName(), badge)
		if room.PricePerPerson > 0 {
			log.Printf("    Price: %d/person", room.PricePerPerson)
		}
		if room.SpotsLeft > 0 {
			log.Printf("    Spots left: %d", room.SpotsLeft)
		}
	}
}

// notifyAvailable sends one alert per newly available room. Delivery
// failures leave the state untouched so the next cycle retries.
func (s *Scheduler) notifyAvailable(ctx context.Context, result *models.CheckResult) {
	store := s.states[result.Property]
	prop, ok := properties.Get(result.Property)
	if store == nil || !ok {
		return
	}

	for _, room := range result.AvailableRooms() {
		if !store.ShouldNotify(room) {
			log.Printf("    %s: already notified within cooldown", room.Room.DisplayName())
			continue
		}
		if s.notifier == nil {
			continue
		}

		sent := s.notifier.Send(ctx,
			notify.Subject(room),
			notify.Body(room, prop),
			prop.BookingURL(room.Room, room.CheckIn),
			notify.UrgencyHigh,
		)
		if !sent {
			log.Printf("    %s: failed to send notification, will retry next cycle", room.Room.DisplayName())
			continue
		}
		if err := store.MarkNotified(room); err != nil {
			log.Printf("    %s: failed to persist notification state: %v", room.Room.DisplayName(), err)
		}
		log.Printf("    %s: notification sent", room.Room.DisplayName())
	}
}
