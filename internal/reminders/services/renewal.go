package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// RenewCompleted re-opens completed reminders that still have renewals left,
// moving each one forward by its renew period. It returns how many were renewed.
func (s *Service) RenewCompleted(ctx context.Context) (int, error) {
	reminders, err := s.store.CompletedRenewing(ctx)
	if err != nil {
		return 0, err
	}

	renewed := 0
	for i := range reminders {
		reminder := &reminders[i]
		if !reminder.IsRenewing() {
			continue
		}

		previousCount := reminder.RenewCurrentCount
		reminder.ReminderDate = reminder.ReminderDate.AddDate(0, 0, reminder.RenewPeriodDays)
		reminder.IsComplete = false
		reminder.CompletedAt = nil
		reminder.RenewCurrentCount++
		reminder.UpdatedAt = s.now()

		ok, err := s.store.RenewReminder(ctx, reminder, previousCount)
		if err != nil {
			slog.ErrorContext(ctx, "Failed to renew reminder", "reminder", reminder.Guid, "error", err)
			continue
		}
		if !ok {
			// changed since it was read: reopened, canceled, renewed or deleted
			slog.DebugContext(ctx, "Reminder changed before renewal, skipping", "reminder", reminder.Guid)
			continue
		}
		renewed++
	}
	return renewed, nil
}

// Renewer runs RenewCompleted on a cron schedule
type Renewer struct {
	service  *Service
	schedule string
	timeout  time.Duration

	mu      sync.Mutex
	cron    *cron.Cron
	running bool
}

// NewRenewer creates a renewer; schedule is a cron spec with a seconds field
func NewRenewer(service *Service, schedule string) *Renewer {
	return &Renewer{service: service, schedule: schedule, timeout: 5 * time.Minute}
}

// Start schedules the renewal job. Calling Start twice is an error.
func (r *Renewer) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return fmt.Errorf("reminder renewer is already running")
	}

	c := cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddFunc(r.schedule, func() { r.run(ctx) }); err != nil {
		return fmt.Errorf("invalid reminder renewal schedule '%s': %w", r.schedule, err)
	}
	c.Start()

	r.cron = c
	r.running = true
	slog.Info("Reminder renewal scheduled", "schedule", r.schedule)
	return nil
}

func (r *Renewer) run(parent context.Context) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), r.timeout)
	defer cancel()

	start := time.Now()
	renewed, err := r.service.RenewCompleted(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Reminder renewal failed", "error", err)
		return
	}
	slog.InfoContext(ctx, "Reminder renewal finished", "renewed", renewed, "duration", time.Since(start))
}

// Stop waits for a running job to finish and stops the schedule
func (r *Renewer) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running {
		return
	}
	<-r.cron.Stop().Done()
	r.running = false
}
