package reminders

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/praxishq/praxis-cli/internal/errors"
	"github.com/praxishq/praxis-cli/internal/logger"
	"github.com/praxishq/praxis-cli/internal/models"
	"github.com/praxishq/praxis-cli/internal/scheduler"
)

// Store is the slice of the storage provider the reminder service needs.
type Store interface {
	GetActivePractices(userID, day string) ([]models.Practice, error)
	GetReminderPrefs(userID string) (models.ReminderPrefs, error)
}

// Registry registers and cancels local reminder instances.
type Registry interface {
	Schedule(reminder models.ScheduledReminder) error
	CancelAll() error
	ListScheduled() ([]models.ScheduledReminder, error)
	Due(now time.Time, grace time.Duration) ([]models.ScheduledReminder, error)
	Prune(now time.Time) error
}

// Permissioner checks that the notification platform will accept deliveries.
type Permissioner interface {
	RequestPermission() error
}

type Service struct {
	store    Store
	registry Registry
	perms    Permissioner
	pick     scheduler.PickFunc
	now      func() time.Time

	permissionLogged bool
}

func New(store Store, registry Registry, perms Permissioner) *Service {
	return &Service{
		store:    store,
		registry: registry,
		perms:    perms,
		now:      time.Now,
	}
}

// WithPick overrides the practice selector used when computing schedules.
func (s *Service) WithPick(pick scheduler.PickFunc) *Service {
	s.pick = pick
	return s
}

// WithClock overrides the time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Refresh recomputes the user's reminder schedule and replaces the registered
// set. A denied platform permission is non-fatal: it is logged once and
// surfaced as ErrNotPermitted with nothing cancelled or scheduled. A failure
// while reading practices also leaves the existing schedule untouched. Once
// the new schedule is computed, all prior instances are cancelled and the new
// ones registered one by one; individual registration failures are logged and
// skipped.
func (s *Service) Refresh(ctx context.Context, userID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if err := s.perms.RequestPermission(); err != nil {
		if errors.Is(err, apperrors.ErrNotPermitted) {
			if !s.permissionLogged {
				logger.Warn("notification permission denied, reminders disabled", "err", err)
				s.permissionLogged = true
			}
			return 0, err
		}
		return 0, err
	}
	s.permissionLogged = false

	now := s.now()
	today := now.Format("2006-01-02")

	practices, err := s.store.GetActivePractices(userID, today)
	if err != nil {
		return 0, fmt.Errorf("failed to load active practices: %w", err)
	}

	prefs, err := s.store.GetReminderPrefs(userID)
	if err != nil {
		return 0, fmt.Errorf("failed to load reminder prefs: %w", err)
	}

	var schedule []models.ScheduledReminder
	if prefs.Enabled {
		schedule, err = scheduler.ComputeSchedule(practices, prefs, now, s.pick)
		if err != nil {
			return 0, err
		}
	}

	if err := s.registry.CancelAll(); err != nil {
		return 0, fmt.Errorf("failed to cancel existing reminders: %w", err)
	}

	registered := 0
	for _, reminder := range schedule {
		if err := s.registry.Schedule(reminder); err != nil {
			logger.Warn("failed to register reminder, skipping",
				"practice", reminder.Title, "fire_at", reminder.FireAt, "err", err)
			continue
		}
		registered++
	}

	logger.Info("reminder schedule refreshed", "registered", registered, "computed", len(schedule))
	return registered, nil
}

// ListScheduled returns the pending instances, soonest first.
func (s *Service) ListScheduled() ([]models.ScheduledReminder, error) {
	return s.registry.ListScheduled()
}
