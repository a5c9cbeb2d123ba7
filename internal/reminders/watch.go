package reminders

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/praxishq/praxis-cli/internal/constants"
	"github.com/praxishq/praxis-cli/internal/logger"
)

// Deliverer pushes a single notification to the platform.
type Deliverer interface {
	Notify(title, text string) error
}

// Fire delivers every due instance and prunes the fired and stale ones.
// It returns the number of notifications delivered.
func (s *Service) Fire(deliver Deliverer) (int, error) {
	now := s.now()

	due, err := s.registry.Due(now, constants.DeliveryGracePeriod)
	if err != nil {
		return 0, fmt.Errorf("failed to read due reminders: %w", err)
	}

	delivered := 0
	for _, reminder := range due {
		if err := deliver.Notify(reminder.Title, reminder.Message); err != nil {
			logger.Warn("failed to deliver reminder", "practice", reminder.Title, "err", err)
			continue
		}
		delivered++
	}

	if err := s.registry.Prune(now); err != nil {
		return delivered, fmt.Errorf("failed to prune reminders: %w", err)
	}

	return delivered, nil
}

// Watch runs a cron loop delivering due reminders until the context is
// cancelled.
func (s *Service) Watch(ctx context.Context, deliver Deliverer) error {
	c := cron.New()

	_, err := c.AddFunc(constants.WatchInterval, func() {
		if n, err := s.Fire(deliver); err != nil {
			logger.Error("reminder delivery pass failed", "err", err)
		} else if n > 0 {
			logger.Info("delivered reminders", "count", n)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to start watch loop: %w", err)
	}

	c.Start()
	<-ctx.Done()

	stopCtx := c.Stop()
	<-stopCtx.Done()

	return ctx.Err()
}
