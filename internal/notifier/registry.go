package notifier

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/praxishq/praxis-cli/internal/models"
)

// Registry is the local book of pending reminder instances, persisted as a
// JSON file next to the database. Registered instances are ephemeral: a
// refresh cancels all of them and writes a fresh set.
type Registry struct {
	path string
}

func NewRegistry(path string) *Registry {
	return &Registry{path: path}
}

func (r *Registry) load() ([]models.ScheduledReminder, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read reminder registry: %w", err)
	}

	var reminders []models.ScheduledReminder
	if err := json.Unmarshal(data, &reminders); err != nil {
		return nil, fmt.Errorf("reminder registry is corrupt: %w", err)
	}
	return reminders, nil
}

func (r *Registry) save(reminders []models.ScheduledReminder) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0700); err != nil {
		return fmt.Errorf("failed to create registry directory: %w", err)
	}

	data, err := json.MarshalIndent(reminders, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal reminder registry: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write reminder registry: %w", err)
	}
	return nil
}

// Schedule registers a single reminder instance.
func (r *Registry) Schedule(reminder models.ScheduledReminder) error {
	reminders, err := r.load()
	if err != nil {
		return err
	}
	return r.save(append(reminders, reminder))
}

// CancelAll drops every registered instance.
func (r *Registry) CancelAll() error {
	if _, err := os.Stat(r.path); os.IsNotExist(err) {
		return nil
	}
	return r.save(nil)
}

// ListScheduled returns pending instances ordered by fire time.
func (r *Registry) ListScheduled() ([]models.ScheduledReminder, error) {
	reminders, err := r.load()
	if err != nil {
		return nil, err
	}
	sort.Slice(reminders, func(i, j int) bool {
		return reminders[i].FireAt.Before(reminders[j].FireAt)
	})
	return reminders, nil
}

// Due returns instances whose fire time has arrived but is no older than the
// grace period. Older instances are stale and eligible for pruning.
func (r *Registry) Due(now time.Time, grace time.Duration) ([]models.ScheduledReminder, error) {
	reminders, err := r.load()
	if err != nil {
		return nil, err
	}

	var due []models.ScheduledReminder
	for _, reminder := range reminders {
		if reminder.FireAt.After(now) {
			continue
		}
		if now.Sub(reminder.FireAt) > grace {
			continue
		}
		due = append(due, reminder)
	}
	sort.Slice(due, func(i, j int) bool {
		return due[i].FireAt.Before(due[j].FireAt)
	})
	return due, nil
}

// Prune removes delivered or expired instances: everything fired before now.
func (r *Registry) Prune(now time.Time) error {
	reminders, err := r.load()
	if err != nil {
		return err
	}

	var keep []models.ScheduledReminder
	for _, reminder := range reminders {
		if reminder.FireAt.After(now) {
			keep = append(keep, reminder)
		}
	}
	if len(keep) == len(reminders) {
		return nil
	}
	return r.save(keep)
}
