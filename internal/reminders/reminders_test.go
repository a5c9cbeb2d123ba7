package reminders

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	apperrors "github.com/praxishq/praxis-cli/internal/errors"
	"github.com/praxishq/praxis-cli/internal/models"
)

type fakeStore struct {
	practices []models.Practice
	prefs     models.ReminderPrefs
	queryErr  error
}

func (f *fakeStore) GetActivePractices(userID, day string) ([]models.Practice, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.practices, nil
}

func (f *fakeStore) GetReminderPrefs(userID string) (models.ReminderPrefs, error) {
	return f.prefs, nil
}

type fakeRegistry struct {
	scheduled  []models.ScheduledReminder
	cancels    int
	failEvery  int // every Nth Schedule call fails, 0 = never
	calls      int
	cancelErr  error
	pruneCalls int
}

func (f *fakeRegistry) Schedule(r models.ScheduledReminder) error {
	f.calls++
	if f.failEvery > 0 && f.calls%f.failEvery == 0 {
		return errors.New("registration failed")
	}
	f.scheduled = append(f.scheduled, r)
	return nil
}

func (f *fakeRegistry) CancelAll() error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancels++
	f.scheduled = nil
	return nil
}

func (f *fakeRegistry) ListScheduled() ([]models.ScheduledReminder, error) {
	return f.scheduled, nil
}

func (f *fakeRegistry) Due(now time.Time, grace time.Duration) ([]models.ScheduledReminder, error) {
	var due []models.ScheduledReminder
	for _, r := range f.scheduled {
		if !r.FireAt.After(now) && now.Sub(r.FireAt) <= grace {
			due = append(due, r)
		}
	}
	return due, nil
}

func (f *fakeRegistry) Prune(now time.Time) error {
	f.pruneCalls++
	var keep []models.ScheduledReminder
	for _, r := range f.scheduled {
		if r.FireAt.After(now) {
			keep = append(keep, r)
		}
	}
	f.scheduled = keep
	return nil
}

type fakePerms struct {
	denied bool
}

func (f *fakePerms) RequestPermission() error {
	if f.denied {
		return fmt.Errorf("%w: agent not running", apperrors.ErrNotPermitted)
	}
	return nil
}

type fakeDeliverer struct {
	delivered []string
	fail      bool
}

func (f *fakeDeliverer) Notify(title, text string) error {
	if f.fail {
		return errors.New("delivery failed")
	}
	f.delivered = append(f.delivered, title)
	return nil
}

func activePractice(id string) models.Practice {
	return models.Practice{
		ID:        id,
		GroupID:   "g1",
		Title:     "Practice " + id,
		StartDate: "2026-01-05",
		EndDate:   "2026-01-07",
	}
}

func testService(store *fakeStore, registry *fakeRegistry, perms *fakePerms) *Service {
	svc := New(store, registry, perms)
	svc.WithPick(func(n int) int { return 0 })
	svc.WithClock(func() time.Time {
		return time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
	})
	return svc
}

func TestRefresh(t *testing.T) {
	store := &fakeStore{
		practices: []models.Practice{activePractice("p1")},
		prefs:     models.DefaultReminderPrefs("u1"),
	}
	registry := &fakeRegistry{}
	svc := testService(store, registry, &fakePerms{})

	n, err := svc.Refresh(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Refresh() returned unexpected error: %v", err)
	}

	// Three days at one reminder per day.
	if n != 3 {
		t.Errorf("Refresh() registered %d reminders, want 3", n)
	}
	if registry.cancels != 1 {
		t.Errorf("Refresh() cancelled %d times, want 1", registry.cancels)
	}
}

func TestRefreshPermissionDenied(t *testing.T) {
	store := &fakeStore{
		practices: []models.Practice{activePractice("p1")},
		prefs:     models.DefaultReminderPrefs("u1"),
	}
	registry := &fakeRegistry{
		scheduled: []models.ScheduledReminder{{ID: "existing"}},
	}
	svc := testService(store, registry, &fakePerms{denied: true})

	_, err := svc.Refresh(context.Background(), "u1")
	if !errors.Is(err, apperrors.ErrNotPermitted) {
		t.Fatalf("Refresh() error = %v, want ErrNotPermitted", err)
	}

	// Denial leaves the existing schedule alone.
	if registry.cancels != 0 {
		t.Errorf("Refresh() cancelled the schedule on a denied permission")
	}
	if len(registry.scheduled) != 1 {
		t.Errorf("existing schedule was modified: %+v", registry.scheduled)
	}
}

func TestRefreshQueryFailureKeepsSchedule(t *testing.T) {
	store := &fakeStore{queryErr: errors.New("connection refused")}
	registry := &fakeRegistry{
		scheduled: []models.ScheduledReminder{{ID: "existing"}},
	}
	svc := testService(store, registry, &fakePerms{})

	_, err := svc.Refresh(context.Background(), "u1")
	if err == nil {
		t.Fatal("Refresh() swallowed the query failure")
	}
	if registry.cancels != 0 {
		t.Errorf("Refresh() cancelled the schedule after a failed query")
	}
	if len(registry.scheduled) != 1 {
		t.Errorf("existing schedule was modified: %+v", registry.scheduled)
	}
}

func TestRefreshSkipsFailedRegistrations(t *testing.T) {
	store := &fakeStore{
		practices: []models.Practice{activePractice("p1")},
		prefs:     models.DefaultReminderPrefs("u1"),
	}
	registry := &fakeRegistry{failEvery: 2}
	svc := testService(store, registry, &fakePerms{})

	n, err := svc.Refresh(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Refresh() returned unexpected error: %v", err)
	}

	// Three computed, every second registration fails.
	if n != 2 {
		t.Errorf("Refresh() registered %d reminders, want 2", n)
	}
}

func TestRefreshDisabledPrefs(t *testing.T) {
	prefs := models.DefaultReminderPrefs("u1")
	prefs.Enabled = false

	store := &fakeStore{
		practices: []models.Practice{activePractice("p1")},
		prefs:     prefs,
	}
	registry := &fakeRegistry{
		scheduled: []models.ScheduledReminder{{ID: "existing"}},
	}
	svc := testService(store, registry, &fakePerms{})

	n, err := svc.Refresh(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Refresh() returned unexpected error: %v", err)
	}
	if n != 0 {
		t.Errorf("Refresh() registered %d reminders with disabled prefs, want 0", n)
	}
	// Disabled prefs still clear the previous schedule.
	if len(registry.scheduled) != 0 {
		t.Errorf("stale schedule survived a disabled refresh: %+v", registry.scheduled)
	}
}

func TestRefreshCancelledContext(t *testing.T) {
	store := &fakeStore{prefs: models.DefaultReminderPrefs("u1")}
	registry := &fakeRegistry{}
	svc := testService(store, registry, &fakePerms{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Refresh(ctx, "u1"); !errors.Is(err, context.Canceled) {
		t.Errorf("Refresh() error = %v, want context.Canceled", err)
	}
}

func TestFire(t *testing.T) {
	now := time.Date(2026, 1, 5, 13, 1, 0, 0, time.UTC)
	registry := &fakeRegistry{
		scheduled: []models.ScheduledReminder{
			{ID: "due", Title: "Reflection", FireAt: now.Add(-time.Minute)},
			{ID: "stale", Title: "Old", FireAt: now.Add(-2 * time.Hour)},
			{ID: "future", Title: "Later", FireAt: now.Add(time.Hour)},
		},
	}
	svc := New(&fakeStore{}, registry, &fakePerms{})
	svc.WithClock(func() time.Time { return now })

	deliverer := &fakeDeliverer{}
	n, err := svc.Fire(deliverer)
	if err != nil {
		t.Fatalf("Fire() returned unexpected error: %v", err)
	}

	if n != 1 {
		t.Errorf("Fire() delivered %d reminders, want 1", n)
	}
	if len(deliverer.delivered) != 1 || deliverer.delivered[0] != "Reflection" {
		t.Errorf("delivered = %v, want [Reflection]", deliverer.delivered)
	}

	// Fired and stale instances are pruned; future ones survive.
	remaining, err := registry.ListScheduled()
	if err != nil {
		t.Fatalf("ListScheduled() returned unexpected error: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != "future" {
		t.Errorf("remaining = %+v, want only future", remaining)
	}
}

func TestFireDeliveryFailure(t *testing.T) {
	now := time.Date(2026, 1, 5, 13, 1, 0, 0, time.UTC)
	registry := &fakeRegistry{
		scheduled: []models.ScheduledReminder{
			{ID: "due", Title: "Reflection", FireAt: now.Add(-time.Minute)},
		},
	}
	svc := New(&fakeStore{}, registry, &fakePerms{})
	svc.WithClock(func() time.Time { return now })

	n, err := svc.Fire(&fakeDeliverer{fail: true})
	if err != nil {
		t.Fatalf("Fire() returned unexpected error: %v", err)
	}
	if n != 0 {
		t.Errorf("Fire() reported %d deliveries after failures, want 0", n)
	}
}
