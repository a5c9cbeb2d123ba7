package scheduler

import (
	"testing"
	"time"

	"github.com/praxishq/praxis-cli/internal/constants"
	"github.com/praxishq/praxis-cli/internal/models"
)

func practice(id, title, start, end string) models.Practice {
	return models.Practice{
		ID:        id,
		GroupID:   "g1",
		Title:     title,
		StartDate: start,
		EndDate:   end,
	}
}

// pickFirst always selects the first active practice.
func pickFirst(n int) int { return 0 }

func defaultPrefs() models.ReminderPrefs {
	return models.DefaultReminderPrefs("u1")
}

func TestComputeScheduleEmptyInput(t *testing.T) {
	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)

	got, err := ComputeSchedule(nil, defaultPrefs(), now, pickFirst)
	if err != nil {
		t.Fatalf("ComputeSchedule() returned unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ComputeSchedule() returned %d reminders for empty input, want 0", len(got))
	}
}

func TestComputeScheduleOnePerDay(t *testing.T) {
	// Eleven inclusive days at one reminder per day.
	now := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
	items := []models.Practice{practice("p1", "Reflection", "2026-01-05", "2026-01-15")}

	got, err := ComputeSchedule(items, defaultPrefs(), now, pickFirst)
	if err != nil {
		t.Fatalf("ComputeSchedule() returned unexpected error: %v", err)
	}

	if len(got) != 11 {
		t.Fatalf("ComputeSchedule() returned %d reminders, want 11", len(got))
	}
	for i, r := range got {
		if r.PracticeID != "p1" {
			t.Errorf("reminder %d practice = %s, want p1", i, r.PracticeID)
		}
		if hm := r.FireAt.Format(constants.TimeFormat); hm != constants.DefaultReminderTime {
			t.Errorf("reminder %d fires at %s, want %s", i, hm, constants.DefaultReminderTime)
		}
	}
	if first := got[0].FireAt.Format(constants.DateFormat); first != "2026-01-05" {
		t.Errorf("first reminder on %s, want 2026-01-05", first)
	}
	if last := got[len(got)-1].FireAt.Format(constants.DateFormat); last != "2026-01-15" {
		t.Errorf("last reminder on %s, want 2026-01-15", last)
	}
}

func TestComputeScheduleDailyCap(t *testing.T) {
	now := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	items := []models.Practice{
		practice("p1", "Reflection", "2026-01-05", "2026-01-07"),
		practice("p2", "Gratitude", "2026-01-05", "2026-01-07"),
		practice("p3", "Listening", "2026-01-05", "2026-01-07"),
	}
	prefs := models.ReminderPrefs{
		UserID:          "u1",
		FrequencyPerDay: 2,
		Times:           []string{"09:00", "18:00"},
		Enabled:         true,
	}

	got, err := ComputeSchedule(items, prefs, now, pickFirst)
	if err != nil {
		t.Fatalf("ComputeSchedule() returned unexpected error: %v", err)
	}

	// The cap binds per calendar day regardless of how many practices are
	// active: 3 days x 2 slots, never 3 days x 2 slots x 3 practices.
	if len(got) != 6 {
		t.Fatalf("ComputeSchedule() returned %d reminders, want 6", len(got))
	}

	perDay := make(map[string]int)
	for _, r := range got {
		perDay[r.FireAt.Format(constants.DateFormat)]++
	}
	for day, n := range perDay {
		if n > prefs.FrequencyPerDay {
			t.Errorf("day %s has %d reminders, cap is %d", day, n, prefs.FrequencyPerDay)
		}
	}
}

func TestComputeScheduleSkipsPast(t *testing.T) {
	// 14:30 today: the 13:00 slot has already passed.
	now := time.Date(2026, 1, 5, 14, 30, 0, 0, time.UTC)
	items := []models.Practice{practice("p1", "Reflection", "2026-01-01", "2026-01-06")}

	got, err := ComputeSchedule(items, defaultPrefs(), now, pickFirst)
	if err != nil {
		t.Fatalf("ComputeSchedule() returned unexpected error: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("ComputeSchedule() returned %d reminders, want 1", len(got))
	}
	if day := got[0].FireAt.Format(constants.DateFormat); day != "2026-01-06" {
		t.Errorf("reminder on %s, want 2026-01-06", day)
	}
	for _, r := range got {
		if r.FireAt.Before(now) {
			t.Errorf("reminder at %v is in the past (now %v)", r.FireAt, now)
		}
	}
}

func TestComputeScheduleExpiredPractices(t *testing.T) {
	now := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	items := []models.Practice{practice("p1", "Reflection", "2026-01-05", "2026-01-15")}

	got, err := ComputeSchedule(items, defaultPrefs(), now, pickFirst)
	if err != nil {
		t.Fatalf("ComputeSchedule() returned unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ComputeSchedule() returned %d reminders for an ended practice, want 0", len(got))
	}
}

func TestComputeScheduleSelectorIsUsed(t *testing.T) {
	now := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	items := []models.Practice{
		practice("p1", "Reflection", "2026-01-05", "2026-01-05"),
		practice("p2", "Gratitude", "2026-01-05", "2026-01-05"),
	}

	pickLast := func(n int) int { return n - 1 }
	got, err := ComputeSchedule(items, defaultPrefs(), now, pickLast)
	if err != nil {
		t.Fatalf("ComputeSchedule() returned unexpected error: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("ComputeSchedule() returned %d reminders, want 1", len(got))
	}
	if got[0].PracticeID != "p2" {
		t.Errorf("selector ignored: picked %s, want p2", got[0].PracticeID)
	}
}

func TestComputeScheduleGapDays(t *testing.T) {
	// Two disjoint ranges leave a gap; slots in the gap emit nothing.
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []models.Practice{
		practice("p1", "Reflection", "2026-01-01", "2026-01-02"),
		practice("p2", "Gratitude", "2026-01-05", "2026-01-06"),
	}

	got, err := ComputeSchedule(items, defaultPrefs(), now, pickFirst)
	if err != nil {
		t.Fatalf("ComputeSchedule() returned unexpected error: %v", err)
	}

	if len(got) != 4 {
		t.Fatalf("ComputeSchedule() returned %d reminders, want 4", len(got))
	}
	for _, r := range got {
		day := r.FireAt.Format(constants.DateFormat)
		if day == "2026-01-03" || day == "2026-01-04" {
			t.Errorf("reminder scheduled on gap day %s", day)
		}
	}
}

func TestComputeScheduleMessages(t *testing.T) {
	now := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	items := []models.Practice{practice("p1", "Reflection", "2026-01-05", "2026-01-07")}

	got, err := ComputeSchedule(items, defaultPrefs(), now, pickFirst)
	if err != nil {
		t.Fatalf("ComputeSchedule() returned unexpected error: %v", err)
	}

	for _, r := range got {
		if r.Message == "" {
			t.Error("reminder has an empty message")
		}
		if r.Title != "Reflection" {
			t.Errorf("reminder title = %q, want Reflection", r.Title)
		}
	}
}

func TestComputeScheduleClampsFrequency(t *testing.T) {
	now := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	items := []models.Practice{practice("p1", "Reflection", "2026-01-05", "2026-01-05")}
	prefs := models.ReminderPrefs{
		UserID:          "u1",
		FrequencyPerDay: 9,
		Times:           []string{"08:00", "12:00", "16:00"},
		Enabled:         true,
	}

	got, err := ComputeSchedule(items, prefs, now, pickFirst)
	if err != nil {
		t.Fatalf("ComputeSchedule() returned unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("ComputeSchedule() returned %d reminders, want 3 after clamping", len(got))
	}
}

func TestComputeSchedulePadsMissingSlots(t *testing.T) {
	// Two reminders a day with only one configured time: the second slot
	// falls back to the default time.
	now := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	items := []models.Practice{practice("p1", "Reflection", "2026-01-05", "2026-01-05")}
	prefs := models.ReminderPrefs{
		UserID:          "u1",
		FrequencyPerDay: 2,
		Times:           []string{"09:00"},
		Enabled:         true,
	}

	got, err := ComputeSchedule(items, prefs, now, pickFirst)
	if err != nil {
		t.Fatalf("ComputeSchedule() returned unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ComputeSchedule() returned %d reminders, want 2", len(got))
	}
	if hm := got[0].FireAt.Format(constants.TimeFormat); hm != "09:00" {
		t.Errorf("first slot fires at %s, want 09:00", hm)
	}
	if hm := got[1].FireAt.Format(constants.TimeFormat); hm != constants.DefaultReminderTime {
		t.Errorf("second slot fires at %s, want %s", hm, constants.DefaultReminderTime)
	}
}
