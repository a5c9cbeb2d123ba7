package scheduler

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/praxishq/praxis-cli/internal/constants"
	"github.com/praxishq/praxis-cli/internal/models"
	"github.com/praxishq/praxis-cli/internal/utils"
)

// PickFunc selects an index in [0, n). It is injected so callers can make
// schedules deterministic; the default draws from math/rand.
type PickFunc func(n int) int

var messageTemplates = []string{
	"Time to practice: %s",
	"A moment for %s?",
	"Don't forget %s today",
	"%s is waiting for you",
	"Keep your streak going with %s",
}

type Scheduler struct {
	pick PickFunc
	rng  *rand.Rand
}

func New() *Scheduler {
	return NewWithPick(nil, time.Now().UnixNano())
}

// NewWithPick builds a scheduler with an explicit selector and message seed.
// A nil pick falls back to the seeded random source.
func NewWithPick(pick PickFunc, seed int64) *Scheduler {
	s := &Scheduler{rng: rand.New(rand.NewSource(seed))}
	if pick == nil {
		pick = s.rng.Intn
	}
	s.pick = pick
	return s
}

// ComputeSchedule produces one reminder instance per day and slot, choosing a
// single practice among those active on that day. Practices are expected to
// carry their effective date ranges, with any personal overrides already
// applied. At most prefs.FrequencyPerDay instances land on any calendar day,
// and instances earlier than now are discarded.
func ComputeSchedule(practices []models.Practice, prefs models.ReminderPrefs, now time.Time, pick PickFunc) ([]models.ScheduledReminder, error) {
	s := NewWithPick(pick, now.UnixNano())
	return s.Compute(practices, prefs, now)
}

func (s *Scheduler) Compute(practices []models.Practice, prefs models.ReminderPrefs, now time.Time) ([]models.ScheduledReminder, error) {
	if len(practices) == 0 {
		return nil, nil
	}

	prefs.Clamp()
	slots := prefs.Slots()
	loc := now.Location()
	today := now.Format(constants.DateFormat)

	windowStart, windowEnd, ok := window(practices, today)
	if !ok {
		return nil, nil
	}

	days, err := utils.DateRange(windowStart, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule window: %w", err)
	}

	var reminders []models.ScheduledReminder
	for _, day := range days {
		for _, slot := range slots {
			active := activeOn(practices, day)
			if len(active) == 0 {
				continue
			}

			fireAt, err := utils.CombineDateAndTime(day, slot, loc)
			if err != nil {
				return nil, fmt.Errorf("invalid slot %q: %w", slot, err)
			}
			if fireAt.Before(now) {
				continue
			}

			practice := active[s.pick(len(active))]
			reminders = append(reminders, models.ScheduledReminder{
				ID:         uuid.NewString(),
				PracticeID: practice.ID,
				Title:      practice.Title,
				Message:    s.message(practice.Title),
				FireAt:     fireAt,
			})
		}
	}

	return reminders, nil
}

func (s *Scheduler) message(title string) string {
	return fmt.Sprintf(messageTemplates[s.rng.Intn(len(messageTemplates))], title)
}

// window returns the inclusive scheduling range: from the earliest effective
// start (but never before today) to the latest effective end. ok is false
// when every practice has already ended.
func window(practices []models.Practice, today string) (start, end string, ok bool) {
	for _, p := range practices {
		if p.EndDate < today {
			continue
		}
		if !ok {
			start, end = p.StartDate, p.EndDate
			ok = true
			continue
		}
		if p.StartDate < start {
			start = p.StartDate
		}
		if p.EndDate > end {
			end = p.EndDate
		}
	}
	if !ok {
		return "", "", false
	}
	return utils.MaxDate(start, today), end, true
}

func activeOn(practices []models.Practice, day string) []models.Practice {
	var active []models.Practice
	for _, p := range practices {
		if p.ActiveOn(day, nil) {
			active = append(active, p)
		}
	}
	return active
}
