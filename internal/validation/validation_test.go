package validation

import (
	"testing"

	"github.com/praxishq/praxis-cli/internal/models"
)

func basePractice() models.Practice {
	return models.Practice{
		ID:        "p1",
		GroupID:   "g1",
		Title:     "Daily reflection",
		StartDate: "2026-01-01",
		EndDate:   "2026-01-31",
	}
}

func hasConflictType(result ValidationResult, ct ConflictType) bool {
	for _, c := range result.Conflicts {
		if c.Type == ct {
			return true
		}
	}
	return false
}

func TestValidateOverride(t *testing.T) {
	v := New()

	tests := []struct {
		name         string
		numberOfDays int
		start, end   string
		wantConflict ConflictType
		wantOK       bool
	}{
		{
			name:  "within range",
			start: "2026-01-05", end: "2026-01-15",
			wantOK: true,
		},
		{
			name:  "full range",
			start: "2026-01-01", end: "2026-01-31",
			wantOK: true,
		},
		{
			name:  "starts before the practice",
			start: "2025-12-30", end: "2026-01-10",
			wantConflict: ConflictOverrideOutOfRange,
		},
		{
			name:  "ends after the practice",
			start: "2026-01-20", end: "2026-02-05",
			wantConflict: ConflictOverrideOutOfRange,
		},
		{
			name:  "inverted dates",
			start: "2026-01-15", end: "2026-01-05",
			wantConflict: ConflictInvalidDateTime,
		},
		{
			name:  "malformed date",
			start: "Jan 5", end: "2026-01-15",
			wantConflict: ConflictInvalidDateTime,
		},
		{
			name:         "exact day count",
			numberOfDays: 11,
			start:        "2026-01-05", end: "2026-01-15",
			wantOK: true,
		},
		{
			name:         "too short for day count",
			numberOfDays: 11,
			start:        "2026-01-05", end: "2026-01-10",
			wantConflict: ConflictSpanMismatch,
		},
		{
			name:         "too long for day count",
			numberOfDays: 11,
			start:        "2026-01-05", end: "2026-01-20",
			wantConflict: ConflictSpanMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := basePractice()
			p.NumberOfDays = tt.numberOfDays

			o := models.PracticeOverride{
				ID:         "o1",
				PracticeID: p.ID,
				UserID:     "u1",
				StartDate:  tt.start,
				EndDate:    tt.end,
			}

			result := v.ValidateOverride(p, o)
			if tt.wantOK {
				if result.HasConflicts() {
					t.Errorf("ValidateOverride() reported conflicts: %s", result.FormatReport())
				}
				return
			}
			if !hasConflictType(result, tt.wantConflict) {
				t.Errorf("ValidateOverride() = %s, want conflict %s", result.FormatReport(), tt.wantConflict)
			}
		})
	}
}

func TestValidatePractices(t *testing.T) {
	v := New()

	t.Run("duplicate titles", func(t *testing.T) {
		a := basePractice()
		b := basePractice()
		b.ID = "p2"

		result := v.ValidatePractices([]models.Practice{a, b})
		if !hasConflictType(result, ConflictDuplicateTitle) {
			t.Errorf("ValidatePractices() = %s, want duplicate title conflict", result.FormatReport())
		}
	})

	t.Run("range shorter than day requirement", func(t *testing.T) {
		p := basePractice()
		p.NumberOfDays = 60

		result := v.ValidatePractices([]models.Practice{p})
		if !hasConflictType(result, ConflictSpanMismatch) {
			t.Errorf("ValidatePractices() = %s, want span mismatch", result.FormatReport())
		}
	})

	t.Run("clean set", func(t *testing.T) {
		a := basePractice()
		b := basePractice()
		b.ID = "p2"
		b.Title = "Evening gratitude"

		result := v.ValidatePractices([]models.Practice{a, b})
		if result.HasConflicts() {
			t.Errorf("ValidatePractices() reported conflicts: %s", result.FormatReport())
		}
	})
}

func TestValidatePrefs(t *testing.T) {
	v := New()

	t.Run("too many times", func(t *testing.T) {
		prefs := models.ReminderPrefs{
			UserID:          "u1",
			FrequencyPerDay: 3,
			Times:           []string{"08:00", "12:00", "16:00", "20:00"},
		}
		result := v.ValidatePrefs(prefs)
		if !hasConflictType(result, ConflictTooManyReminders) {
			t.Errorf("ValidatePrefs() = %s, want too many reminders", result.FormatReport())
		}
	})

	t.Run("bad time format", func(t *testing.T) {
		prefs := models.ReminderPrefs{
			UserID:          "u1",
			FrequencyPerDay: 1,
			Times:           []string{"25:00"},
		}
		result := v.ValidatePrefs(prefs)
		if !hasConflictType(result, ConflictInvalidReminderTime) {
			t.Errorf("ValidatePrefs() = %s, want invalid reminder time", result.FormatReport())
		}
	})

	t.Run("valid prefs", func(t *testing.T) {
		prefs := models.DefaultReminderPrefs("u1")
		result := v.ValidatePrefs(prefs)
		if result.HasConflicts() {
			t.Errorf("ValidatePrefs() reported conflicts: %s", result.FormatReport())
		}
	})
}
