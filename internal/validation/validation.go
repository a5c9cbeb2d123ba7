package validation

import (
	"fmt"
	"time"

	"github.com/praxishq/praxis-cli/internal/constants"
	"github.com/praxishq/praxis-cli/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictInvalidDateTime     ConflictType = "invalid_datetime"
	ConflictOverrideOutOfRange  ConflictType = "override_out_of_range"
	ConflictSpanMismatch        ConflictType = "span_mismatch"
	ConflictDuplicateTitle      ConflictType = "duplicate_title"
	ConflictTooManyReminders    ConflictType = "too_many_reminders"
	ConflictInvalidReminderTime ConflictType = "invalid_reminder_time"
)

// Conflict represents a detected conflict in practices or overrides
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // Practice titles involved
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator validates practices, overrides, and reminder preferences
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidatePractices checks a group's practices for conflicts.
func (v *Validator) ValidatePractices(practices []models.Practice) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	titleIDs := make(map[string][]string)
	for _, p := range practices {
		if p.Title == "" {
			continue
		}
		titleIDs[p.Title] = append(titleIDs[p.Title], p.ID)
	}
	for title, ids := range titleIDs {
		if len(ids) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateTitle,
				Description: fmt.Sprintf("Duplicate practice title: %q (IDs: %v)", title, ids),
				Items:       []string{title},
			})
		}
	}

	for _, p := range practices {
		if !isValidDate(p.StartDate) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDateTime,
				Description: fmt.Sprintf("Practice %q has invalid start date: %s", p.Title, p.StartDate),
				Items:       []string{p.Title},
			})
		}
		if !isValidDate(p.EndDate) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDateTime,
				Description: fmt.Sprintf("Practice %q has invalid end date: %s", p.Title, p.EndDate),
				Items:       []string{p.Title},
			})
		}
		if isValidDate(p.StartDate) && isValidDate(p.EndDate) && p.EndDate < p.StartDate {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDateTime,
				Description: fmt.Sprintf("Practice %q ends (%s) before it starts (%s)", p.Title, p.EndDate, p.StartDate),
				Items:       []string{p.Title},
			})
		}
		if p.NumberOfDays > 0 && isValidDate(p.StartDate) && isValidDate(p.EndDate) && p.SpanDays() < p.NumberOfDays {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type: ConflictSpanMismatch,
				Description: fmt.Sprintf("Practice %q spans %d days, fewer than its %d-day requirement",
					p.Title, p.SpanDays(), p.NumberOfDays),
				Items: []string{p.Title},
			})
		}
	}

	return result
}

// ValidateOverride checks a personal date override against its practice: the
// override must stay within the practice's range, and when the practice fixes
// a day count the override must span exactly that many days.
func (v *Validator) ValidateOverride(p models.Practice, o models.PracticeOverride) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	if !isValidDate(o.StartDate) || !isValidDate(o.EndDate) {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidDateTime,
			Description: fmt.Sprintf("Override for %q has invalid dates: %s..%s", p.Title, o.StartDate, o.EndDate),
			Items:       []string{p.Title},
		})
		return result
	}

	if o.EndDate < o.StartDate {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidDateTime,
			Description: fmt.Sprintf("Override for %q ends (%s) before it starts (%s)", p.Title, o.EndDate, o.StartDate),
			Items:       []string{p.Title},
		})
		return result
	}

	if o.StartDate < p.StartDate || o.EndDate > p.EndDate {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type: ConflictOverrideOutOfRange,
			Description: fmt.Sprintf("Override %s..%s falls outside %q's range %s..%s",
				o.StartDate, o.EndDate, p.Title, p.StartDate, p.EndDate),
			Items: []string{p.Title},
		})
	}

	if p.NumberOfDays > 0 && o.SpanDays() != p.NumberOfDays {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type: ConflictSpanMismatch,
			Description: fmt.Sprintf("Override spans %d days, %q requires exactly %d",
				o.SpanDays(), p.Title, p.NumberOfDays),
			Items: []string{p.Title},
		})
	}

	return result
}

// ValidatePrefs checks reminder preferences for conflicts.
func (v *Validator) ValidatePrefs(prefs models.ReminderPrefs) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	if prefs.FrequencyPerDay > constants.MaxRemindersPerDay || len(prefs.Times) > constants.MaxRemindersPerDay {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type: ConflictTooManyReminders,
			Description: fmt.Sprintf("At most %d reminders per day are allowed",
				constants.MaxRemindersPerDay),
		})
	}

	for _, t := range prefs.Times {
		if !isValidTimeFormat(t) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidReminderTime,
				Description: fmt.Sprintf("Invalid reminder time: %s", t),
			})
		}
	}

	return result
}

// Helper functions

func isValidDate(dateStr string) bool {
	_, err := time.Parse(constants.DateFormat, dateStr)
	return err == nil
}

func isValidTimeFormat(timeStr string) bool {
	_, err := time.Parse(constants.TimeFormat, timeStr)
	return err == nil
}
