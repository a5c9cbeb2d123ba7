package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/praxishq/praxis-cli/internal/constants"
)

// Frequency is a per-day occurrence target: a fixed count when Min == Max,
// a range otherwise. The zero value means no target.
type Frequency struct {
	Min int `json:"min,omitempty"`
	Max int `json:"max,omitempty"`
}

func (f Frequency) IsZero() bool {
	return f.Min == 0 && f.Max == 0
}

func (f Frequency) IsRange() bool {
	return f.Max > f.Min
}

// Target returns the daily completion target: the upper bound of a range,
// the fixed count otherwise.
func (f Frequency) Target() int {
	if f.Max > f.Min {
		return f.Max
	}
	return f.Min
}

func (f Frequency) String() string {
	if f.IsZero() {
		return ""
	}
	if f.IsRange() {
		return fmt.Sprintf("%d-%d/day", f.Min, f.Max)
	}
	return fmt.Sprintf("%d/day", f.Min)
}

// Practice is a unit of ethics practice belonging to a group. Dates are
// inclusive calendar days (YYYY-MM-DD) with no time component.
type Practice struct {
	ID           string    `json:"id"`
	GroupID      string    `json:"group_id"`
	Title        string    `json:"title"`
	StartDate    string    `json:"start_date"` // YYYY-MM-DD
	EndDate      string    `json:"end_date"`   // YYYY-MM-DD
	Frequency    Frequency `json:"frequency,omitempty"`
	NumberOfDays int       `json:"number_of_days,omitempty"` // fixed span constraint, 0 = none
	DisplayOrder *int      `json:"display_order,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func (p *Practice) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("practice title cannot be empty")
	}
	if p.GroupID == "" {
		return fmt.Errorf("practice must belong to a group")
	}

	start, err := time.Parse(constants.DateFormat, p.StartDate)
	if err != nil {
		return fmt.Errorf("invalid start date (expected YYYY-MM-DD): %w", err)
	}
	end, err := time.Parse(constants.DateFormat, p.EndDate)
	if err != nil {
		return fmt.Errorf("invalid end date (expected YYYY-MM-DD): %w", err)
	}
	if end.Before(start) {
		return fmt.Errorf("end date %s is before start date %s", p.EndDate, p.StartDate)
	}

	if p.Frequency.Min < 0 || p.Frequency.Max < 0 {
		return fmt.Errorf("frequency cannot be negative")
	}
	if !p.Frequency.IsZero() && p.Frequency.Max != 0 && p.Frequency.Max < p.Frequency.Min {
		return fmt.Errorf("frequency max %d is below min %d", p.Frequency.Max, p.Frequency.Min)
	}

	if p.NumberOfDays < 0 {
		return fmt.Errorf("number of days cannot be negative")
	}

	return nil
}

// SpanDays returns the inclusive day count of the default range.
func (p *Practice) SpanDays() int {
	start, err1 := time.Parse(constants.DateFormat, p.StartDate)
	end, err2 := time.Parse(constants.DateFormat, p.EndDate)
	if err1 != nil || err2 != nil {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// EffectiveRange returns the date range for a user: the override range when
// one exists, the practice's default range otherwise.
func (p *Practice) EffectiveRange(o *PracticeOverride) (start, end string) {
	if o != nil {
		return o.StartDate, o.EndDate
	}
	return p.StartDate, p.EndDate
}

// ActiveOn reports whether day (YYYY-MM-DD) falls within the effective range.
// Lexicographic comparison is correct for the date format.
func (p *Practice) ActiveOn(day string, o *PracticeOverride) bool {
	start, end := p.EffectiveRange(o)
	return day >= start && day <= end
}
