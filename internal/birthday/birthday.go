// Package birthday computes upcoming birthday reminders.
//
// A birthday's next occurrence is its month/day in the current year, or
// in the next year when it has already passed. Feb-29 birthdays are
// observed on Feb 28 in non-leap years. Occurrences landing on a
// weekend are shifted forward to Monday for display; the stored
// birthday is never touched.
package birthday

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tovven/raido/internal/apperr"
	"github.com/tovven/raido/internal/models"
)

// Reminder pairs a contact with the dates its next birthday resolves to.
type Reminder struct {
	Contact  *models.Contact
	Occurs   models.Date // the actual occurrence
	Observed models.Date // weekend-adjusted display date
}

// occurrenceIn places the birthday's month/day into the given year.
// Feb 29 falls back to Feb 28 when the year is not a leap year.
func occurrenceIn(b models.Date, year int) models.Date {
	day := b.Day()
	if b.Month() == time.February && day == 29 && !isLeap(year) {
		day = 28
	}
	return models.NewDate(year, b.Month(), day)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// NextOccurrence returns the first occurrence of the birthday on or
// after today.
func NextOccurrence(b models.Date, today models.Date) models.Date {
	candidate := occurrenceIn(b, today.Year())
	if candidate.Before(today) {
		candidate = occurrenceIn(b, today.Year()+1)
	}
	return candidate
}

// Observed shifts Saturday and Sunday occurrences forward to Monday.
func Observed(d models.Date) models.Date {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDays(2)
	case time.Sunday:
		return d.AddDays(1)
	}
	return d
}

// Upcoming selects contacts whose next birthday's observed date falls
// within [today, today+window]. window = 0 means today only; a negative
// window is an input error. The result is ordered by observed date,
// ties broken by name.
func Upcoming(contacts []*models.Contact, today models.Date, window int) ([]Reminder, error) {
	if window < 0 {
		return nil, fmt.Errorf("%w: number of days must not be negative", apperr.ErrValidation)
	}

	end := today.AddDays(window)
	var out []Reminder
	for _, c := range contacts {
		if c.Birthday == nil {
			continue
		}
		occurs := NextOccurrence(*c.Birthday, today)
		observed := Observed(occurs)
		if observed.Before(today) || observed.After(end) {
			continue
		}
		out = append(out, Reminder{Contact: c, Occurs: occurs, Observed: observed})
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Observed.Equal(out[j].Observed) {
			return out[i].Observed.Before(out[j].Observed)
		}
		return strings.ToLower(out[i].Contact.Name) < strings.ToLower(out[j].Contact.Name)
	})
	return out, nil
}
