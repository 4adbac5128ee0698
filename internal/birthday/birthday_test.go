package birthday

import (
	"errors"
	"testing"
	"time"

	"github.com/tovven/raido/internal/apperr"
	"github.com/tovven/raido/internal/models"
)

func contact(t *testing.T, name, bday string) *models.Contact {
	t.Helper()
	c, err := models.NewContact(name)
	if err != nil {
		t.Fatalf("NewContact: %v", err)
	}
	if bday != "" {
		if err := c.SetBirthday(bday); err != nil {
			t.Fatalf("SetBirthday: %v", err)
		}
	}
	return c
}

func TestNextOccurrenceSameYear(t *testing.T) {
	// 2024-05-08 is a Wednesday.
	today := models.NewDate(2024, time.May, 8)
	b := models.NewDate(1990, time.May, 10)

	got := NextOccurrence(b, today)
	want := models.NewDate(2024, time.May, 10)
	if !got.Equal(want) {
		t.Errorf("NextOccurrence = %s, want %s", got, want)
	}
}

func TestNextOccurrenceRollsToNextYear(t *testing.T) {
	today := models.NewDate(2024, time.December, 30)
	b := models.NewDate(1985, time.January, 2)

	got := NextOccurrence(b, today)
	want := models.NewDate(2025, time.January, 2)
	if !got.Equal(want) {
		t.Errorf("NextOccurrence = %s, want %s", got, want)
	}
}

func TestNextOccurrenceToday(t *testing.T) {
	today := models.NewDate(2024, time.May, 10)
	b := models.NewDate(1990, time.May, 10)

	got := NextOccurrence(b, today)
	if !got.Equal(today) {
		t.Errorf("NextOccurrence = %s, want %s", got, today)
	}
}

func TestLeapDayObservedOnFeb28(t *testing.T) {
	// 2025 is not a leap year: a Feb-29 birthday is observed on Feb 28.
	today := models.NewDate(2025, time.February, 20)
	b := models.NewDate(2000, time.February, 29)

	got := NextOccurrence(b, today)
	want := models.NewDate(2025, time.February, 28)
	if !got.Equal(want) {
		t.Errorf("NextOccurrence = %s, want %s", got, want)
	}
}

func TestLeapDayKeptInLeapYear(t *testing.T) {
	today := models.NewDate(2024, time.February, 20)
	b := models.NewDate(2000, time.February, 29)

	got := NextOccurrence(b, today)
	want := models.NewDate(2024, time.February, 29)
	if !got.Equal(want) {
		t.Errorf("NextOccurrence = %s, want %s", got, want)
	}
}

func TestObservedWeekendShift(t *testing.T) {
	cases := []struct {
		name string
		in   models.Date
		want models.Date
	}{
		// 2024-05-11 Sat, 2024-05-12 Sun, 2024-05-13 Mon.
		{"saturday", models.NewDate(2024, time.May, 11), models.NewDate(2024, time.May, 13)},
		{"sunday", models.NewDate(2024, time.May, 12), models.NewDate(2024, time.May, 13)},
		{"weekday", models.NewDate(2024, time.May, 10), models.NewDate(2024, time.May, 10)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Observed(tc.in)
			if !got.Equal(tc.want) {
				t.Errorf("Observed(%s) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestUpcomingWindow(t *testing.T) {
	today := models.NewDate(2024, time.May, 8)
	contacts := []*models.Contact{
		contact(t, "Ann", "10.05.1990"),
		contact(t, "Bob", "20.06.1970"),
		contact(t, "NoBirthday", ""),
	}

	got, err := Upcoming(contacts, today, 7)
	if err != nil {
		t.Fatalf("Upcoming: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Contact.Name != "Ann" {
		t.Errorf("name = %s, want Ann", got[0].Contact.Name)
	}
	want := models.NewDate(2024, time.May, 10)
	if !got[0].Observed.Equal(want) {
		t.Errorf("observed = %s, want %s", got[0].Observed, want)
	}
}

func TestUpcomingZeroWindowToday(t *testing.T) {
	// 2024-05-10 is a Friday, so no shift applies.
	today := models.NewDate(2024, time.May, 10)
	contacts := []*models.Contact{
		contact(t, "Ann", "10.05.1990"),
		contact(t, "Bob", "11.05.1990"),
	}

	got, err := Upcoming(contacts, today, 0)
	if err != nil {
		t.Fatalf("Upcoming: %v", err)
	}
	if len(got) != 1 || got[0].Contact.Name != "Ann" {
		t.Fatalf("got %v, want only Ann", got)
	}
}

func TestUpcomingUsesShiftedDateForBoundary(t *testing.T) {
	// Birthday on Saturday 2024-05-11 shifts to Monday 2024-05-13,
	// which is outside a 3-day window starting Wednesday 2024-05-08.
	today := models.NewDate(2024, time.May, 8)
	contacts := []*models.Contact{contact(t, "Ann", "11.05.1990")}

	got, err := Upcoming(contacts, today, 3)
	if err != nil {
		t.Fatalf("Upcoming: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0 (observed date falls past the window)", len(got))
	}

	got, err = Upcoming(contacts, today, 5)
	if err != nil {
		t.Fatalf("Upcoming: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	want := models.NewDate(2024, time.May, 13)
	if !got[0].Observed.Equal(want) {
		t.Errorf("observed = %s, want %s", got[0].Observed, want)
	}
}

func TestUpcomingOrdering(t *testing.T) {
	today := models.NewDate(2024, time.May, 8)
	contacts := []*models.Contact{
		contact(t, "zoe", "10.05.1990"),
		contact(t, "Ann", "10.05.1991"),
		contact(t, "Bob", "09.05.1970"),
	}

	got, err := Upcoming(contacts, today, 7)
	if err != nil {
		t.Fatalf("Upcoming: %v", err)
	}
	var names []string
	for _, r := range got {
		names = append(names, r.Contact.Name)
	}
	want := []string{"Bob", "Ann", "zoe"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}

func TestUpcomingNegativeWindow(t *testing.T) {
	_, err := Upcoming(nil, models.NewDate(2024, time.May, 8), -1)
	if !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}
