package contactbook

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/tovven/raido/internal/apperr"
	"github.com/tovven/raido/internal/models"
)

func TestAddAndFind(t *testing.T) {
	b := New()
	if _, err := b.Add("Ann"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	c, err := b.Find("ann")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if c.Name != "Ann" {
		t.Errorf("name = %q, original case should be kept", c.Name)
	}
	if len(c.Phones) != 0 || c.Email != "" || c.Birthday != nil || c.Address != "" {
		t.Error("new contact should have empty optional fields")
	}
}

func TestAddDuplicateName(t *testing.T) {
	b := New()
	_, _ = b.Add("Ann")
	if _, err := b.Add("ANN"); !errors.Is(err, apperr.ErrDuplicate) {
		t.Errorf("err = %v, want ErrDuplicate", err)
	}
}

func TestFindMissing(t *testing.T) {
	b := New()
	if _, err := b.Find("nobody"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestRemove(t *testing.T) {
	b := New()
	_, _ = b.Add("Ann")
	if err := b.Remove("ann"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := b.Remove("ann"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("second Remove err = %v, want ErrNotFound", err)
	}
}

func TestRename(t *testing.T) {
	b := New()
	_, _ = b.Add("Ann")
	_, _ = b.Add("Bob")
	_ = b.AddPhone("Ann", "1234567890")

	if err := b.Rename("ann", "Bob"); !errors.Is(err, apperr.ErrDuplicate) {
		t.Errorf("rename to taken name err = %v, want ErrDuplicate", err)
	}
	if err := b.Rename("ann", "Anna"); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	c, err := b.Find("anna")
	if err != nil {
		t.Fatalf("Find after rename: %v", err)
	}
	if len(c.Phones) != 1 {
		t.Error("rename should keep fields")
	}
	if _, err := b.Find("ann"); !errors.Is(err, apperr.ErrNotFound) {
		t.Error("old name should no longer resolve")
	}
	// Insertion order keeps the renamed contact in place.
	all := b.All()
	if all[0].Name != "Anna" || all[1].Name != "Bob" {
		t.Errorf("order = [%s %s], want [Anna Bob]", all[0].Name, all[1].Name)
	}
}

func TestPhoneOpsRequireContact(t *testing.T) {
	b := New()
	if err := b.AddPhone("nobody", "1234567890"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("AddPhone err = %v, want ErrNotFound", err)
	}
	if err := b.SetEmail("nobody", "a@b.co"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("SetEmail err = %v, want ErrNotFound", err)
	}
}

func TestSearchByNameAndPhone(t *testing.T) {
	b := New()
	_, _ = b.Add("Ann Smith")
	_, _ = b.Add("Bob")
	_ = b.AddPhone("Bob", "1234567890")
	_ = b.SetEmail("Bob", "bob@example.com")

	if got := b.Search("smith"); len(got) != 1 || got[0].Name != "Ann Smith" {
		t.Errorf("Search(smith) = %v", got)
	}
	if got := b.Search("34567"); len(got) != 1 || got[0].Name != "Bob" {
		t.Errorf("Search(34567) = %v", got)
	}
	// Matching is limited to name and phones.
	if got := b.Search("example.com"); len(got) != 0 {
		t.Errorf("Search(example.com) = %v, want none", got)
	}
}

func TestAllInsertionOrder(t *testing.T) {
	b := New()
	for _, name := range []string{"zoe", "Ann", "mike"} {
		_, _ = b.Add(name)
	}
	var names []string
	for _, c := range b.All() {
		names = append(names, c.Name)
	}
	want := []string{"zoe", "Ann", "mike"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("order = %v, want %v", names, want)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	b := New()
	_, _ = b.Add("Ann")
	_ = b.AddPhone("Ann", "1234567890")
	_ = b.SetEmail("Ann", "ann@example.com")
	_ = b.SetBirthday("Ann", "15.03.1990")
	_ = b.SetAddress("Ann", "12 Main St")
	_, _ = b.Add("Bob")

	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	back := New()
	if err := json.Unmarshal(data, back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Len() != 2 {
		t.Fatalf("len = %d, want 2", back.Len())
	}
	c, err := back.Find("Ann")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if c.Email != "ann@example.com" || c.Address != "12 Main St" {
		t.Errorf("fields lost in round trip: %+v", c)
	}
	if c.Birthday == nil || !c.Birthday.Equal(models.NewDate(1990, time.March, 15)) {
		t.Errorf("birthday lost in round trip: %v", c.Birthday)
	}
	if back.All()[0].Name != "Ann" || back.All()[1].Name != "Bob" {
		t.Error("insertion order lost in round trip")
	}
}

func TestUpcomingDelegates(t *testing.T) {
	b := New()
	_, _ = b.Add("Ann")
	_ = b.SetBirthday("Ann", "10.05.1990")

	got, err := b.Upcoming(models.NewDate(2024, time.May, 8), 7)
	if err != nil {
		t.Fatalf("Upcoming: %v", err)
	}
	if len(got) != 1 || got[0].Contact.Name != "Ann" {
		t.Fatalf("got %v, want Ann", got)
	}
}
