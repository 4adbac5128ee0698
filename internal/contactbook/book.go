// Package contactbook implements the in-memory contact store.
package contactbook

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tovven/raido/internal/apperr"
	"github.com/tovven/raido/internal/birthday"
	"github.com/tovven/raido/internal/models"
)

// Book is a collection of contacts keyed by name. Names compare
// case-insensitively; iteration follows insertion order. Book does no
// I/O — persistence is the caller's concern.
type Book struct {
	records map[string]*models.Contact // key: normalized name
	order   []string                   // normalized names, insertion order
}

// New returns an empty contact book.
func New() *Book {
	return &Book{records: make(map[string]*models.Contact)}
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Len returns the number of contacts.
func (b *Book) Len() int { return len(b.records) }

// Add creates an empty record for name.
func (b *Book) Add(name string) (*models.Contact, error) {
	c, err := models.NewContact(name)
	if err != nil {
		return nil, err
	}
	key := normalize(name)
	if _, ok := b.records[key]; ok {
		return nil, fmt.Errorf("%w: contact %q", apperr.ErrDuplicate, name)
	}
	b.records[key] = c
	b.order = append(b.order, key)
	return c, nil
}

// Find returns the contact with the given name, matched case-insensitively.
func (b *Book) Find(name string) (*models.Contact, error) {
	c, ok := b.records[normalize(name)]
	if !ok {
		return nil, fmt.Errorf("%w: contact %q", apperr.ErrNotFound, name)
	}
	return c, nil
}

// Remove deletes the contact with the given name.
func (b *Book) Remove(name string) error {
	key := normalize(name)
	if _, ok := b.records[key]; !ok {
		return fmt.Errorf("%w: contact %q", apperr.ErrNotFound, name)
	}
	delete(b.records, key)
	for i, k := range b.order {
		if k == key {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

// Rename changes a contact's name, keeping its position and fields.
func (b *Book) Rename(oldName, newName string) error {
	if strings.TrimSpace(newName) == "" {
		return fmt.Errorf("%w: name must not be empty", apperr.ErrValidation)
	}
	oldKey, newKey := normalize(oldName), normalize(newName)
	c, ok := b.records[oldKey]
	if !ok {
		return fmt.Errorf("%w: contact %q", apperr.ErrNotFound, oldName)
	}
	if newKey != oldKey {
		if _, taken := b.records[newKey]; taken {
			return fmt.Errorf("%w: contact %q", apperr.ErrDuplicate, newName)
		}
	}
	c.Name = newName
	if newKey != oldKey {
		delete(b.records, oldKey)
		b.records[newKey] = c
		for i, k := range b.order {
			if k == oldKey {
				b.order[i] = newKey
				break
			}
		}
	}
	return nil
}

// AddPhone attaches a phone number to an existing contact.
func (b *Book) AddPhone(name, phone string) error {
	c, err := b.Find(name)
	if err != nil {
		return err
	}
	return c.AddPhone(phone)
}

// RemovePhone removes a phone number from an existing contact.
func (b *Book) RemovePhone(name, phone string) error {
	c, err := b.Find(name)
	if err != nil {
		return err
	}
	return c.RemovePhone(phone)
}

// EditPhone replaces one phone number with another on an existing contact.
func (b *Book) EditPhone(name, oldPhone, newPhone string) error {
	c, err := b.Find(name)
	if err != nil {
		return err
	}
	return c.EditPhone(oldPhone, newPhone)
}

// SetEmail sets the email of an existing contact.
func (b *Book) SetEmail(name, email string) error {
	c, err := b.Find(name)
	if err != nil {
		return err
	}
	return c.SetEmail(email)
}

// SetBirthday sets the birthday of an existing contact from DD.MM.YYYY text.
func (b *Book) SetBirthday(name, value string) error {
	c, err := b.Find(name)
	if err != nil {
		return err
	}
	return c.SetBirthday(value)
}

// SetAddress sets the address of an existing contact.
func (b *Book) SetAddress(name, address string) error {
	c, err := b.Find(name)
	if err != nil {
		return err
	}
	c.SetAddress(address)
	return nil
}

// All returns the contacts in insertion order.
func (b *Book) All() []*models.Contact {
	out := make([]*models.Contact, 0, len(b.order))
	for _, key := range b.order {
		out = append(out, b.records[key])
	}
	return out
}

// Search returns contacts whose name contains query case-insensitively
// or whose phones contain query as a digit substring, in insertion order.
func (b *Book) Search(query string) []*models.Contact {
	q := strings.ToLower(query)
	var out []*models.Contact
	for _, c := range b.All() {
		if strings.Contains(strings.ToLower(c.Name), q) {
			out = append(out, c)
			continue
		}
		for _, p := range c.Phones {
			if strings.Contains(p, query) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// Upcoming returns birthday reminders falling within the next window days.
func (b *Book) Upcoming(today models.Date, window int) ([]birthday.Reminder, error) {
	return birthday.Upcoming(b.All(), today, window)
}

// MarshalJSON encodes the book as an ordered array of contacts.
func (b *Book) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.All())
}

// UnmarshalJSON rebuilds the book from an array of contacts, restoring
// insertion order.
func (b *Book) UnmarshalJSON(data []byte) error {
	var contacts []*models.Contact
	if err := json.Unmarshal(data, &contacts); err != nil {
		return err
	}
	b.records = make(map[string]*models.Contact, len(contacts))
	b.order = b.order[:0]
	for _, c := range contacts {
		key := normalize(c.Name)
		if _, dup := b.records[key]; dup {
			return fmt.Errorf("%w: contact %q appears twice in snapshot", apperr.ErrDuplicate, c.Name)
		}
		b.records[key] = c
		b.order = append(b.order, key)
	}
	return nil
}
