// Package models defines the domain types for raido.
package models

import (
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/tovven/raido/internal/apperr"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// Contact is a single address-book record. Name is the identifier;
// lookups compare it case-insensitively, display keeps the original case.
type Contact struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones,omitempty"`
	Email    string   `json:"email,omitempty"`
	Birthday *Date    `json:"birthday,omitempty"`
	Address  string   `json:"address,omitempty"`
}

// NewContact creates an empty record for the given name.
func NewContact(name string) (*Contact, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", apperr.ErrValidation)
	}
	return &Contact{Name: name}, nil
}

// ValidatePhone checks that a phone number is exactly 10 digits.
func ValidatePhone(phone string) error {
	err := validation.Validate(phone,
		validation.Required,
		validation.Match(phonePattern).Error("phone number must contain exactly 10 digits"),
	)
	if err != nil {
		return fmt.Errorf("%w: %s", apperr.ErrValidation, err)
	}
	return nil
}

// ValidateEmail checks that an email has a local@domain shape.
func ValidateEmail(email string) error {
	if err := validation.Validate(email, validation.Required, is.Email); err != nil {
		return fmt.Errorf("%w: %s", apperr.ErrValidation, err)
	}
	return nil
}

// HasPhone reports whether the exact phone is already on the record.
func (c *Contact) HasPhone(phone string) bool {
	for _, p := range c.Phones {
		if p == phone {
			return true
		}
	}
	return false
}

// AddPhone validates and appends a phone number.
func (c *Contact) AddPhone(phone string) error {
	if err := ValidatePhone(phone); err != nil {
		return err
	}
	if c.HasPhone(phone) {
		return fmt.Errorf("%w: phone %s is already on record", apperr.ErrValidation, phone)
	}
	c.Phones = append(c.Phones, phone)
	return nil
}

// RemovePhone deletes an existing phone number.
func (c *Contact) RemovePhone(phone string) error {
	for i, p := range c.Phones {
		if p == phone {
			c.Phones = append(c.Phones[:i], c.Phones[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: phone %s", apperr.ErrNotFound, phone)
}

// EditPhone replaces oldPhone with newPhone in place, keeping position.
func (c *Contact) EditPhone(oldPhone, newPhone string) error {
	if err := ValidatePhone(newPhone); err != nil {
		return err
	}
	if oldPhone != newPhone && c.HasPhone(newPhone) {
		return fmt.Errorf("%w: phone %s is already on record", apperr.ErrValidation, newPhone)
	}
	for i, p := range c.Phones {
		if p == oldPhone {
			c.Phones[i] = newPhone
			return nil
		}
	}
	return fmt.Errorf("%w: phone %s", apperr.ErrNotFound, oldPhone)
}

// SetEmail validates and stores the email address.
func (c *Contact) SetEmail(email string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	c.Email = email
	return nil
}

// SetBirthday parses and stores a DD.MM.YYYY birthday.
func (c *Contact) SetBirthday(value string) error {
	d, err := ParseDate(value)
	if err != nil {
		return err
	}
	c.Birthday = &d
	return nil
}

// SetAddress stores a free-text address.
func (c *Contact) SetAddress(address string) {
	c.Address = address
}
