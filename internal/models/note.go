package models

import (
	"fmt"
	"strings"

	"github.com/tovven/raido/internal/apperr"
)

// Note is a titled free-text record with a set of tags. Title is the
// identifier; lookups compare it case-insensitively. Tags compare
// case-insensitively too, original case is kept for display.
type Note struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags,omitempty"`
}

// NewNote creates a note, deduplicating tags case-insensitively.
func NewNote(title, content string, tags []string) (*Note, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title must not be empty", apperr.ErrValidation)
	}
	n := &Note{Title: title, Content: content}
	for _, t := range tags {
		n.AddTag(t)
	}
	return n, nil
}

// HasTag reports whether the note carries the tag, ignoring case.
func (n *Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// AddTag appends a tag unless an equal-fold duplicate is present.
// Blank tags are ignored.
func (n *Note) AddTag(tag string) {
	tag = strings.TrimSpace(tag)
	if tag == "" || n.HasTag(tag) {
		return
	}
	n.Tags = append(n.Tags, tag)
}

// RemoveTag deletes a tag by case-insensitive match. Removing an
// absent tag is a no-op, reported by the return value.
func (n *Note) RemoveTag(tag string) bool {
	for i, t := range n.Tags {
		if strings.EqualFold(t, tag) {
			n.Tags = append(n.Tags[:i], n.Tags[i+1:]...)
			return true
		}
	}
	return false
}

// SetTags replaces the tag set, deduplicating case-insensitively.
func (n *Note) SetTags(tags []string) {
	n.Tags = nil
	for _, t := range tags {
		n.AddTag(t)
	}
}
