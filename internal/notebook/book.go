// Package notebook implements the in-memory note store.
package notebook

import (
	"encoding/json"
	"fmt"
	"iter"
	"sort"
	"strings"

	"github.com/tovven/raido/internal/apperr"
	"github.com/tovven/raido/internal/models"
)

// Book is a collection of notes keyed by title. Titles compare
// case-insensitively; iteration follows insertion order.
type Book struct {
	notes map[string]*models.Note // key: normalized title
	order []string                // normalized titles, insertion order
}

// EditRequest carries the optional field updates for Edit. Nil fields
// are left untouched.
type EditRequest struct {
	Title   *string
	Content *string
	Tags    *[]string
}

// TagEntry is one element of the sorted-by-tag view: a note paired
// with one of its tags.
type TagEntry struct {
	Tag  string
	Note *models.Note
}

// New returns an empty note book.
func New() *Book {
	return &Book{notes: make(map[string]*models.Note)}
}

func normalize(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// Len returns the number of notes.
func (b *Book) Len() int { return len(b.notes) }

// Add creates a note with the given title, content, and tags.
func (b *Book) Add(title, content string, tags []string) (*models.Note, error) {
	n, err := models.NewNote(title, content, tags)
	if err != nil {
		return nil, err
	}
	key := normalize(title)
	if _, ok := b.notes[key]; ok {
		return nil, fmt.Errorf("%w: note %q", apperr.ErrDuplicate, title)
	}
	b.notes[key] = n
	b.order = append(b.order, key)
	return n, nil
}

// Find returns the note with the given title, matched case-insensitively.
func (b *Book) Find(title string) (*models.Note, error) {
	n, ok := b.notes[normalize(title)]
	if !ok {
		return nil, fmt.Errorf("%w: note %q", apperr.ErrNotFound, title)
	}
	return n, nil
}

// Remove deletes the note with the given title.
func (b *Book) Remove(title string) error {
	key := normalize(title)
	if _, ok := b.notes[key]; !ok {
		return fmt.Errorf("%w: note %q", apperr.ErrNotFound, title)
	}
	delete(b.notes, key)
	for i, k := range b.order {
		if k == key {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

// Edit applies the non-nil fields of req to an existing note. Renaming
// to a title already in use fails with a duplicate error.
func (b *Book) Edit(title string, req EditRequest) error {
	oldKey := normalize(title)
	n, ok := b.notes[oldKey]
	if !ok {
		return fmt.Errorf("%w: note %q", apperr.ErrNotFound, title)
	}
	if req.Title != nil {
		newTitle := *req.Title
		if strings.TrimSpace(newTitle) == "" {
			return fmt.Errorf("%w: title must not be empty", apperr.ErrValidation)
		}
		newKey := normalize(newTitle)
		if newKey != oldKey {
			if _, taken := b.notes[newKey]; taken {
				return fmt.Errorf("%w: note %q", apperr.ErrDuplicate, newTitle)
			}
			delete(b.notes, oldKey)
			b.notes[newKey] = n
			for i, k := range b.order {
				if k == oldKey {
					b.order[i] = newKey
					break
				}
			}
		}
		n.Title = newTitle
	}
	if req.Content != nil {
		n.Content = *req.Content
	}
	if req.Tags != nil {
		n.SetTags(*req.Tags)
	}
	return nil
}

// AddTag attaches a tag to an existing note. Duplicate tags
// (case-insensitive) are ignored.
func (b *Book) AddTag(title, tag string) error {
	n, err := b.Find(title)
	if err != nil {
		return err
	}
	n.AddTag(tag)
	return nil
}

// RemoveTag detaches a tag from an existing note. Removing an absent
// tag is a no-op; the return value reports whether anything changed.
func (b *Book) RemoveTag(title, tag string) (bool, error) {
	n, err := b.Find(title)
	if err != nil {
		return false, err
	}
	return n.RemoveTag(tag), nil
}

// All returns the notes in insertion order.
func (b *Book) All() []*models.Note {
	out := make([]*models.Note, 0, len(b.order))
	for _, key := range b.order {
		out = append(out, b.notes[key])
	}
	return out
}

// Search returns notes whose title or content contains query
// case-insensitively, in insertion order.
func (b *Book) Search(query string) []*models.Note {
	q := strings.ToLower(query)
	var out []*models.Note
	for _, n := range b.All() {
		if strings.Contains(strings.ToLower(n.Title), q) ||
			strings.Contains(strings.ToLower(n.Content), q) {
			out = append(out, n)
		}
	}
	return out
}

// SearchByTag returns notes carrying the tag, matched exactly but
// case-insensitively, in insertion order.
func (b *Book) SearchByTag(tag string) []*models.Note {
	var out []*models.Note
	for _, n := range b.All() {
		if n.HasTag(tag) {
			out = append(out, n)
		}
	}
	return out
}

// SortedByTag returns the tag-ordered view of the book: each note
// appears once per tag it holds, ordered by tag then title (both
// case-insensitive). The sequence is recomputed on every call, so it
// reflects the book's state at iteration time and can be restarted.
func (b *Book) SortedByTag() iter.Seq[TagEntry] {
	return func(yield func(TagEntry) bool) {
		var entries []TagEntry
		for _, n := range b.All() {
			for _, t := range n.Tags {
				entries = append(entries, TagEntry{Tag: t, Note: n})
			}
		}
		sort.Slice(entries, func(i, j int) bool {
			ti, tj := strings.ToLower(entries[i].Tag), strings.ToLower(entries[j].Tag)
			if ti != tj {
				return ti < tj
			}
			return strings.ToLower(entries[i].Note.Title) < strings.ToLower(entries[j].Note.Title)
		})
		for _, e := range entries {
			if !yield(e) {
				return
			}
		}
	}
}

// MarshalJSON encodes the book as an ordered array of notes.
func (b *Book) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.All())
}

// UnmarshalJSON rebuilds the book from an array of notes, restoring
// insertion order.
func (b *Book) UnmarshalJSON(data []byte) error {
	var notes []*models.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return err
	}
	b.notes = make(map[string]*models.Note, len(notes))
	b.order = b.order[:0]
	for _, n := range notes {
		key := normalize(n.Title)
		if _, dup := b.notes[key]; dup {
			return fmt.Errorf("%w: note %q appears twice in snapshot", apperr.ErrDuplicate, n.Title)
		}
		b.notes[key] = n
		b.order = append(b.order, key)
	}
	return nil
}
