package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tovven/raido/internal/birthday"
	"github.com/tovven/raido/internal/models"
	"github.com/tovven/raido/internal/notebook"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	labelStyle  = lipgloss.NewStyle().Bold(true)
	tagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// Renderer formats command results as styled text. It is the only
// place that writes to the session's output stream.
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Errorf renders a user-facing error line.
func (r *Renderer) Errorf(format string, args ...any) {
	fmt.Fprintln(r.out, errorStyle.Render("Error: "+fmt.Sprintf(format, args...)))
}

// Linef renders a plain status line.
func (r *Renderer) Linef(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

// Header renders a section heading.
func (r *Renderer) Header(text string) {
	fmt.Fprintln(r.out, headerStyle.Render(text))
}

// Contact renders one contact record.
func (r *Renderer) Contact(c *models.Contact) {
	var b strings.Builder
	b.WriteString(labelStyle.Render(c.Name))
	if len(c.Phones) > 0 {
		b.WriteString(", phones: " + strings.Join(c.Phones, "; "))
	}
	if c.Email != "" {
		b.WriteString(", email: " + c.Email)
	}
	if c.Birthday != nil {
		b.WriteString(", birthday: " + c.Birthday.String())
	}
	if c.Address != "" {
		b.WriteString(", address: " + c.Address)
	}
	fmt.Fprintln(r.out, b.String())
}

// Contacts renders a list of contacts, or a placeholder when empty.
func (r *Renderer) Contacts(contacts []*models.Contact) {
	if len(contacts) == 0 {
		fmt.Fprintln(r.out, dimStyle.Render("No contacts found."))
		return
	}
	for _, c := range contacts {
		r.Contact(c)
	}
}

// Note renders one note record.
func (r *Renderer) Note(n *models.Note) {
	fmt.Fprintln(r.out, labelStyle.Render("Title: ")+n.Title)
	fmt.Fprintln(r.out, labelStyle.Render("Content: ")+n.Content)
	if len(n.Tags) > 0 {
		fmt.Fprintln(r.out, labelStyle.Render("Tags: ")+tagStyle.Render(strings.Join(n.Tags, ", ")))
	}
}

// Notes renders a list of notes, or a placeholder when empty.
func (r *Renderer) Notes(notes []*models.Note) {
	if len(notes) == 0 {
		fmt.Fprintln(r.out, dimStyle.Render("No notes found."))
		return
	}
	for _, n := range notes {
		r.Note(n)
	}
}

// TagEntry renders one element of the sorted-by-tag view.
func (r *Renderer) TagEntry(e notebook.TagEntry) {
	fmt.Fprintln(r.out, tagStyle.Render(e.Tag)+": "+e.Note.Title)
}

// Reminders renders upcoming birthday reminders, or a placeholder.
func (r *Renderer) Reminders(reminders []birthday.Reminder, window int) {
	if len(reminders) == 0 {
		fmt.Fprintf(r.out, "No upcoming birthdays in the next %d days.\n", window)
		return
	}
	r.Header("Upcoming birthdays:")
	for _, rem := range reminders {
		fmt.Fprintf(r.out, "%s: %s\n", rem.Contact.Name, rem.Observed)
	}
}
