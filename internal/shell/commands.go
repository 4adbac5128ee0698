package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tovven/raido/internal/apperr"
	"github.com/tovven/raido/internal/models"
	"github.com/tovven/raido/internal/notebook"
)

const (
	categoryGeneral  = "General"
	categoryContacts = "Address Book"
	categoryNotes    = "Note Book"
)

func (s *Shell) registerAll() {
	// General.
	s.register(&command{
		name: "help", usage: "help",
		description: "Show this help message",
		category:    categoryGeneral,
		run:         s.cmdHelp,
	})
	s.register(&command{
		name: "exit", usage: "exit",
		description: "Save and exit",
		category:    categoryGeneral,
		run:         s.cmdExit,
	})
	s.register(&command{
		name: "close", usage: "close",
		description: "Save and exit",
		category:    categoryGeneral,
		run:         s.cmdExit,
	})

	// Address book.
	s.register(&command{
		name: "add-contact", usage: "add-contact <name>",
		description: "Add a new contact",
		category:    categoryContacts,
		args:        []string{"name"},
		save:        saveContacts,
		run:         s.cmdAddContact,
	})
	s.register(&command{
		name: "add-phone", usage: "add-phone <name> <phone>",
		description: "Add a phone number to a contact",
		category:    categoryContacts,
		args:        []string{"name", "phone"},
		save:        saveContacts,
		run:         s.cmdAddPhone,
	})
	s.register(&command{
		name: "remove-phone", usage: "remove-phone <name> <phone>",
		description: "Remove a phone number from a contact",
		category:    categoryContacts,
		args:        []string{"name", "phone"},
		save:        saveContacts,
		run:         s.cmdRemovePhone,
	})
	s.register(&command{
		name: "edit-phone", usage: "edit-phone <name> <old_phone> <new_phone>",
		description: "Replace an existing phone number",
		category:    categoryContacts,
		args:        []string{"name", "old_phone", "new_phone"},
		save:        saveContacts,
		run:         s.cmdEditPhone,
	})
	s.register(&command{
		name: "edit-email", usage: "edit-email <name> <email>",
		description: "Add or update email",
		category:    categoryContacts,
		args:        []string{"name", "email"},
		save:        saveContacts,
		run:         s.cmdEditEmail,
	})
	s.register(&command{
		name: "edit-birthday", usage: "edit-birthday <name> <DD.MM.YYYY>",
		description: "Add or update birthday",
		category:    categoryContacts,
		args:        []string{"name", "birthday"},
		save:        saveContacts,
		run:         s.cmdEditBirthday,
	})
	s.register(&command{
		name: "edit-address", usage: "edit-address <name> <address>",
		description: "Add or update address",
		category:    categoryContacts,
		args:        []string{"name", "address"},
		save:        saveContacts,
		run:         s.cmdEditAddress,
	})
	s.register(&command{
		name: "edit-name", usage: "edit-name <old_name> <new_name>",
		description: "Rename a contact",
		category:    categoryContacts,
		args:        []string{"old_name", "new_name"},
		save:        saveContacts,
		run:         s.cmdEditName,
	})
	s.register(&command{
		name: "show-contact", usage: "show-contact <name>",
		description: "Show one contact",
		category:    categoryContacts,
		args:        []string{"name"},
		run:         s.cmdShowContact,
	})
	s.register(&command{
		name: "show-contacts", usage: "show-contacts",
		description: "Show all contacts",
		category:    categoryContacts,
		run:         s.cmdShowContacts,
	})
	s.register(&command{
		name: "show-birthday", usage: "show-birthday <name>",
		description: "Show a contact's birthday",
		category:    categoryContacts,
		args:        []string{"name"},
		run:         s.cmdShowBirthday,
	})
	s.register(&command{
		name: "search-contacts", usage: "search-contacts <query>",
		description: "Search contacts by name or phone",
		category:    categoryContacts,
		args:        []string{"query"},
		run:         s.cmdSearchContacts,
	})
	s.register(&command{
		name: "delete-contact", usage: "delete-contact <name>",
		description: "Delete a contact",
		category:    categoryContacts,
		args:        []string{"name"},
		save:        saveContacts,
		run:         s.cmdDeleteContact,
	})
	s.register(&command{
		name: "birthdays", usage: "birthdays [days]",
		description: "Show upcoming birthdays",
		category:    categoryContacts,
		run:         s.cmdBirthdays,
	})

	// Note book.
	s.register(&command{
		name: "add-note", usage: `add-note <title> <content> [tags...]`,
		description: "Add a new note",
		category:    categoryNotes,
		args:        []string{"title", "content"},
		save:        saveNotes,
		run:         s.cmdAddNote,
	})
	s.register(&command{
		name: "edit-note", usage: `edit-note <title> [--title T] [--content C] [--tags t1,t2]`,
		description: "Edit a note's title, content, or tags",
		category:    categoryNotes,
		args:        []string{"title"},
		save:        saveNotes,
		run:         s.cmdEditNote,
	})
	s.register(&command{
		name: "add-tag", usage: "add-tag <title> <tag>",
		description: "Add a tag to a note",
		category:    categoryNotes,
		args:        []string{"title", "tag"},
		save:        saveNotes,
		run:         s.cmdAddTag,
	})
	s.register(&command{
		name: "remove-tag", usage: "remove-tag <title> <tag>",
		description: "Remove a tag from a note",
		category:    categoryNotes,
		args:        []string{"title", "tag"},
		save:        saveNotes,
		run:         s.cmdRemoveTag,
	})
	s.register(&command{
		name: "show-note", usage: "show-note <title>",
		description: "Show one note",
		category:    categoryNotes,
		args:        []string{"title"},
		run:         s.cmdShowNote,
	})
	s.register(&command{
		name: "show-all-notes", usage: "show-all-notes",
		description: "Show all notes",
		category:    categoryNotes,
		run:         s.cmdShowAllNotes,
	})
	s.register(&command{
		name: "search-notes", usage: "search-notes <query>",
		description: "Search notes by title or content",
		category:    categoryNotes,
		args:        []string{"query"},
		run:         s.cmdSearchNotes,
	})
	s.register(&command{
		name: "search-notes-by-tag", usage: "search-notes-by-tag <tag>",
		description: "Show notes carrying a tag",
		category:    categoryNotes,
		args:        []string{"tag"},
		run:         s.cmdSearchNotesByTag,
	})
	s.register(&command{
		name: "sort-notes-by-tag", usage: "sort-notes-by-tag",
		description: "Show notes grouped by tag, alphabetically",
		category:    categoryNotes,
		run:         s.cmdSortNotesByTag,
	})
	s.register(&command{
		name: "remove-note", usage: "remove-note <title>",
		description: "Delete a note",
		category:    categoryNotes,
		args:        []string{"title"},
		save:        saveNotes,
		run:         s.cmdRemoveNote,
	})
}

func (s *Shell) cmdHelp([]string) error {
	for _, cat := range []string{categoryGeneral, categoryContacts, categoryNotes} {
		s.render.Header(cat)
		for _, name := range s.order {
			c := s.commands[name]
			if c.category != cat {
				continue
			}
			s.render.Linef("  %-55s %s", c.usage, c.description)
		}
	}
	return nil
}

func (s *Shell) cmdExit([]string) error {
	s.exiting = true
	s.render.Linef("Good bye!")
	return nil
}

func (s *Shell) cmdAddContact(args []string) error {
	if _, err := s.contacts.Add(args[0]); err != nil {
		return err
	}
	s.render.Linef("Contact added: %s", args[0])
	return nil
}

func (s *Shell) cmdAddPhone(args []string) error {
	if err := s.contacts.AddPhone(args[0], args[1]); err != nil {
		return err
	}
	s.render.Linef("Phone added for %s.", args[0])
	return nil
}

func (s *Shell) cmdRemovePhone(args []string) error {
	if err := s.contacts.RemovePhone(args[0], args[1]); err != nil {
		return err
	}
	s.render.Linef("Phone removed for %s.", args[0])
	return nil
}

func (s *Shell) cmdEditPhone(args []string) error {
	if err := s.contacts.EditPhone(args[0], args[1], args[2]); err != nil {
		return err
	}
	s.render.Linef("Phone updated for %s.", args[0])
	return nil
}

func (s *Shell) cmdEditEmail(args []string) error {
	if err := s.contacts.SetEmail(args[0], args[1]); err != nil {
		return err
	}
	s.render.Linef("Email updated for %s.", args[0])
	return nil
}

func (s *Shell) cmdEditBirthday(args []string) error {
	if err := s.contacts.SetBirthday(args[0], args[1]); err != nil {
		return err
	}
	s.render.Linef("Birthday updated for %s.", args[0])
	return nil
}

func (s *Shell) cmdEditAddress(args []string) error {
	// Unquoted multi-word addresses are accepted: everything after the
	// name is the address.
	if err := s.contacts.SetAddress(args[0], strings.Join(args[1:], " ")); err != nil {
		return err
	}
	s.render.Linef("Address updated for %s.", args[0])
	return nil
}

func (s *Shell) cmdEditName(args []string) error {
	if err := s.contacts.Rename(args[0], args[1]); err != nil {
		return err
	}
	s.render.Linef("Contact renamed to %s.", args[1])
	return nil
}

func (s *Shell) cmdShowContact(args []string) error {
	c, err := s.contacts.Find(args[0])
	if err != nil {
		return err
	}
	s.render.Contact(c)
	return nil
}

func (s *Shell) cmdShowContacts([]string) error {
	s.render.Contacts(s.contacts.All())
	return nil
}

func (s *Shell) cmdShowBirthday(args []string) error {
	c, err := s.contacts.Find(args[0])
	if err != nil {
		return err
	}
	if c.Birthday == nil {
		s.render.Linef("No birthday set for %s.", c.Name)
		return nil
	}
	s.render.Linef("%s: %s", c.Name, c.Birthday)
	return nil
}

func (s *Shell) cmdSearchContacts(args []string) error {
	query := strings.Join(args, " ")
	results := s.contacts.Search(query)
	if len(results) == 0 {
		s.render.Linef("No contacts found matching %q.", query)
		return nil
	}
	s.render.Linef("Found %d contact(s):", len(results))
	s.render.Contacts(results)
	return nil
}

func (s *Shell) cmdDeleteContact(args []string) error {
	if err := s.contacts.Remove(args[0]); err != nil {
		return err
	}
	s.render.Linef("Contact %s deleted.", args[0])
	return nil
}

func (s *Shell) cmdBirthdays(args []string) error {
	window := s.defaultWindow
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: number of days must be a valid integer", apperr.ErrValidation)
		}
		window = n
	}
	today := models.DateOf(s.now())
	reminders, err := s.contacts.Upcoming(today, window)
	if err != nil {
		return err
	}
	s.render.Reminders(reminders, window)
	return nil
}

func (s *Shell) cmdAddNote(args []string) error {
	tags := splitTags(args[2:])
	if _, err := s.notes.Add(args[0], args[1], tags); err != nil {
		return err
	}
	s.render.Linef("Note added: %s", args[0])
	return nil
}

func (s *Shell) cmdEditNote(args []string) error {
	req, err := parseEditNoteFlags(args[1:])
	if err != nil {
		return err
	}
	if err := s.notes.Edit(args[0], req); err != nil {
		return err
	}
	s.render.Linef("Note %q updated.", args[0])
	return nil
}

// parseEditNoteFlags reads the --title/--content/--tags flags of
// edit-note. At least one flag must be present.
func parseEditNoteFlags(args []string) (notebook.EditRequest, error) {
	var req notebook.EditRequest
	for i := 0; i < len(args); i++ {
		flag := args[i]
		if i+1 >= len(args) {
			return req, fmt.Errorf("%w: flag %s needs a value", apperr.ErrValidation, flag)
		}
		value := args[i+1]
		i++
		switch flag {
		case "--title":
			req.Title = &value
		case "--content":
			req.Content = &value
		case "--tags":
			tags := splitTags([]string{value})
			req.Tags = &tags
		default:
			return req, fmt.Errorf("%w: unknown flag %s", apperr.ErrValidation, flag)
		}
	}
	if req.Title == nil && req.Content == nil && req.Tags == nil {
		return req, fmt.Errorf("%w: nothing to change, pass --title, --content, or --tags", apperr.ErrValidation)
	}
	return req, nil
}

// splitTags accepts tags both as separate tokens and as comma lists.
func splitTags(args []string) []string {
	var out []string
	for _, a := range args {
		for _, t := range strings.Split(a, ",") {
			t = strings.TrimSpace(t)
			if t != "" {
				out = append(out, t)
			}
		}
	}
	return out
}

func (s *Shell) cmdAddTag(args []string) error {
	if err := s.notes.AddTag(args[0], args[1]); err != nil {
		return err
	}
	s.render.Linef("Tag %q added to note %q.", args[1], args[0])
	return nil
}

func (s *Shell) cmdRemoveTag(args []string) error {
	removed, err := s.notes.RemoveTag(args[0], args[1])
	if err != nil {
		return err
	}
	if removed {
		s.render.Linef("Tag %q removed from note %q.", args[1], args[0])
	} else {
		s.render.Linef("Note %q does not have tag %q.", args[0], args[1])
	}
	return nil
}

func (s *Shell) cmdShowNote(args []string) error {
	n, err := s.notes.Find(args[0])
	if err != nil {
		return err
	}
	s.render.Note(n)
	return nil
}

func (s *Shell) cmdShowAllNotes([]string) error {
	s.render.Notes(s.notes.All())
	return nil
}

func (s *Shell) cmdSearchNotes(args []string) error {
	query := strings.Join(args, " ")
	results := s.notes.Search(query)
	if len(results) == 0 {
		s.render.Linef("No notes found matching %q.", query)
		return nil
	}
	s.render.Notes(results)
	return nil
}

func (s *Shell) cmdSearchNotesByTag(args []string) error {
	results := s.notes.SearchByTag(args[0])
	if len(results) == 0 {
		s.render.Linef("No notes found with tag %q.", args[0])
		return nil
	}
	s.render.Notes(results)
	return nil
}

func (s *Shell) cmdSortNotesByTag([]string) error {
	count := 0
	for e := range s.notes.SortedByTag() {
		s.render.TagEntry(e)
		count++
	}
	if count == 0 {
		s.render.Linef("No tagged notes.")
	}
	return nil
}

func (s *Shell) cmdRemoveNote(args []string) error {
	if err := s.notes.Remove(args[0]); err != nil {
		return err
	}
	s.render.Linef("Note %q removed.", args[0])
	return nil
}
