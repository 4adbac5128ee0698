// Package shell implements the interactive command session: a
// line-oriented dispatcher over the contact and note stores.
package shell

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/tovven/raido/internal/apperr"
	"github.com/tovven/raido/internal/contactbook"
	"github.com/tovven/raido/internal/notebook"
	"github.com/tovven/raido/internal/storage"
)

type saveTarget int

const (
	saveNone saveTarget = iota
	saveContacts
	saveNotes
)

// command describes one registered shell command.
type command struct {
	name        string
	usage       string
	description string
	category    string
	args        []string // required positional arguments, in order
	save        saveTarget
	run         func(args []string) error
}

// Params collects the collaborators a Shell needs.
type Params struct {
	Contacts      *contactbook.Book
	Notes         *notebook.Book
	Store         storage.Provider
	In            io.Reader
	Out           io.Writer
	Logger        *slog.Logger
	DefaultWindow int              // birthdays lookahead when no argument is given
	Now           func() time.Time // nil means time.Now
}

// Shell reads lines, dispatches them to store operations, and renders
// the results. It is single-threaded: each line is fully processed
// before the next is read.
type Shell struct {
	contacts      *contactbook.Book
	notes         *notebook.Book
	store         storage.Provider
	render        *Renderer
	log           *slog.Logger
	in            io.Reader
	defaultWindow int
	now           func() time.Time

	commands map[string]*command
	order    []string // registration order, for help

	exiting  bool
	saveOnce sync.Once
}

// New creates a shell and registers the command set.
func New(p Params) *Shell {
	s := &Shell{
		contacts:      p.Contacts,
		notes:         p.Notes,
		store:         p.Store,
		render:        NewRenderer(p.Out),
		log:           p.Logger,
		in:            p.In,
		defaultWindow: p.DefaultWindow,
		now:           p.Now,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	s.commands = make(map[string]*command)
	s.registerAll()
	return s
}

func (s *Shell) register(c *command) {
	s.commands[c.name] = c
	s.order = append(s.order, c.name)
}

// Run drives the read-dispatch loop until the exit command, end of
// input, or context cancellation. The final save runs exactly once on
// every path; its failure is the only fatal outcome.
func (s *Shell) Run(ctx context.Context) error {
	s.render.Header("Welcome to raido. Type 'help' to list commands.")

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		scanErr <- scanner.Err()
		close(lines)
	}()

	for {
		select {
		case <-ctx.Done():
			return s.finalSave()
		case line, ok := <-lines:
			if !ok {
				if err := <-scanErr; err != nil {
					s.log.Warn("input read failed", slog.String("error", err.Error()))
				}
				return s.finalSave()
			}
			if exit := s.Dispatch(line); exit {
				return s.finalSave()
			}
		}
	}
}

// Dispatch parses and executes one input line. It never panics or
// terminates the loop on malformed input; every failure is rendered
// and the session continues. The return value reports whether the
// exit command was issued.
func (s *Shell) Dispatch(line string) bool {
	name, args, err := Tokenize(line)
	if err != nil {
		s.render.Errorf("%s", err)
		return false
	}
	if name == "" {
		return false
	}

	cmd, ok := s.commands[name]
	if !ok {
		msg := fmt.Sprintf("%s: %q", apperr.ErrUnknownCommand, name)
		if alt := suggest(name, s.order); alt != "" {
			msg += fmt.Sprintf(". Did you mean %q?", alt)
		}
		s.render.Errorf("%s", msg)
		return false
	}

	if len(args) < len(cmd.args) {
		s.render.Errorf("%s: %s. Usage: %s", apperr.ErrArity, cmd.args[len(args)], cmd.usage)
		return false
	}

	if err := cmd.run(args); err != nil {
		s.render.Errorf("%s", err)
		return false
	}

	if cmd.save != saveNone {
		if err := s.save(cmd.save); err != nil {
			s.log.Warn("autosave failed", slog.String("command", name), slog.String("error", err.Error()))
		}
	}
	return s.exiting
}

// save persists one store snapshot.
func (s *Shell) save(target saveTarget) error {
	var (
		key string
		v   any
	)
	switch target {
	case saveContacts:
		key, v = storage.KeyContacts, s.contacts
	case saveNotes:
		key, v = storage.KeyNotes, s.notes
	default:
		return nil
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.store.Save(key, data)
}

// finalSave persists both stores once, no matter how many shutdown
// paths race to it.
func (s *Shell) finalSave() error {
	var err error
	s.saveOnce.Do(func() {
		if e := s.save(saveContacts); e != nil {
			err = e
			return
		}
		if e := s.save(saveNotes); e != nil {
			err = e
			return
		}
		s.log.Info("stores saved",
			slog.Int("contacts", s.contacts.Len()),
			slog.Int("notes", s.notes.Len()))
	})
	if err != nil {
		return fmt.Errorf("save on exit: %w", err)
	}
	return nil
}

// LoadBooks fills both stores from the provider. A missing snapshot
// yields an empty store; any other failure is fatal to startup.
func LoadBooks(store storage.Provider, contacts *contactbook.Book, notes *notebook.Book) error {
	if err := loadInto(store, storage.KeyContacts, contacts); err != nil {
		return err
	}
	return loadInto(store, storage.KeyNotes, notes)
}

func loadInto(store storage.Provider, key string, v json.Unmarshaler) error {
	data, err := store.Load(key)
	if errors.Is(err, storage.ErrNoSnapshot) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if err := v.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}
