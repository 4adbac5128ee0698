// Package apperr defines the error taxonomy shared by the stores and the shell.
package apperr

import "errors"

var (
	// ErrNotFound reports a lookup by identifier that matched nothing.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate reports a create or rename that collides with an
	// existing identifier.
	ErrDuplicate = errors.New("already exists")
	// ErrValidation reports a malformed value: phone, email, date, or a
	// bad argument such as a negative day count.
	ErrValidation = errors.New("invalid value")
	// ErrUnknownCommand reports an input line whose first token matches
	// no registered command.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrArity reports a command invoked with too few arguments.
	ErrArity = errors.New("missing argument")
)
