package shell

import (
	"fmt"
	"strings"

	"github.com/google/shlex"

	"github.com/tovven/raido/internal/apperr"
)

// Tokenize splits an input line into a command name and its arguments.
// Quoted segments stay together, so `add-note "Shopping list" ...`
// yields a single title token. The command name is lowercased; an
// empty or blank line yields an empty command.
func Tokenize(line string) (string, []string, error) {
	if strings.TrimSpace(line) == "" {
		return "", nil, nil
	}
	tokens, err := shlex.Split(line)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %s", apperr.ErrValidation, err)
	}
	if len(tokens) == 0 {
		return "", nil, nil
	}
	return strings.ToLower(tokens[0]), tokens[1:], nil
}
