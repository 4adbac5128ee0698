package shell

import (
	"errors"
	"testing"

	"github.com/tovven/raido/internal/apperr"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name string
		line string
		cmd  string
		args []string
	}{
		{"simple", "add-contact Ann", "add-contact", []string{"Ann"}},
		{"lowercases command", "ADD-CONTACT Ann", "add-contact", []string{"Ann"}},
		{"quoted argument", `add-note "Shopping List" "milk and eggs" groceries`, "add-note",
			[]string{"Shopping List", "milk and eggs", "groceries"}},
		{"single quotes", `show-note 'Meeting Notes 1'`, "show-note", []string{"Meeting Notes 1"}},
		{"empty", "   ", "", nil},
		{"no args", "help", "help", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, args, err := Tokenize(tc.line)
			if err != nil {
				t.Fatalf("Tokenize: %v", err)
			}
			if cmd != tc.cmd {
				t.Errorf("cmd = %q, want %q", cmd, tc.cmd)
			}
			if len(args) != len(tc.args) {
				t.Fatalf("args = %v, want %v", args, tc.args)
			}
			for i := range tc.args {
				if args[i] != tc.args[i] {
					t.Errorf("args[%d] = %q, want %q", i, args[i], tc.args[i])
				}
			}
		})
	}
}

func TestTokenizeUnbalancedQuote(t *testing.T) {
	_, _, err := Tokenize(`add-note "broken`)
	if !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}
