package shell

import "github.com/sahilm/fuzzy"

// suggest returns the closest registered command name to input, or ""
// when nothing matches well enough to be worth proposing.
func suggest(input string, names []string) string {
	matches := fuzzy.Find(input, names)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}
