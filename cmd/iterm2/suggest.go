// ABOUTME: "Did you mean" suggestions for mistyped subcommands
// ABOUTME: Ranks known command names with sahilm/fuzzy

package main

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

const maxSuggestions = 3

// suggest returns up to maxSuggestions command names resembling name.
func suggest(name string) []string {
	matches := fuzzy.Find(name, commandNames())
	out := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, m.Str)
	}
	return out
}

func joinOr(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
	}
}
