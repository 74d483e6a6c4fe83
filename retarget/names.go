package retarget

import (
	"regexp"
	"strings"

	"github.com/mogaika/creature_retargeter/animdata"
)

// FindNames reports whether text contains any of patterns, ignoring case.
func FindNames(text string, patterns []string) bool {
	lower := strings.ToLower(text)
	for _, p := range patterns {
		if p != "" && strings.Contains(lower, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

// ReplaceNames replaces every occurrence of every pattern with replacement,
// ignoring case. Patterns are applied one after another.
func ReplaceNames(text string, patterns []string, replacement string) string {
	for _, p := range patterns {
		if p == "" {
			continue
		}
		re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(p))
		text = re.ReplaceAllLiteralString(text, replacement)
	}
	return text
}

// CreateFormID renames src when it mentions one of patterns and prefixes it
// with replacement otherwise, so the result never equals src.
func CreateFormID(src string, patterns []string, replacement string) string {
	if FindNames(src, patterns) {
		return ReplaceNames(src, patterns, replacement)
	}
	return replacement + src
}

// Substitution is an exact, case sensitive text replacement.
type Substitution struct {
	Old string
	New string
}

type Substitutions []Substitution

// Add appends a substitution. Empty, no-op and already mapped sources are ignored.
func (subs *Substitutions) Add(from, to string) {
	if from == "" || from == to {
		return
	}
	for _, s := range *subs {
		if s.Old == from {
			return
		}
	}
	*subs = append(*subs, Substitution{Old: from, New: to})
}

func (subs Substitutions) Apply(text string) string {
	for _, s := range subs {
		text = strings.ReplaceAll(text, s.Old, s.New)
	}
	return text
}

// RenameAllOccurrences rewrites the names inside b by serializing it, replacing
// patterns with replacement, applying extra and parsing the result back into b.
//
// This is plain substring substitution over the whole text: a name that merely
// contains a pattern ("Bearded" for "Bear") is rewritten as well.
func RenameAllOccurrences(b animdata.Block, patterns []string, replacement string, extra Substitutions) error {
	text, err := animdata.BlockString(b)
	if err != nil {
		return err
	}
	text = ReplaceNames(text, patterns, replacement)
	text = extra.Apply(text)
	return animdata.ReadBlockString(b, text)
}
