// Package voice turns one spoken transcript into catalog items to add, and
// models the capture session around it. Speech-to-text itself is an
// external collaborator behind the Recognizer interface.
package voice

import (
	"regexp"
	"strings"

	"listinha/internal/catalog"
)

// The separators are locale-specific: a comma, or the Portuguese
// conjunction "e" between spaces. "adicionar arroz, feijão e ovos".
var (
	verbPattern      = regexp.MustCompile(`^(adicionar|adicione)\s+`)
	separatorPattern = regexp.MustCompile(`\s*,\s*|\s+e\s+`)
)

// Command is the parsed outcome of one transcript.
type Command struct {
	// Matches are the catalog items to add, in spoken order. Items whose
	// name is already on the list have been dropped.
	Matches []catalog.Item
	// HadFragments is true when the transcript contained at least one
	// non-empty fragment. It distinguishes "nothing new found" feedback
	// from silence on an empty command.
	HadFragments bool
}

// Interpret parses a free-text transcript. Fragments that match no catalog
// item are silently dropped; matched items already on the list (per inList,
// case-insensitive) are dropped too, honoring the no-duplicate invariant.
func Interpret(transcript string, inList func(name string) bool) Command {
	clean := verbPattern.ReplaceAllString(strings.ToLower(strings.TrimSpace(transcript)), "")

	var cmd Command
	for _, fragment := range separatorPattern.Split(clean, -1) {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}
		cmd.HadFragments = true

		item, ok := catalog.Find(fragment)
		if !ok {
			continue
		}
		if inList != nil && inList(item.Name) {
			continue
		}
		cmd.Matches = append(cmd.Matches, item)
	}
	return cmd
}

// Names returns the matched item names, for joint user feedback.
func (c Command) Names() []string {
	names := make([]string, 0, len(c.Matches))
	for _, it := range c.Matches {
		names = append(names, it.Name)
	}
	return names
}
