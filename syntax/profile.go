package syntax

import (
	"path/filepath"
	"sort"
	"strings"
)

// SecondaryMarker terminates keywords of the second display class in a
// Profile's keyword table. The marker is not part of the match.
const SecondaryMarker = '|'

// Profile is the immutable rule table for one language.
type Profile struct {
	Name string

	// FilePatterns starting with '.' match the filename extension exactly;
	// any other pattern matches as a substring of the filename.
	FilePatterns []string

	// Keywords ending in SecondaryMarker are tagged Keyword2, others Keyword1.
	Keywords []string

	LineComment string
	BlockStart  string
	BlockEnd    string

	Numbers bool
	Strings bool
}

// HasBlockComments reports whether both block comment tokens are set.
func (p *Profile) HasBlockComments() bool {
	return p != nil && p.BlockStart != "" && p.BlockEnd != ""
}

// MatchesFilename reports whether any of p's patterns matches name.
func (p *Profile) MatchesFilename(name string) bool {
	if p == nil || name == "" {
		return false
	}
	ext := filepath.Ext(name)
	for _, pat := range p.FilePatterns {
		if pat == "" {
			continue
		}
		if pat[0] == '.' {
			if ext != "" && ext == pat {
				return true
			}
			continue
		}
		if strings.Contains(name, pat) {
			return true
		}
	}
	return false
}

type keyword struct {
	text      string
	secondary bool
}

// compileKeywords splits the marker off each entry and orders the table
// longest first, so the first hit during a scan is the longest match.
func compileKeywords(table []string) []keyword {
	out := make([]keyword, 0, len(table))
	for _, kw := range table {
		secondary := false
		if n := len(kw); n > 0 && kw[n-1] == SecondaryMarker {
			kw = kw[:n-1]
			secondary = true
		}
		if kw == "" {
			continue
		}
		out = append(out, keyword{text: kw, secondary: secondary})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].text) > len(out[j].text)
	})
	return out
}
