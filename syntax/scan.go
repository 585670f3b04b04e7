package syntax

import (
	"bytes"
	"strings"
)

const separators = ",.()+-/*=~%<>[]:;"

// IsSeparator reports whether c delimits keywords and numbers. NUL counts as
// a separator so the end of a row terminates a token.
func IsSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r', 0:
		return true
	}
	return strings.IndexByte(separators, c) >= 0
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// isNumberContinuation covers fractions and hex/float suffix letters.
func isNumberContinuation(c byte) bool {
	switch c {
	case '.', 'x', 'a', 'b', 'c', 'd', 'e', 'f':
		return true
	}
	return false
}

// Scanner tags rows for one Profile. A nil Profile tags everything Normal.
type Scanner struct {
	profile  *Profile
	keywords []keyword
}

func NewScanner(p *Profile) *Scanner {
	s := &Scanner{profile: p}
	if p != nil {
		s.keywords = compileKeywords(p.Keywords)
	}
	return s
}

// Profile returns the profile the scanner was built for, or nil.
func (s *Scanner) Profile() *Profile {
	if s == nil {
		return nil
	}
	return s.profile
}

// Scan classifies every byte of render. inComment is the continuation flag of
// the previous row. The returned slice has len(render) entries and reuses
// dst's storage when it is large enough; open reports whether the row ends
// inside an unterminated block comment.
func (s *Scanner) Scan(render []byte, inComment bool, dst []Tag) (tags []Tag, open bool) {
	n := len(render)
	if cap(dst) >= n {
		tags = dst[:n]
	} else {
		tags = make([]Tag, n)
	}
	for i := range tags {
		tags[i] = Normal
	}

	p := s.Profile()
	if p == nil {
		return tags, false
	}

	lineTok := []byte(p.LineComment)
	blockStart := []byte(p.BlockStart)
	blockEnd := []byte(p.BlockEnd)
	blocks := p.HasBlockComments()

	prevSep := true
	var quote byte
	i := 0
	for i < n {
		c := render[i]
		prevTag := Normal
		if i > 0 {
			prevTag = tags[i-1]
		}

		if len(lineTok) > 0 && quote == 0 && !inComment && bytes.HasPrefix(render[i:], lineTok) {
			fill(tags[i:], LineComment)
			break
		}

		if blocks && quote == 0 {
			if inComment {
				if bytes.HasPrefix(render[i:], blockEnd) {
					fill(tags[i:i+len(blockEnd)], BlockComment)
					i += len(blockEnd)
					inComment = false
					prevSep = true
					continue
				}
				tags[i] = BlockComment
				i++
				continue
			}
			if bytes.HasPrefix(render[i:], blockStart) {
				fill(tags[i:i+len(blockStart)], BlockComment)
				i += len(blockStart)
				inComment = true
				continue
			}
		}

		if p.Strings {
			if quote != 0 {
				tags[i] = String
				if c == '\\' && i+1 < n {
					tags[i+1] = String
					i += 2
					continue
				}
				if c == quote {
					quote = 0
				}
				i++
				prevSep = true
				continue
			}
			if c == '"' || c == '\'' {
				quote = c
				tags[i] = String
				i++
				continue
			}
		}

		if p.Numbers {
			if (isDigit(c) && (prevSep || prevTag == Number)) ||
				(isNumberContinuation(c) && prevTag == Number) {
				tags[i] = Number
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if kw, ok := s.keywordAt(render, i); ok {
				t := Keyword1
				if kw.secondary {
					t = Keyword2
				}
				fill(tags[i:i+len(kw.text)], t)
				i += len(kw.text)
				prevSep = false
				continue
			}
		}

		prevSep = IsSeparator(c)
		i++
	}

	return tags, inComment
}

func (s *Scanner) keywordAt(render []byte, i int) (keyword, bool) {
	for _, kw := range s.keywords {
		end := i + len(kw.text)
		if end > len(render) {
			continue
		}
		if string(render[i:end]) != kw.text {
			continue
		}
		next := byte(0)
		if end < len(render) {
			next = render[end]
		}
		if IsSeparator(next) {
			return kw, true
		}
	}
	return keyword{}, false
}

func fill(tags []Tag, t Tag) {
	for i := range tags {
		tags[i] = t
	}
}
