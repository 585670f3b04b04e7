// Package filetype resolves which syntax profile applies to a file.
//
// Resolution tries, in order: the built-in profile patterns, the chroma
// lexer registry (by filename), then go-enry (by extension, then by shebang
// and modeline in the file's first lines).
package filetype

import (
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/go-enry/go-enry/v2"

	"github.com/iw2rmb/mel/syntax"
)

// Method names how a profile was resolved.
type Method string

const (
	MethodNone     Method = ""
	MethodPattern  Method = "pattern"
	MethodChroma   Method = "chroma"
	MethodEnry     Method = "extension"
	MethodShebang  Method = "shebang"
	MethodModeline Method = "modeline"
)

// Result is the outcome of Detect. Profile is nil when nothing matched.
type Result struct {
	Profile *syntax.Profile
	Method  Method
	// Language is the external name that led to Profile, for logging.
	Language string
}

// aliases maps lowercased chroma/enry language names to profile names.
var aliases = map[string]string{
	"c":           "c",
	"c++":         "c",
	"cpp":         "c",
	"objective-c": "c",
	"java":        "java",
	"python":      "python",
	"python3":     "python",
	"py":          "python",
	"bash":        "bash",
	"sh":          "bash",
	"shell":       "bash",
	"zsh":         "bash",
	"ksh":         "bash",
	"javascript":  "js",
	"js":          "js",
	"typescript":  "js",
	"jsx":         "js",
	"php":         "php",
	"json":        "json",
	"xml":         "xml",
	"html":        "xml",
	"svg":         "xml",
	"sql":         "sql",
	"mysql":       "sql",
	"postgresql":  "sql",
	"plpgsql":     "sql",
	"sqlite3":     "sql",
	"ruby":        "ruby",
	"rb":          "ruby",
	"go":          "go",
	"golang":      "go",
}

// ProfileFor maps an external language name (chroma lexer name or alias,
// enry language) onto a built-in profile.
func ProfileFor(language string) (*syntax.Profile, bool) {
	name, ok := aliases[strings.ToLower(language)]
	if !ok {
		return nil, false
	}
	return syntax.Lookup(name)
}

// Detect resolves the profile for filename. head is the beginning of the
// file's content and may be nil.
func Detect(filename string, head []byte) Result {
	if filename != "" {
		if p := syntax.Match(filename); p != nil {
			return Result{Profile: p, Method: MethodPattern, Language: p.Name}
		}
		if r, ok := byChroma(filename); ok {
			return r
		}
		if lang, safe := enry.GetLanguageByExtension(filename); safe {
			if p, ok := ProfileFor(lang); ok {
				return Result{Profile: p, Method: MethodEnry, Language: lang}
			}
		}
	}
	if len(head) == 0 {
		return Result{}
	}
	if lang, safe := enry.GetLanguageByShebang(head); safe {
		if p, ok := ProfileFor(lang); ok {
			return Result{Profile: p, Method: MethodShebang, Language: lang}
		}
	}
	if lang, safe := enry.GetLanguageByModeline(head); safe {
		if p, ok := ProfileFor(lang); ok {
			return Result{Profile: p, Method: MethodModeline, Language: lang}
		}
	}
	return Result{}
}

func byChroma(filename string) (Result, bool) {
	lexer := lexers.Match(filename)
	if lexer == nil {
		return Result{}, false
	}
	cfg := lexer.Config()
	names := append([]string{cfg.Name}, cfg.Aliases...)
	for _, n := range names {
		if p, ok := ProfileFor(n); ok {
			return Result{Profile: p, Method: MethodChroma, Language: cfg.Name}, true
		}
	}
	return Result{}, false
}
