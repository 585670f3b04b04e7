package syntax

import "strings"

// DB is the built-in profile table, searched in order by Match.
var DB = []*Profile{
	{
		Name:         "c",
		FilePatterns: []string{".c", ".h", ".cpp", ".hpp", ".cc"},
		Keywords: []string{
			"switch", "if", "while", "for", "break", "continue", "return", "else",
			"struct", "union", "typedef", "static", "enum", "case", "#include",
			"volatile", "register", "sizeof", "goto", "const", "auto",
			"#define", "#if", "#endif", "#error", "#ifdef", "#ifndef", "#undef",
			"asm", "true", "false", "inline",

			"class", "namespace", "using", "catch", "delete", "explicit",
			"export", "friend", "mutable", "new", "public", "protected",
			"private", "operator", "this", "template", "virtual", "throw",
			"try", "typeid",

			"int|", "long|", "double|", "float|", "char|", "unsigned|", "signed|",
			"void|", "bool|",
		},
		LineComment: "//",
		BlockStart:  "/*",
		BlockEnd:    "*/",
		Numbers:     true,
		Strings:     true,
	},
	{
		Name:         "java",
		FilePatterns: []string{".java"},
		Keywords: []string{
			"switch", "if", "while", "for", "break", "continue", "return", "else",
			"in", "public", "private", "protected", "static", "final", "abstract",
			"enum", "class", "case", "try", "catch", "do", "extends", "implements",
			"finally", "import", "instanceof", "interface", "new", "package", "super",
			"native", "strictfp",
			"synchronized", "this", "throw", "throws", "transient", "volatile",

			"byte|", "char|", "double|", "float|", "int|", "long|", "short|",
			"boolean|",
		},
		LineComment: "//",
		BlockStart:  "/*",
		BlockEnd:    "*/",
		Numbers:     true,
		Strings:     true,
	},
	{
		Name:         "python",
		FilePatterns: []string{".py", ".pyw", ".py3", ".pyc", ".pyo"},
		Keywords: []string{
			"and", "as", "assert", "break", "class", "continue", "def", "del", "elif",
			"else", "except", "exec", "finally", "for", "from", "global", "if", "import",
			"in", "is", "lambda", "not", "or", "pass", "print", "raise", "return", "try",
			"while", "with", "yield",

			"buffer|", "bytearray|", "complex|", "False|", "float|", "frozenset|", "int|",
			"list|", "long|", "None|", "set|", "str|", "tuple|", "True|", "type|",
			"unicode|", "xrange|",
		},
		LineComment: "#",
		BlockStart:  "'''",
		BlockEnd:    "'''",
		Numbers:     true,
		Strings:     true,
	},
	{
		Name:         "bash",
		FilePatterns: []string{".sh"},
		Keywords:     shellKeywords,
		LineComment:  "#",
		Numbers:      true,
		Strings:      true,
	},
	{
		Name:         "js",
		FilePatterns: []string{".js", ".jsx"},
		Keywords: []string{
			"break", "case", "catch", "class", "const", "continue", "debugger", "default",
			"delete", "do", "else", "enum", "export", "extends", "finally", "for", "function",
			"if", "implements", "import", "in", "instanceof", "interface", "let", "new",
			"package", "private", "protected", "public", "return", "static", "super", "switch",
			"this", "throw", "try", "typeof", "var", "void", "while", "with", "yield", "true",
			"false", "null", "NaN", "global", "window", "prototype", "constructor", "document",
			"isNaN", "arguments", "undefined",

			"Infinity|", "Array|", "Object|", "Number|", "String|", "Boolean|", "Function|",
			"ArrayBuffer|", "DataView|", "Float32Array|", "Float64Array|", "Int8Array|",
			"Int16Array|", "Int32Array|", "Uint8Array|", "Uint8ClampedArray|", "Uint32Array|",
			"Date|", "Error|", "Map|", "RegExp|", "Symbol|", "WeakMap|", "WeakSet|", "Set|",
		},
		LineComment: "//",
		BlockStart:  "/*",
		BlockEnd:    "*/",
		Numbers:     true,
		Strings:     true,
	},
	{
		Name:         "php",
		FilePatterns: []string{".php", ".phtml"},
		Keywords: []string{
			"__halt_compiler", "break", "clone", "die", "empty", "endswitch", "final", "global",
			"include_once", "list", "private", "return", "try", "xor", "abstract", "callable",
			"const", "do", "enddeclare", "endwhile", "finally", "goto", "instanceof", "namespace",
			"protected", "static", "unset", "yield", "and", "case", "continue", "echo", "endfor",
			"eval", "for", "if", "insteadof", "new", "public", "switch", "use", "array", "catch",
			"declare", "else", "endforeach", "exit", "foreach", "implements", "interface", "or",
			"require", "throw", "var", "as", "class", "default", "elseif", "endif", "extends",
			"function", "include", "isset", "print", "require_once", "trait", "while",
		},
		LineComment: "//",
		BlockStart:  "/*",
		BlockEnd:    "*/",
		Numbers:     true,
		Strings:     true,
	},
	{
		Name:         "json",
		FilePatterns: []string{".json", ".jsonp"},
		Numbers:      true,
		Strings:      true,
	},
	{
		Name:         "xml",
		FilePatterns: []string{".xml"},
		Numbers:      true,
		Strings:      true,
	},
	{
		Name:         "sql",
		FilePatterns: []string{".sql"},
		Keywords:     sqlKeywords(),
		LineComment:  "--",
		BlockStart:   "/*",
		BlockEnd:     "*/",
		Numbers:      true,
		Strings:      true,
	},
	{
		Name:         "ruby",
		FilePatterns: []string{".rb"},
		Keywords: []string{
			"__ENCODING__", "__LINE__", "__FILE__", "BEGIN", "END", "alias", "and", "begin", "break",
			"case", "class", "def", "defined?", "do", "else", "elsif", "end", "ensure", "for", "if",
			"in", "module", "next", "not", "or", "redo", "rescue", "retry", "return", "self", "super",
			"then", "undef", "unless", "until", "when", "while", "yield",
		},
		LineComment: "#",
		BlockStart:  "=begin",
		BlockEnd:    "=end",
		Numbers:     true,
		Strings:     true,
	},
	{
		Name:         "go",
		FilePatterns: []string{".go"},
		Keywords: []string{
			"break", "case", "chan", "const", "continue", "default", "defer", "else", "fallthrough", "for",
			"func", "go", "goto", "if", "import", "interface", "map", "package", "range", "return", "select",
			"struct", "switch", "type", "var", "nil", "true", "false",

			"bool|", "byte|", "error|", "float32|", "float64|", "int|", "int8|", "int16|", "int32|",
			"int64|", "rune|", "string|", "uint|", "uint8|", "uint16|", "uint32|", "uint64|", "any|",
		},
		LineComment: "//",
		BlockStart:  "/*",
		BlockEnd:    "*/",
		Numbers:     true,
		Strings:     true,
	},
	{
		Name:         "mshell",
		FilePatterns: []string{".ms"},
		Keywords:     shellKeywords,
		LineComment:  "#",
		Numbers:      true,
		Strings:      true,
	},
}

var shellKeywords = []string{
	"case", "do", "done", "elif", "else", "esac", "fi", "for", "function", "if",
	"in", "select", "then", "time", "until", "while", "alias", "bg", "bind", "break",
	"builtin", "cd", "command", "continue", "declare", "dirs", "disown", "echo",
	"enable", "eval", "exec", "exit", "export", "fc", "fg", "getopts", "hash", "help",
	"history", "jobs", "kill", "let", "local", "logout", "popd", "pushd", "pwd", "read",
	"readonly", "return", "set", "shift", "suspend", "test", "times", "trap", "type",
	"typeset", "ulimit", "umask", "unalias", "unset", "wait", "printf",
}

// sqlKeywords lists every SQL keyword in upper and lower case.
func sqlKeywords() []string {
	upper := []string{
		"SELECT", "FROM", "DROP", "CREATE", "TABLE", "DEFAULT", "FOREIGN", "UPDATE", "LOCK",
		"INSERT", "INTO", "VALUES", "UNLOCK", "WHERE", "DISTINCT", "BETWEEN", "NOT",
		"NULL", "TO", "ON", "ORDER", "GROUP", "IF", "BY", "HAVING", "USING", "UNION", "UNIQUE",
		"AUTO_INCREMENT", "LIKE", "WITH", "INNER", "OUTER", "JOIN", "COLUMN", "DATABASE", "EXISTS",
		"NATURAL", "LIMIT", "UNSIGNED", "MAX", "MIN", "PRECISION", "ALTER", "DELETE", "CASCADE",
		"PRIMARY", "KEY", "CONSTRAINT", "ENGINE", "CHARSET", "REFERENCES", "WRITE",

		"BIT|", "TINYINT|", "BOOL|", "BOOLEAN|", "SMALLINT|", "MEDIUMINT|", "INT|", "INTEGER|",
		"BIGINT|", "DOUBLE|", "DECIMAL|", "DEC|", "FLOAT|", "DATE|", "DATETIME|", "TIMESTAMP|",
		"TIME|", "YEAR|", "CHAR|", "VARCHAR|", "TEXT|", "ENUM|", "SET|", "BLOB|", "VARBINARY|",
		"TINYBLOB|", "TINYTEXT|", "MEDIUMBLOB|", "MEDIUMTEXT|", "LONGTEXT|",
	}
	out := make([]string, 0, 2*len(upper))
	out = append(out, upper...)
	for _, kw := range upper {
		out = append(out, strings.ToLower(kw))
	}
	return out
}

// Lookup returns the built-in profile called name.
func Lookup(name string) (*Profile, bool) {
	for _, p := range DB {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// Match returns the first built-in profile whose patterns match filename,
// or nil when no profile applies.
func Match(filename string) *Profile {
	for _, p := range DB {
		if p.MatchesFilename(filename) {
			return p
		}
	}
	return nil
}
