package syntax

// Tag classifies one byte of a row's render form.
type Tag uint8

const (
	Normal Tag = iota
	LineComment
	BlockComment
	Keyword1
	Keyword2
	String
	Number
	SearchMatch
)

func (t Tag) String() string {
	switch t {
	case Normal:
		return "normal"
	case LineComment:
		return "comment"
	case BlockComment:
		return "block-comment"
	case Keyword1:
		return "keyword1"
	case Keyword2:
		return "keyword2"
	case String:
		return "string"
	case Number:
		return "number"
	case SearchMatch:
		return "match"
	default:
		return "unknown"
	}
}

// IsComment reports whether t is either comment class.
func (t Tag) IsComment() bool {
	return t == LineComment || t == BlockComment
}
