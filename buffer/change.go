package buffer

// ChangeSource identifies where a change originated.
type ChangeSource uint8

const (
	ChangeSourceEdit ChangeSource = iota
	ChangeSourceUndo
	ChangeSourceRedo
	ChangeSourceLoad
	ChangeSourceReplace
)

func (s ChangeSource) String() string {
	switch s {
	case ChangeSourceEdit:
		return "edit"
	case ChangeSourceUndo:
		return "undo"
	case ChangeSourceRedo:
		return "redo"
	case ChangeSourceLoad:
		return "load"
	case ChangeSourceReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Change summarizes the most recent document mutation.
type Change struct {
	Source        ChangeSource
	Kind          ActionKind // zero for load and replace
	VersionBefore uint64
	VersionAfter  uint64
	CursorBefore  Pos
	CursorAfter   Pos
	DirtyAfter    int
}

type changeBuilder struct {
	source        ChangeSource
	kind          ActionKind
	versionBefore uint64
	cursorBefore  Pos
}

// LastChange returns the most recent effective change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return b.lastChange, true
}

func (b *Buffer) beginChange(source ChangeSource, kind ActionKind) changeBuilder {
	return changeBuilder{
		source:        source,
		kind:          kind,
		versionBefore: b.version,
		cursorBefore:  b.cursor,
	}
}

func (b *Buffer) commitChange(cb changeBuilder) {
	if b.version == cb.versionBefore {
		return
	}
	b.lastChange = Change{
		Source:        cb.source,
		Kind:          cb.kind,
		VersionBefore: cb.versionBefore,
		VersionAfter:  b.version,
		CursorBefore:  cb.cursorBefore,
		CursorAfter:   b.cursor,
		DirtyAfter:    b.dirty,
	}
	b.hasLastChange = true
}
