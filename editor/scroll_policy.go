package editor

// ScrollPolicy controls how viewport scrolling is allowed to move relative to
// the cursor.
type ScrollPolicy int

const (
	// ScrollAllowManual lets the mouse wheel scroll the document even when
	// the cursor does not move.
	ScrollAllowManual ScrollPolicy = iota
	// ScrollFollowCursorOnly keeps vertical movement cursor-driven and
	// ignores the wheel.
	ScrollFollowCursorOnly
)
