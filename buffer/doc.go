// Package buffer implements the editing core: an ordered sequence of rows
// with derived render/highlight views, and a bounded, coalescing undo log.
//
// Coordinates are 0-based (Row, Col). Col counts bytes of a row's raw
// content ("cursor space"); render columns count cells after tab expansion
// ("render space"). The cursor may sit on the virtual row Row == RowCount(),
// one past the last real row.
//
// Every mutation that must be undoable goes through the Buffer's editing
// entry points (InsertChar, DeleteChar, InsertNewline, CutLine, PasteLine,
// FlipUp, FlipDown), which record an Action in the ActionLog. The row-level
// operations (InsertRow, RowInsertString, ...) bypass the log.
package buffer
