package editor

import "github.com/iw2rmb/mel/buffer"

type ChangeEvent struct {
	Change   buffer.Change
	FileName string
	Cursor   buffer.Pos
	RowCount int
	Modified bool
}

func buildChangeEvent(b *buffer.Buffer, ch buffer.Change, fileName string) ChangeEvent {
	return ChangeEvent{
		Change:   ch,
		FileName: fileName,
		Cursor:   b.Cursor(),
		RowCount: b.RowCount(),
		Modified: b.Modified(),
	}
}
