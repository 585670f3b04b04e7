package buffer

import list "github.com/bahlo/generic-list-go"

// ActionLog is the undo/redo history: an ordered list of actions plus a
// current marker. Actions up to and including current have been applied;
// actions after it are redoable. A nil current means nothing is applied.
type ActionLog struct {
	limit   int
	actions *list.List[Action]
	current *list.Element[Action]
}

func newActionLog(limit int) *ActionLog {
	return &ActionLog{limit: limit, actions: list.New[Action]()}
}

// Limit is the capacity: HistoryDisabled, HistoryUnlimited, or a positive
// number of actions.
func (l *ActionLog) Limit() int { return l.limit }

func (l *ActionLog) Len() int { return l.actions.Len() }

// Actions lists the recorded actions, oldest first.
func (l *ActionLog) Actions() []Action {
	out := make([]Action, 0, l.actions.Len())
	for e := l.actions.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value)
	}
	return out
}

// Current returns the most recently applied action.
func (l *ActionLog) Current() (Action, bool) {
	if l.current == nil {
		return nil, false
	}
	return l.current.Value, true
}

func (l *ActionLog) clear() {
	l.actions.Init()
	l.current = nil
}

// append drops every action after current, pushes a, and evicts the oldest
// action when the log is over capacity.
func (l *ActionLog) append(a Action) {
	if l.limit == HistoryDisabled {
		return
	}
	if l.current != l.actions.Back() {
		e := l.actions.Front()
		if l.current != nil {
			e = l.current.Next()
		}
		for e != nil {
			next := e.Next()
			l.actions.Remove(e)
			e = next
		}
	}
	l.current = l.actions.PushBack(a)
	if l.limit > 0 && l.actions.Len() > l.limit {
		l.actions.Remove(l.actions.Front())
	}
}

// coalescable returns the insertion that typing at cur would extend: the
// applied tail action, when it is an InsertCharAction on the same row ending
// exactly at cur.
func (l *ActionLog) coalescable(cur Pos) (*InsertCharAction, bool) {
	if l.limit == HistoryDisabled || l.current == nil || l.current != l.actions.Back() {
		return nil, false
	}
	ins, ok := l.current.Value.(*InsertCharAction)
	if !ok {
		return nil, false
	}
	if ins.Pos.Row != cur.Row || ins.Pos.Col+len(ins.Text) != cur.Col {
		return nil, false
	}
	return ins, true
}

func (l *ActionLog) canUndo() bool {
	return l.limit != HistoryDisabled && l.current != nil
}

func (l *ActionLog) canRedo() bool {
	if l.limit == HistoryDisabled {
		return false
	}
	if l.current == nil {
		return l.actions.Front() != nil
	}
	return l.current.Next() != nil
}

func (l *ActionLog) undo(b *Buffer) (Action, bool) {
	if !l.canUndo() {
		return nil, false
	}
	a := l.current.Value
	a.revert(b)
	l.current = l.current.Prev()
	if l.current == nil {
		b.dirty = 0
	}
	return a, true
}

func (l *ActionLog) redo(b *Buffer) (Action, bool) {
	if !l.canRedo() {
		return nil, false
	}
	next := l.actions.Front()
	if l.current != nil {
		next = l.current.Next()
	}
	next.Value.execute(b)
	l.current = next
	return next.Value, true
}

// Undo reverts the current action and steps back. When no applied action
// remains the modification counter is reset, even if older actions were
// evicted from the log.
func (b *Buffer) Undo() bool {
	cb := b.beginChange(ChangeSourceUndo, 0)
	a, ok := b.log.undo(b)
	if !ok {
		return false
	}
	cb.kind = a.Kind()
	b.version++
	b.commitChange(cb)
	return true
}

// Redo reapplies the action after current, or the first action when
// nothing is applied.
func (b *Buffer) Redo() bool {
	cb := b.beginChange(ChangeSourceRedo, 0)
	a, ok := b.log.redo(b)
	if !ok {
		return false
	}
	cb.kind = a.Kind()
	b.version++
	b.commitChange(cb)
	return true
}
