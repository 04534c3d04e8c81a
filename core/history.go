package core

// Snapshot is an independent copy of everything undo restores: the buffer
// with its cursor, the clipboard and the display toggles.
type Snapshot struct {
	buffer         Buffer
	clipboard      string
	hasClipboard   bool
	showRowCursor  bool
	showLineCursor bool
}

// History is a LIFO stack of snapshots. A limit of zero keeps every snapshot;
// a positive limit drops the oldest ones first.
type History struct {
	snapshots []Snapshot
	limit     int
}

func NewHistory(limit int) *History {
	return &History{limit: max(limit, 0)}
}

// Push adds a snapshot on top of the stack.
func (h *History) Push(s Snapshot) {
	h.snapshots = append(h.snapshots, s)

	// Limit history size
	if h.limit > 0 && len(h.snapshots) > h.limit {
		h.snapshots = h.snapshots[len(h.snapshots)-h.limit:]
	}
}

// Pop removes and returns the most recent snapshot.
func (h *History) Pop() (Snapshot, error) {
	if len(h.snapshots) == 0 {
		return Snapshot{}, ErrNothingToUndo
	}

	last := len(h.snapshots) - 1
	s := h.snapshots[last]
	h.snapshots[last] = Snapshot{}
	h.snapshots = h.snapshots[:last]

	return s, nil
}

func (h *History) Len() int {
	return len(h.snapshots)
}

// Clear drops every snapshot.
func (h *History) Clear() {
	h.snapshots = nil
}
