package editor

import "rigidedit/internal/engine"

const defaultUndoDepth = 50

// UndoKind is the type of edit an UndoState reverts.
type UndoKind int

const (
	UndoTransform UndoKind = iota
	UndoDelete
)

// UndoState captures an object before an edit. For UndoDelete, Object holds
// a copy of the destroyed object so it can be added back.
type UndoState struct {
	Kind      UndoKind
	Handle    engine.Handle
	Transform engine.Transform
	Object    *engine.Object
}

// UndoStack is a capped LIFO of snapshots. The oldest entry is dropped once
// the cap is reached.
type UndoStack struct {
	states []UndoState
	depth  int
}

func NewUndoStack(depth int) *UndoStack {
	if depth <= 0 {
		depth = defaultUndoDepth
	}
	return &UndoStack{depth: depth}
}

func (u *UndoStack) Push(state UndoState) {
	if len(u.states) >= u.depth {
		u.states = u.states[1:]
	}
	u.states = append(u.states, state)
}

func (u *UndoStack) Pop() (UndoState, bool) {
	if len(u.states) == 0 {
		return UndoState{}, false
	}
	state := u.states[len(u.states)-1]
	u.states = u.states[:len(u.states)-1]
	return state, true
}

// Remap points older snapshots of a re-added object at its new handle.
func (u *UndoStack) Remap(from, to engine.Handle) {
	for i := range u.states {
		if u.states[i].Handle == from {
			u.states[i].Handle = to
		}
	}
}

func (u *UndoStack) Len() int {
	return len(u.states)
}
