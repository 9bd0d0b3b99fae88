package engine

import "fmt"

// Handle is a weak reference to an Object in a Scene.
// The zero Handle refers to nothing. A handle stops resolving once its object
// is destroyed, even if the slot is later reused.
//
// Example:
//
//	if obj, ok := scene.Resolve(h); ok {
//	    obj.Transform.Position = obj.Transform.Position.Add(offset)
//	}
type Handle struct {
	Index      uint32
	Generation uint32 // 0 = none; live slots start at 1
}

// IsNil returns true if the handle was never assigned.
// Note: a non-nil handle may still be stale; use Scene.Resolve to check.
func (h Handle) IsNil() bool {
	return h.Generation == 0
}

func (h Handle) String() string {
	if h.IsNil() {
		return "none"
	}
	return fmt.Sprintf("%d:%d", h.Index, h.Generation)
}
