package input

import "rigidedit/internal/geom"

// Overlay is the UI layer drawn on top of the viewport.
type Overlay interface {
	PointerOverOverlay() bool
	ConsumedClickThisFrame() bool
}

// Arbitration decides who owns the pointer for the current frame.
type Arbitration struct {
	OverlayConsumedPointer bool
	InViewport             bool
}

// Free reports whether the viewport may act on the pointer this frame.
func (a Arbitration) Free() bool {
	return !a.OverlayConsumedPointer && a.InViewport
}

// Arbitrate runs once per frame before picking and dragging. The overlay always wins.
func Arbitrate(overlay Overlay, frame Frame, viewport geom.Viewport) Arbitration {
	consumed := false
	if overlay != nil {
		consumed = overlay.PointerOverOverlay() || overlay.ConsumedClickThisFrame()
	}
	return Arbitration{
		OverlayConsumedPointer: consumed,
		InViewport:             viewport.Contains(frame.Pointer),
	}
}
