package editor

import (
	"rigidedit/internal/engine"
	"rigidedit/internal/geom"
	"rigidedit/internal/input"
)

// Resolver turns a weak handle into a live object.
type Resolver interface {
	Resolve(engine.Handle) (*engine.Object, bool)
}

// Change reports what Manipulate did this frame.
type Change struct {
	Handle  engine.Handle
	Started bool             // a drag session began
	Before  engine.Transform // transform at session start, valid when Started
	Applied bool             // a delta was applied to the transform
	Ended   bool             // the session ended
}

// Manipulate advances the drag session and applies the active tool's transform.
// Deltas are incremental: each frame applies pointer - Last, then moves Last.
func Manipulate(ctx Context, arb input.Arbitration, frame input.Frame, cam geom.Camera, resolver Resolver, sens Sensitivity) (Context, Change, error) {
	change := Change{Handle: ctx.Selection}

	if ctx.Drag.Active && (frame.Primary.Released || !frame.Primary.Held) {
		ctx.Drag = DragSession{}
		change.Ended = true
		return ctx, change, nil
	}

	obj, ok := resolver.Resolve(ctx.Selection)
	if !ok {
		return ctx, change, nil
	}

	if !ctx.Drag.Active {
		if frame.Primary.Pressed && frame.Primary.Held && arb.Free() && ctx.Tool != Select {
			ctx.Drag = DragSession{Active: true, Start: frame.Pointer, Last: frame.Pointer}
			change.Started = true
			change.Before = obj.Transform
		}
		return ctx, change, nil
	}

	if !arb.Free() {
		// The overlay owns the pointer; track it so returning does not jump.
		ctx.Drag.Last = frame.Pointer
		return ctx, change, nil
	}

	basis, err := cam.Basis()
	if err != nil {
		// Skip the frame but keep tracking, so recovery does not apply the backlog.
		ctx.Drag.Last = frame.Pointer
		return ctx, change, err
	}

	delta := frame.Pointer.Sub(ctx.Drag.Last)
	if delta.X() == 0 && delta.Y() == 0 {
		return ctx, change, nil
	}

	apply, ok := toolTransforms[ctx.Tool]
	if !ok {
		return ctx, change, nil
	}
	apply(&obj.Transform, delta, basis, sens)
	ctx.Drag.Last = frame.Pointer
	change.Applied = true
	return ctx, change, nil
}
