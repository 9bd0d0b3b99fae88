package editor

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"rigidedit/internal/geom"
	"rigidedit/internal/input"
	"rigidedit/internal/physics"
)

// RayCaster finds the closest collider along a ray.
type RayCaster interface {
	CastRay(origin, dir mgl32.Vec3, maxDistance float32, filter physics.QueryFilter) (physics.RayHit, bool)
}

// Pick selects whatever lies under the pointer on a primary press.
// Only the Select tool picks, and only when the viewport owns the pointer.
// A miss clears the selection. A degenerate camera leaves ctx untouched.
func Pick(ctx Context, arb input.Arbitration, frame input.Frame, cam geom.Camera, caster RayCaster, filter physics.QueryFilter) (Context, error) {
	if !frame.Primary.Pressed || !arb.Free() || ctx.Tool != Select {
		return ctx, nil
	}

	ray, err := geom.CameraRay(cam, frame.Pointer)
	if err != nil {
		return ctx, err
	}

	hit, ok := caster.CastRay(ray.Origin, ray.Direction, math32.MaxFloat32, filter)
	if !ok {
		return clearSelection(ctx), nil
	}
	if hit.Handle != ctx.Selection {
		ctx.Drag = DragSession{}
	}
	ctx.Selection = hit.Handle
	return ctx, nil
}
