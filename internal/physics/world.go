package physics

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"

	"rigidedit/internal/engine"
)

// restVelocity is the speed under which a resting contact zeroes velocity to stop jitter.
const restVelocity = 0.1

// Contact is reported when two colliders start or stop touching.
type Contact struct {
	A, B   engine.Handle
	Normal mgl32.Vec3 // from B toward A at the time of the event
}

// contactPair is a collision pair with the lower handle first
type contactPair struct {
	A, B engine.Handle
}

func makePair(a, b engine.Handle) contactPair {
	if b.Index < a.Index || (b.Index == a.Index && b.Generation < a.Generation) {
		return contactPair{A: b, B: a}
	}
	return contactPair{A: a, B: b}
}

// World is a minimal rigid-body stepper over the scene.
// It is a scene collaborator; the editor core never calls it.
type World struct {
	Gravity mgl32.Vec3
	scene   *engine.Scene
	logger  *slog.Logger

	// Collision tracking for callbacks
	activeContacts  map[contactPair]mgl32.Vec3 // contacts from last step
	currentContacts map[contactPair]mgl32.Vec3 // contacts this step

	ContactStarted engine.EventWithArg[Contact]
	ContactStopped engine.EventWithArg[Contact]
}

func NewWorld(scene *engine.Scene, gravity mgl32.Vec3, logger *slog.Logger) *World {
	if logger == nil {
		logger = slog.Default()
	}
	w := &World{
		Gravity:         gravity,
		scene:           scene,
		logger:          logger,
		activeContacts:  make(map[contactPair]mgl32.Vec3),
		currentContacts: make(map[contactPair]mgl32.Vec3),
	}
	scene.Destroyed.AddListener(w.forget)
	return w
}

// ActiveContacts returns the number of touching pairs after the last step.
func (w *World) ActiveContacts() int {
	return len(w.activeContacts)
}

// Step advances dynamic bodies by dt. The held object is treated as kinematic so an
// in-progress drag is not fought by gravity.
func (w *World) Step(dt float32, held engine.Handle) {
	if dt <= 0 {
		return
	}
	w.currentContacts = make(map[contactPair]mgl32.Vec3)

	objects := w.scene.Objects()

	// 1. Apply gravity and damping, then integrate
	for _, obj := range objects {
		if !movable(obj, held) {
			continue
		}
		rb := &obj.Body
		rb.Velocity = rb.Velocity.Add(w.Gravity.Mul(dt))
		rb.Velocity = rb.Velocity.Mul(dampingFactor(rb.LinearDamping, dt))
		obj.Transform.Position = obj.Transform.Position.Add(rb.Velocity.Mul(dt))

		if spin := rb.AngularVelocity; spin.Len() > 1e-6 {
			rot := mgl32.QuatRotate(spin.Len()*dt, spin.Normalize())
			obj.Transform.Rotation = rot.Mul(obj.Transform.Rotation).Normalize()
			rb.AngularVelocity = spin.Mul(dampingFactor(rb.AngularDamping, dt))
		}
	}

	// 2. Resolve each pair that has at least one movable body
	for i, a := range objects {
		for _, b := range objects[i+1:] {
			am, bm := movable(a, held), movable(b, held)
			switch {
			case am && bm:
				w.resolveDynamic(a, b)
			case am:
				w.resolveAgainstStatic(a, b)
			case bm:
				w.resolveAgainstStatic(b, a)
			}
		}
	}

	// 3. Dispatch contact callbacks
	w.dispatchContacts()
}

func movable(obj *engine.Object, held engine.Handle) bool {
	return obj.Body.Kind == engine.Dynamic && obj.Handle != held
}

// dampingFactor is time-based so it is framerate independent
func dampingFactor(damping, dt float32) float32 {
	f := 1 - damping*dt
	if f < 0 {
		return 0
	}
	return f
}

// penetration returns the vector that pushes a out of b.
func penetration(a, b *engine.Object) (mgl32.Vec3, bool) {
	as, bs := a.Shape.Kind == engine.Sphere, b.Shape.Kind == engine.Sphere
	switch {
	case as && bs:
		ra, rb := sphereRadius(a), sphereRadius(b)
		diff := a.Transform.Position.Sub(b.Transform.Position)
		dist := diff.Len()
		if dist >= ra+rb || dist < 1e-4 {
			return mgl32.Vec3{}, false
		}
		return diff.Mul((ra + rb - dist) / dist), true
	case as:
		return sphereOutOfBox(a.Transform.Position, sphereRadius(a), OBBOf(b))
	case bs:
		push, ok := sphereOutOfBox(b.Transform.Position, sphereRadius(b), OBBOf(a))
		return push.Mul(-1), ok
	default:
		if !OBBOf(a).Bounds().Intersects(OBBOf(b).Bounds()) {
			return mgl32.Vec3{}, false
		}
		return OBBOf(a).ResolveOBB(OBBOf(b))
	}
}

func sphereOutOfBox(center mgl32.Vec3, radius float32, box OBB) (mgl32.Vec3, bool) {
	closest := box.ClosestPoint(center)
	diff := center.Sub(closest)
	dist := diff.Len()
	if dist >= radius || dist < 1e-4 {
		return mgl32.Vec3{}, false
	}
	return diff.Mul((radius - dist) / dist), true
}

// sphereRadius uses the largest scale axis so the sphere always covers what is drawn
func sphereRadius(obj *engine.Object) float32 {
	s := absVec(obj.Transform.Scale)
	m := s.X()
	if s.Y() > m {
		m = s.Y()
	}
	if s.Z() > m {
		m = s.Z()
	}
	return obj.Shape.Radius * m
}

// resolveAgainstStatic pushes obj fully out of a body that does not move.
func (w *World) resolveAgainstStatic(obj, static *engine.Object) {
	push, ok := penetration(obj, static)
	if !ok {
		return
	}
	pushLen := push.Len()
	if pushLen < 1e-4 {
		return
	}
	normal := push.Mul(1 / pushLen)
	w.recordContact(obj, static, normal)

	obj.Transform.Position = obj.Transform.Position.Add(push)

	rb := &obj.Body
	velAlongNormal := rb.Velocity.Dot(normal)
	if velAlongNormal >= 0 {
		return
	}

	// Reflect and apply bounciness
	e := (rb.Restitution + static.Body.Restitution) / 2
	rb.Velocity = rb.Velocity.Sub(normal.Mul((1 + e) * velAlongNormal))

	// Friction perpendicular to the normal
	friction := (rb.Friction + static.Body.Friction) / 2
	normalPart := normal.Mul(rb.Velocity.Dot(normal))
	tangent := rb.Velocity.Sub(normalPart)
	rb.Velocity = normalPart.Add(tangent.Mul(1 - clamp(friction, 0, 1)))

	if rb.Velocity.Len() < restVelocity {
		rb.Velocity = mgl32.Vec3{}
	}

	// Spheres roll along the surface they touch
	if obj.Shape.Kind == engine.Sphere {
		if r := sphereRadius(obj); r > 0 {
			rb.AngularVelocity = normal.Cross(rb.Velocity.Sub(normalPart)).Mul(1 / r)
		}
	}
}

// resolveDynamic separates two movable bodies, split by mass, and exchanges an impulse.
func (w *World) resolveDynamic(a, b *engine.Object) {
	push, ok := penetration(a, b)
	if !ok {
		return
	}
	pushLen := push.Len()
	if pushLen < 1e-4 {
		return
	}
	normal := push.Mul(1 / pushLen)
	w.recordContact(a, b, normal)

	rbA, rbB := &a.Body, &b.Body
	massA, massB := positiveMass(rbA.Mass), positiveMass(rbB.Mass)
	total := massA + massB

	a.Transform.Position = a.Transform.Position.Add(push.Mul(massB / total))
	b.Transform.Position = b.Transform.Position.Sub(push.Mul(massA / total))

	velAlongNormal := rbA.Velocity.Sub(rbB.Velocity).Dot(normal)
	if velAlongNormal > 0 {
		return
	}

	e := (rbA.Restitution + rbB.Restitution) / 2
	j := -(1 + e) * velAlongNormal / (1/massA + 1/massB)
	impulse := normal.Mul(j)
	rbA.Velocity = rbA.Velocity.Add(impulse.Mul(1 / massA))
	rbB.Velocity = rbB.Velocity.Sub(impulse.Mul(1 / massB))
}

func positiveMass(m float32) float32 {
	if m <= 0 {
		return 1
	}
	return m
}

// recordContact marks a pair as touching this step
func (w *World) recordContact(a, b *engine.Object, normal mgl32.Vec3) {
	pair := makePair(a.Handle, b.Handle)
	if pair.A != a.Handle {
		normal = normal.Mul(-1)
	}
	w.currentContacts[pair] = normal
}

// dispatchContacts fires ContactStarted/ContactStopped and swaps buffers
func (w *World) dispatchContacts() {
	for pair, normal := range w.currentContacts {
		if _, ok := w.activeContacts[pair]; !ok {
			c := Contact{A: pair.A, B: pair.B, Normal: normal}
			w.logger.Debug("contact started", "a", pair.A, "b", pair.B)
			w.ContactStarted.Invoke(c)
		}
	}
	for pair, normal := range w.activeContacts {
		if _, ok := w.currentContacts[pair]; !ok {
			c := Contact{A: pair.A, B: pair.B, Normal: normal}
			w.logger.Debug("contact stopped", "a", pair.A, "b", pair.B)
			w.ContactStopped.Invoke(c)
		}
	}
	w.activeContacts = w.currentContacts
}

// forget ends every contact that involves a destroyed object.
func (w *World) forget(h engine.Handle) {
	for pair, normal := range w.activeContacts {
		if pair.A == h || pair.B == h {
			delete(w.activeContacts, pair)
			w.ContactStopped.Invoke(Contact{A: pair.A, B: pair.B, Normal: normal})
		}
	}
}
