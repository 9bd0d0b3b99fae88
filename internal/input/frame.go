package input

import "github.com/go-gl/mathgl/mgl32"

type Button int

const (
	Primary Button = iota
	Secondary
)

func (b Button) String() string {
	switch b {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// ButtonState carries the edges and level of one pointer button for a frame.
type ButtonState struct {
	Pressed  bool // went down this frame
	Released bool // went up this frame
	Held     bool // down at the end of the frame
}

// Frame is everything the editor needs to know about input for one frame.
type Frame struct {
	Pointer   mgl32.Vec2 // window pixels, origin top-left
	Primary   ButtonState
	Secondary ButtonState
	Motion    mgl32.Vec2 // summed pointer motion since the previous frame
	Scroll    float32    // summed wheel steps, positive away from the user
	Move      mgl32.Vec3 // keyboard fly intent in camera space: X right, Y up, Z forward
	DeltaTime float32
}

func (f Frame) Button(b Button) ButtonState {
	if b == Secondary {
		return f.Secondary
	}
	return f.Primary
}

// Accumulator collects raw platform events between frames.
// Motion and scroll are summed, button edges latch until Flush.
type Accumulator struct {
	pointer mgl32.Vec2
	motion  mgl32.Vec2
	scroll  float32
	move    mgl32.Vec3
	buttons [2]ButtonState
}

func (a *Accumulator) MoveTo(p mgl32.Vec2) {
	a.motion = a.motion.Add(p.Sub(a.pointer))
	a.pointer = p
}

// AddMotion records relative motion without a new absolute position.
func (a *Accumulator) AddMotion(d mgl32.Vec2) {
	a.motion = a.motion.Add(d)
}

func (a *Accumulator) AddScroll(s float32) {
	a.scroll += s
}

func (a *Accumulator) SetMove(v mgl32.Vec3) {
	a.move = v
}

func (a *Accumulator) Press(b Button) {
	s := &a.buttons[b]
	s.Pressed = true
	s.Held = true
}

func (a *Accumulator) Release(b Button) {
	s := &a.buttons[b]
	s.Released = true
	s.Held = false
}

// SetHeld syncs the level of a button with the platform without emitting edges.
func (a *Accumulator) SetHeld(b Button, held bool) {
	a.buttons[b].Held = held
}

// Flush returns the accumulated frame and resets the per-frame sums and edges.
// Pointer position and held state persist.
func (a *Accumulator) Flush(dt float32) Frame {
	f := Frame{
		Pointer:   a.pointer,
		Primary:   a.buttons[Primary],
		Secondary: a.buttons[Secondary],
		Motion:    a.motion,
		Scroll:    a.scroll,
		Move:      a.move,
		DeltaTime: dt,
	}

	a.motion = mgl32.Vec2{}
	a.scroll = 0
	a.move = mgl32.Vec3{}
	for i := range a.buttons {
		a.buttons[i].Pressed = false
		a.buttons[i].Released = false
	}
	return f
}
