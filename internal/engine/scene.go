package engine

type slot struct {
	object     *Object
	generation uint32
}

// Scene owns the objects and hands out generational handles to them.
type Scene struct {
	Name  string
	slots []slot
	free  []uint32
	count int

	Added     EventWithArg[Handle]
	Destroyed EventWithArg[Handle]
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:  name,
		slots: make([]slot, 0),
	}
}

// Add stores obj and returns its handle. Freed slots are reused with a bumped generation.
func (s *Scene) Add(obj *Object) Handle {
	var h Handle
	if n := len(s.free); n > 0 {
		idx := s.free[n-1]
		s.free = s.free[:n-1]
		sl := &s.slots[idx]
		sl.object = obj
		h = Handle{Index: idx, Generation: sl.generation}
	} else {
		s.slots = append(s.slots, slot{object: obj, generation: 1})
		h = Handle{Index: uint32(len(s.slots) - 1), Generation: 1}
	}
	obj.Handle = h
	s.count++
	s.Added.Invoke(h)
	return h
}

// Destroy removes the object behind h. Returns false if h is already stale.
func (s *Scene) Destroy(h Handle) bool {
	if _, ok := s.Resolve(h); !ok {
		return false
	}
	sl := &s.slots[h.Index]
	sl.object.Handle = Handle{}
	sl.object = nil
	sl.generation++
	if sl.generation == 0 {
		sl.generation = 1
	}
	s.free = append(s.free, h.Index)
	s.count--
	s.Destroyed.Invoke(h)
	return true
}

// Resolve returns the live object for h, or false if h is nil or stale.
func (s *Scene) Resolve(h Handle) (*Object, bool) {
	if h.IsNil() || int(h.Index) >= len(s.slots) {
		return nil, false
	}
	sl := s.slots[h.Index]
	if sl.object == nil || sl.generation != h.Generation {
		return nil, false
	}
	return sl.object, true
}

// Each visits live objects in slot order.
func (s *Scene) Each(fn func(*Object)) {
	for _, sl := range s.slots {
		if sl.object != nil {
			fn(sl.object)
		}
	}
}

func (s *Scene) Objects() []*Object {
	out := make([]*Object, 0, s.count)
	s.Each(func(o *Object) { out = append(out, o) })
	return out
}

func (s *Scene) FindByName(name string) *Object {
	for _, sl := range s.slots {
		if sl.object != nil && sl.object.Name == name {
			return sl.object
		}
	}
	return nil
}

func (s *Scene) Len() int {
	return s.count
}
