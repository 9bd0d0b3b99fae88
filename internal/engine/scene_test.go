package engine

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCube(name string) *Object {
	return NewObject(name, BoxShape(mgl32.Vec3{0.5, 0.5, 0.5}), DefaultBody(Dynamic))
}

func TestSceneAdd(t *testing.T) {
	scene := NewScene("Test")
	obj := newCube("Player")

	h := scene.Add(obj)

	assert.False(t, h.IsNil())
	assert.Equal(t, h, obj.Handle)
	assert.Equal(t, 1, scene.Len())

	found, ok := scene.Resolve(h)
	require.True(t, ok)
	assert.Same(t, obj, found)
}

func TestSceneResolveNilHandle(t *testing.T) {
	scene := NewScene("Test")
	scene.Add(newCube("Player"))

	_, ok := scene.Resolve(Handle{})
	assert.False(t, ok)

	_, ok = scene.Resolve(Handle{Index: 42, Generation: 1})
	assert.False(t, ok, "out of range index")
}

func TestSceneDestroy(t *testing.T) {
	scene := NewScene("Test")
	h1 := scene.Add(newCube("Player"))
	h2 := scene.Add(newCube("Enemy"))

	require.True(t, scene.Destroy(h1))
	assert.False(t, scene.Destroy(h1), "second destroy is a no-op")
	assert.Equal(t, 1, scene.Len())

	_, ok := scene.Resolve(h1)
	assert.False(t, ok)
	_, ok = scene.Resolve(h2)
	assert.True(t, ok)
}

func TestSceneReusedSlotDoesNotResolveOldHandle(t *testing.T) {
	scene := NewScene("Test")
	old := scene.Add(newCube("First"))
	scene.Destroy(old)

	replacement := newCube("Second")
	h := scene.Add(replacement)

	assert.Equal(t, old.Index, h.Index, "slot reused")
	assert.NotEqual(t, old.Generation, h.Generation)

	_, ok := scene.Resolve(old)
	assert.False(t, ok)
	found, ok := scene.Resolve(h)
	require.True(t, ok)
	assert.Equal(t, "Second", found.Name)
}

func TestSceneFindByName(t *testing.T) {
	scene := NewScene("Test")
	obj := newCube("UniquePlayer")
	scene.Add(obj)

	assert.Same(t, obj, scene.FindByName("UniquePlayer"))
	assert.Nil(t, scene.FindByName("DoesNotExist"))
}

func TestSceneEachSkipsDestroyed(t *testing.T) {
	scene := NewScene("Test")
	a := scene.Add(newCube("A"))
	scene.Add(newCube("B"))
	scene.Add(newCube("C"))
	scene.Destroy(a)

	var names []string
	scene.Each(func(o *Object) { names = append(names, o.Name) })
	assert.Equal(t, []string{"B", "C"}, names)
	assert.Len(t, scene.Objects(), 2)
}

func TestSceneEvents(t *testing.T) {
	scene := NewScene("Test")
	var added, destroyed []Handle
	scene.Added.AddListener(func(h Handle) { added = append(added, h) })
	scene.Destroyed.AddListener(func(h Handle) { destroyed = append(destroyed, h) })

	h := scene.Add(newCube("A"))
	scene.Destroy(h)
	scene.Destroy(h)

	assert.Equal(t, []Handle{h}, added)
	assert.Equal(t, []Handle{h}, destroyed)
}

func TestEventRemoveListener(t *testing.T) {
	var ev EventWithArg[int]
	var got []int

	id := ev.AddListener(func(v int) { got = append(got, v) })
	ev.AddListener(func(v int) { got = append(got, v*10) })
	assert.Zero(t, ev.AddListener(nil))
	assert.Equal(t, 2, ev.ListenerCount())

	ev.Invoke(1)
	ev.RemoveListener(id)
	ev.Invoke(2)

	assert.Equal(t, []int{1, 10, 20}, got)

	ev.RemoveAllListeners()
	assert.Zero(t, ev.ListenerCount())
}

func TestTransformMatrix(t *testing.T) {
	tr := IdentityTransform()
	tr.Position = mgl32.Vec3{1, 2, 3}
	tr.Rotation = mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})
	tr.Scale = mgl32.Vec3{2, 2, 2}

	p := mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, tr.Matrix())
	assert.True(t, p.ApproxEqualThreshold(mgl32.Vec3{1, 2, 1}, 1e-4), "got %v", p)
}

func TestHandleString(t *testing.T) {
	assert.Equal(t, "none", Handle{}.String())
	assert.Equal(t, "3:2", Handle{Index: 3, Generation: 2}.String())
	assert.Equal(t, "fixed", Fixed.String())
	assert.Equal(t, "unknown", BodyKind(9).String())
}
