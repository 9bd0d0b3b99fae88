// Stress test for the rigid-body step and the picking raycast, without a window
package main

import (
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"rigidedit/internal/engine"
	"rigidedit/internal/physics"
)

func main() {
	steps := flag.Int("steps", 120, "physics steps per object count")
	rays := flag.Int("rays", 1000, "pick rays per object count")
	seed := flag.Int64("seed", 42, "random seed")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	for _, count := range []int{10, 50, 100, 250, 500} {
		run(logger, count, *steps, *rays, rand.New(rand.NewSource(*seed)))
	}
}

func run(logger *slog.Logger, count, steps, rays int, rng *rand.Rand) {
	scene := engine.NewScene("stress")

	ground := engine.NewObject("Ground", engine.BoxShape(mgl32.Vec3{50, 0.1, 50}), engine.DefaultBody(engine.Fixed))
	ground.Transform.Position = mgl32.Vec3{0, -0.1, 0}
	scene.Add(ground)

	// Spawn in a column, wider as the count grows to keep density reasonable
	spread := float32(10) + float32(count)/20
	for i := 0; i < count; i++ {
		shape := engine.BoxShape(mgl32.Vec3{0.5, 0.5, 0.5})
		if i%2 == 1 {
			shape = engine.SphereShape(0.5)
		}
		obj := engine.NewObject("Body", shape, engine.DefaultBody(engine.Dynamic))
		obj.Transform.Position = mgl32.Vec3{
			rng.Float32()*spread - spread/2,
			1 + rng.Float32()*spread,
			rng.Float32()*spread - spread/2,
		}
		scene.Add(obj)
	}

	world := physics.NewWorld(scene, mgl32.Vec3{0, -9.81, 0}, logger)
	index := physics.NewIndex(scene)

	stepStart := time.Now()
	for i := 0; i < steps; i++ {
		world.Step(1.0/60, engine.Handle{})
	}
	stepTime := time.Since(stepStart) / time.Duration(steps)

	hits := 0
	rayStart := time.Now()
	for i := 0; i < rays; i++ {
		origin := mgl32.Vec3{rng.Float32()*spread - spread/2, 30, rng.Float32()*spread - spread/2}
		if _, ok := index.CastRay(origin, mgl32.Vec3{0, -1, 0}, 100, physics.QueryFilter{SkipFixed: true}); ok {
			hits++
		}
	}
	rayTime := time.Since(rayStart) / time.Duration(rays)

	logger.Info("stress",
		"objects", count,
		"step", stepTime.Round(time.Microsecond),
		"raycast", rayTime.Round(time.Microsecond),
		"hits", hits,
		"contacts", world.ActiveContacts(),
	)
}
