package collider

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/pinball/game"
)

func approx(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-4
}

func TestPlaneHitTime(t *testing.T) {
	floor := NewPlane(Header{ID: 1}, mgl32.Vec3{0, 0, 2}, 0, game.NewAABB(0, 1000, 0, 2000, 0, 0))
	if floor.Normal() != (mgl32.Vec3{0, 0, 1}) {
		t.Fatalf("expected normalised normal, got %v", floor.Normal())
	}

	tests := []struct {
		name   string
		sphere Sphere
		dTime  float32
		want   bool
		time   float32
	}{
		{"falling onto floor", Sphere{Pos: mgl32.Vec3{5, 5, 30}, Vel: mgl32.Vec3{0, 0, -1}, Radius: 25}, 10, true, 5},
		{"impact after slice", Sphere{Pos: mgl32.Vec3{5, 5, 30}, Vel: mgl32.Vec3{0, 0, -1}, Radius: 25}, 4, false, 0},
		{"moving away", Sphere{Pos: mgl32.Vec3{5, 5, 30}, Vel: mgl32.Vec3{0, 0, 1}, Radius: 25}, 10, false, 0},
		{"rolling along", Sphere{Pos: mgl32.Vec3{5, 5, 25}, Vel: mgl32.Vec3{1, 0, 0}, Radius: 25}, 10, false, 0},
		{"resting and pressed", Sphere{Pos: mgl32.Vec3{5, 5, 25}, Vel: mgl32.Vec3{0, 0, -0.1}, Radius: 25}, 10, true, 0},
		{"behind plane", Sphere{Pos: mgl32.Vec3{5, 5, -30}, Vel: mgl32.Vec3{0, 0, -1}, Radius: 25}, 10, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := floor.HitTime(tt.sphere, tt.dTime)
			if ok != tt.want {
				t.Fatalf("hit = %v, want %v", ok, tt.want)
			}
			if ok && !approx(hit.Time, tt.time) {
				t.Fatalf("time = %v, want %v", hit.Time, tt.time)
			}
			if ok && hit.Normal != (mgl32.Vec3{0, 0, 1}) {
				t.Fatalf("unexpected normal %v", hit.Normal)
			}
		})
	}
}

func TestLineHitTime(t *testing.T) {
	wall := NewLine(Header{ID: 2}, mgl32.Vec2{0, 0}, mgl32.Vec2{100, 0}, 0, 50)
	if wall.Normal() != (mgl32.Vec3{0, -1, 0}) {
		t.Fatalf("unexpected normal %v", wall.Normal())
	}
	if b := wall.Bounds(); !b.Equal(game.NewAABB(0, 100, 0, 0, 0, 50)) {
		t.Fatalf("unexpected bounds %+v", b)
	}

	hit, ok := wall.HitTime(Sphere{Pos: mgl32.Vec3{50, -30, 25}, Vel: mgl32.Vec3{0, 1, 0}, Radius: 25}, 10)
	if !ok || !approx(hit.Time, 5) {
		t.Fatalf("expected hit at 5, got %v %v", hit, ok)
	}

	if _, ok := wall.HitTime(Sphere{Pos: mgl32.Vec3{150, -30, 25}, Vel: mgl32.Vec3{0, 1, 0}, Radius: 25}, 10); ok {
		t.Fatal("expected no hit past the end of the segment")
	}
	if _, ok := wall.HitTime(Sphere{Pos: mgl32.Vec3{50, -30, 80}, Vel: mgl32.Vec3{0, 1, 0}, Radius: 25}, 10); ok {
		t.Fatal("expected no hit above the wall")
	}
	if _, ok := wall.HitTime(Sphere{Pos: mgl32.Vec3{50, 30, 25}, Vel: mgl32.Vec3{0, -1, 0}, Radius: 25}, 10); ok {
		t.Fatal("expected no hit from the back side")
	}
}

func TestCircleHitTime(t *testing.T) {
	post := NewCircle(Header{ID: 3, Kind: KindBumper}, mgl32.Vec2{0, 0}, 10, 0, 50)
	s := Sphere{Pos: mgl32.Vec3{-50, 0, 25}, Vel: mgl32.Vec3{1, 0, 0}, Radius: 25}

	hit, ok := post.HitTime(s, 100)
	if !ok || !approx(hit.Time, 15) {
		t.Fatalf("expected hit at 15, got %v %v", hit, ok)
	}
	if !approx(hit.Normal.X(), -1) || !approx(hit.Normal.Y(), 0) {
		t.Fatalf("unexpected normal %v", hit.Normal)
	}
	if _, ok := post.HitTime(s, 14); ok {
		t.Fatal("expected no hit within a slice shorter than the impact time")
	}

	miss := Sphere{Pos: mgl32.Vec3{-50, 40, 25}, Vel: mgl32.Vec3{1, 0, 0}, Radius: 25}
	if _, ok := post.HitTime(miss, 100); ok {
		t.Fatal("expected a passing sphere to miss")
	}

	inside := Sphere{Pos: mgl32.Vec3{-5, 0, 25}, Vel: mgl32.Vec3{1, 0, 0}, Radius: 25}
	hit, ok = post.HitTime(inside, 100)
	if !ok || hit.Time != 0 || !approx(hit.Distance, -30) || !approx(hit.Normal.X(), -1) {
		t.Fatalf("expected an immediate hit for a sphere deep inside and moving in, got %v %v", hit, ok)
	}
	inside.Vel = mgl32.Vec3{-1, 0, 0}
	if _, ok := post.HitTime(inside, 100); ok {
		t.Fatal("expected a sphere moving out of the post not to hit")
	}

	hole := NewTriggerCircle(Header{ID: 4, Kind: KindKicker}, mgl32.Vec2{0, 0}, 10, 0, 50)
	hit, ok = hole.HitTime(s, 100)
	if !ok || !approx(hit.Time, 40) {
		t.Fatalf("expected trigger hit when the centre crosses the radius at 40, got %v %v", hit, ok)
	}

	leaving := Sphere{Pos: mgl32.Vec3{1, 0, 25}, Vel: mgl32.Vec3{1, 0, 0}, Radius: 25}
	if _, ok := hole.HitTime(leaving, 100); ok {
		t.Fatal("expected a sphere leaving the trigger not to hit")
	}
}

func TestBoxHitTime(t *testing.T) {
	block := NewBox(Header{ID: 5, Kind: KindDropTarget}, game.NewAABB(0, 10, 0, 10, 0, 10))

	hit, ok := block.HitTime(Sphere{Pos: mgl32.Vec3{-10, 5, 5}, Vel: mgl32.Vec3{1, 0, 0}, Radius: 2}, 20)
	if !ok || !approx(hit.Time, 8) {
		t.Fatalf("expected hit at 8, got %v %v", hit, ok)
	}
	if hit.Normal != (mgl32.Vec3{-1, 0, 0}) {
		t.Fatalf("unexpected normal %v", hit.Normal)
	}

	if !approx(hit.Distance, 8) {
		t.Fatalf("expected a surface gap of 8, got %v", hit.Distance)
	}

	// An oblique approach travels further than the gap.
	hit, ok = block.HitTime(Sphere{Pos: mgl32.Vec3{-10, 5, 5}, Vel: mgl32.Vec3{1, 0.1, 0}, Radius: 2}, 20)
	if !ok || !approx(hit.Time, 8) || !approx(hit.Distance, 8) {
		t.Fatalf("expected hit at 8 with a surface gap of 8, got %v %v", hit, ok)
	}

	if _, ok := block.HitTime(Sphere{Pos: mgl32.Vec3{-10, 5, 5}, Vel: mgl32.Vec3{1, 0, 0}, Radius: 2}, 5); ok {
		t.Fatal("expected no hit within a short slice")
	}

	hit, ok = block.HitTime(Sphere{Pos: mgl32.Vec3{5, 5, 11}, Vel: mgl32.Vec3{0, 0, -1}, Radius: 2}, 20)
	if !ok || hit.Time != 0 || hit.Normal != (mgl32.Vec3{0, 0, 1}) {
		t.Fatalf("expected an immediate hit on the top face, got %v %v", hit, ok)
	}

	if _, ok := block.HitTime(Sphere{Pos: mgl32.Vec3{5, 5, 11}, Vel: mgl32.Vec3{0, 0, 1}, Radius: 2}, 20); ok {
		t.Fatal("expected a sphere leaving the top face not to hit")
	}
}
