package collision

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leterax/go-garden/pkg/camera"
)

const playerRadius = 0.35

var gardenBound = Bound{
	MinX: -4.6, MaxX: 16.1,
	MinZ: -3.6, MaxZ: 19.76,
	Floor: 0.75, Ceiling: 3.8,
}

var houseWall = AABB{
	Min: mgl32.Vec3{15.35, 0.75, 7.0},
	Max: mgl32.Vec3{16.10, 3.8, 16.2},
}

func distanceToBox(p mgl32.Vec3, b AABB) float32 {
	return p.Sub(b.ClosestPoint(p)).Len()
}

func TestNewResolverValidation(t *testing.T) {
	testCases := []struct {
		name   string
		bound  Bound
		radius float32
		boxes  []AABB
		err    error
	}{
		{name: "garden", bound: gardenBound, radius: playerRadius, boxes: []AABB{houseWall}},
		{name: "narrow x", bound: Bound{MinX: 0, MaxX: 0.5, MinZ: 0, MaxZ: 10, Floor: 0, Ceiling: 1}, radius: playerRadius, err: ErrInvertedBound},
		{name: "narrow z", bound: Bound{MinX: 0, MaxX: 10, MinZ: 0, MaxZ: 0.6, Floor: 0, Ceiling: 1}, radius: playerRadius, err: ErrInvertedBound},
		{name: "floor above ceiling", bound: Bound{MinX: 0, MaxX: 10, MinZ: 0, MaxZ: 10, Floor: 2, Ceiling: 1}, radius: playerRadius, err: ErrInvertedBound},
		{name: "inverted box", bound: gardenBound, radius: playerRadius, boxes: []AABB{{Min: mgl32.Vec3{1, 0, 0}, Max: mgl32.Vec3{0, 1, 1}}}, err: ErrInvalidBox},
		{name: "negative radius", bound: gardenBound, radius: -1, err: ErrInvalidRadius},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := NewResolver(tc.bound, tc.radius, tc.boxes)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				assert.Nil(t, r)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.radius, r.Radius())
		})
	}
}

func TestBoundClampHoldsForAllPositions(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for range 2000 {
		p := mgl32.Vec3{
			(rng.Float32()*2 - 1) * 100,
			(rng.Float32()*2 - 1) * 100,
			(rng.Float32()*2 - 1) * 100,
		}
		c := gardenBound.Clamp(p, playerRadius)

		assert.GreaterOrEqual(t, c.X(), gardenBound.MinX+playerRadius)
		assert.LessOrEqual(t, c.X(), gardenBound.MaxX-playerRadius)
		assert.GreaterOrEqual(t, c.Z(), gardenBound.MinZ+playerRadius)
		assert.LessOrEqual(t, c.Z(), gardenBound.MaxZ-playerRadius)
		assert.GreaterOrEqual(t, c.Y(), gardenBound.Floor)
		assert.LessOrEqual(t, c.Y(), gardenBound.Ceiling)
	}
}

func TestBoundClampSaturates(t *testing.T) {
	c := gardenBound.Clamp(mgl32.Vec3{1000, -1000, -1000}, playerRadius)
	assert.Equal(t, mgl32.Vec3{gardenBound.MaxX - playerRadius, gardenBound.Floor, gardenBound.MinZ + playerRadius}, c)

	inside := mgl32.Vec3{3, 1.5, 4}
	assert.Equal(t, inside, gardenBound.Clamp(inside, playerRadius), "interior points are untouched")
}

func TestIntersects(t *testing.T) {
	box := AABB{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{1, 1, 1}}

	assert.True(t, box.Intersects(mgl32.Vec3{0.5, 0.5, 0.5}, 0.1))
	assert.True(t, box.Intersects(mgl32.Vec3{1.2, 0.5, 0.5}, 0.3))
	assert.False(t, box.Intersects(mgl32.Vec3{1.31, 0.5, 0.5}, 0.3))
	assert.False(t, box.Intersects(mgl32.Vec3{1.3, 1.3, 0.5}, 0.4))
}

func TestResolveSphereOutsideFace(t *testing.T) {
	testCases := []struct {
		name string
		p    mgl32.Vec3
	}{
		{name: "face", p: mgl32.Vec3{15.1, 2, 10}},
		{name: "edge", p: mgl32.Vec3{15.2, 2, 6.9}},
		{name: "corner", p: mgl32.Vec3{15.2, 3.9, 6.9}},
		{name: "barely", p: mgl32.Vec3{15.0001, 2, 10}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.True(t, houseWall.Intersects(tc.p, playerRadius))
			require.False(t, houseWall.Contains(tc.p))

			out := ResolveSphere(tc.p, playerRadius, houseWall)
			assert.GreaterOrEqual(t, distanceToBox(out, houseWall), float32(playerRadius), "no residual penetration")
			assert.InDelta(t, playerRadius+Epsilon, distanceToBox(out, houseWall), 1e-4)
			assert.False(t, houseWall.Intersects(out, playerRadius))

			// push is along the separating direction only
			dir := tc.p.Sub(houseWall.ClosestPoint(tc.p)).Normalize()
			moved := out.Sub(tc.p).Normalize()
			assert.True(t, dir.ApproxEqualThreshold(moved, 1e-4))
		})
	}
}

func TestResolveSphereDeepPenetration(t *testing.T) {
	box := AABB{Min: mgl32.Vec3{-0.2, -0.2, -0.2}, Max: mgl32.Vec3{0.2, 0.2, 0.2}}
	center := box.Center()

	out := ResolveSphere(center, playerRadius, box)

	changed := 0
	for i := range 3 {
		if out[i] != center[i] {
			changed++
		}
	}
	assert.Equal(t, 1, changed, "exactly one axis moves")
	// all depths tie, so the first candidate (-X) wins
	assert.InDelta(t, -(playerRadius + Epsilon), out.X(), 1e-6)
	assert.Less(t, out.X(), box.Min.X(), "result lies outside the box on that axis")
}

func TestShallowestFaceOrder(t *testing.T) {
	box := AABB{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{10, 10, 10}}
	testCases := []struct {
		name string
		p    mgl32.Vec3
		axis int
		sign float32
	}{
		{name: "-X", p: mgl32.Vec3{1, 5, 5}, axis: 0, sign: -1},
		{name: "+X", p: mgl32.Vec3{9, 5, 5}, axis: 0, sign: 1},
		{name: "-Y", p: mgl32.Vec3{5, 1, 5}, axis: 1, sign: -1},
		{name: "+Y", p: mgl32.Vec3{5, 9, 5}, axis: 1, sign: 1},
		{name: "-Z", p: mgl32.Vec3{5, 5, 1}, axis: 2, sign: -1},
		{name: "+Z", p: mgl32.Vec3{5, 5, 9}, axis: 2, sign: 1},
		{name: "tie -X/+X", p: mgl32.Vec3{5, 5, 5}, axis: 0, sign: -1},
		{name: "tie +X/-Y", p: mgl32.Vec3{9, 1, 5}, axis: 0, sign: 1},
		{name: "tie -Y/+Z", p: mgl32.Vec3{5, 1, 9}, axis: 1, sign: -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			axis, sign := shallowestFace(tc.p, box)
			assert.Equal(t, tc.axis, axis)
			assert.Equal(t, tc.sign, sign)
		})
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	r, err := NewResolver(gardenBound, playerRadius, []AABB{houseWall})
	require.NoError(t, err)

	starts := []mgl32.Vec3{
		{15.1, 2, 10},
		{15.2, 2, 6.9},
		{100, 100, 100},
		{-100, 1.5, 3},
		{5, 2, 5},
		{15.9, 1, 10},
	}
	for _, p := range starts {
		first := r.Resolve(p)
		second := r.Resolve(first)
		assert.True(t, first.ApproxEqualThreshold(second, Epsilon), "start %v: %v then %v", p, first, second)
	}
}

func TestResolveAgainstHouseWall(t *testing.T) {
	r, err := NewResolver(gardenBound, playerRadius, []AABB{houseWall})
	require.NoError(t, err)

	p := mgl32.Vec3{15.9, 1.0, 10.0}

	// Taken alone, the wall pushes the interior center out through its
	// shallowest face.
	direct := ResolveSphere(p, playerRadius, houseWall)
	axis, sign := shallowestFace(p, houseWall)
	want := p
	want[axis] += sign * (playerRadius + Epsilon)
	assert.True(t, direct.ApproxEqualThreshold(want, 1e-6), "got %v want %v", direct, want)
	assert.Equal(t, 0, axis)
	assert.Equal(t, float32(1), sign)

	// Through the resolver the bound clamp runs first and caps x at
	// MaxX - radius before the wall is considered.
	clamped := gardenBound.Clamp(p, playerRadius)
	assert.InDelta(t, gardenBound.MaxX-playerRadius, clamped.X(), 1e-6)

	// At the clamped center the floor face is shallowest, so the wall pushes
	// down through the floor and the final clamp puts the center back on it.
	axis, sign = shallowestFace(clamped, houseWall)
	assert.Equal(t, 1, axis)
	assert.Equal(t, float32(-1), sign)

	out := r.Resolve(p)
	want = mgl32.Vec3{gardenBound.MaxX - playerRadius, gardenBound.Floor, 10}
	assert.True(t, out.ApproxEqualThreshold(want, 1e-6), "got %v want %v", out, want)
	assert.True(t, out.ApproxEqualThreshold(r.Resolve(out), 1e-6))
}

func TestResolveStaysInsideBound(t *testing.T) {
	r, err := NewResolver(gardenBound, playerRadius, []AABB{houseWall})
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		p := mgl32.Vec3{
			gardenBound.MinX - 2 + rng.Float32()*(gardenBound.MaxX-gardenBound.MinX+4),
			rng.Float32() * 5,
			gardenBound.MinZ - 2 + rng.Float32()*(gardenBound.MaxZ-gardenBound.MinZ+4),
		}
		out := r.Resolve(p)
		assert.Equal(t, gardenBound.Clamp(out, playerRadius), out, "start %v", p)
	}
}

func TestResolveSequentialOrder(t *testing.T) {
	a := AABB{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{1, 3, 1}}
	b := AABB{Min: mgl32.Vec3{1.5, 0, 0}, Max: mgl32.Vec3{2.5, 3, 1}}
	bound := Bound{MinX: -10, MaxX: 10, MinZ: -10, MaxZ: 10, Floor: 0, Ceiling: 3}

	p := mgl32.Vec3{1.2, 1, 0.5}
	r, err := NewResolver(bound, playerRadius, []AABB{a, b})
	require.NoError(t, err)

	// a pushes +X to 1.351, then b sees that corrected position.
	afterA := ResolveSphere(p, playerRadius, a)
	want := afterA
	if b.Intersects(afterA, playerRadius) {
		want = ResolveSphere(afterA, playerRadius, b)
	}
	assert.Equal(t, want, r.Resolve(p))
}

func TestApplyWritesBackToCamera(t *testing.T) {
	r, err := NewResolver(gardenBound, playerRadius, nil)
	require.NoError(t, err)

	cam := camera.NewCamera(mgl32.Vec3{0, 1, 8})
	cam.SetPosition(mgl32.Vec3{-50, 10, 8})

	got := r.Apply(cam)
	assert.Equal(t, got, cam.Position())
	assert.Equal(t, mgl32.Vec3{gardenBound.MinX + playerRadius, gardenBound.Ceiling, 8}, got)
}

func TestWalkForwardScenario(t *testing.T) {
	const (
		speed  = 2.5
		dt     = 0.1
		frames = 10
	)
	r, err := NewResolver(gardenBound, playerRadius, nil)
	require.NoError(t, err)

	start := mgl32.Vec3{0, 1, 8}
	cam := camera.NewCamera(start)
	front := cam.FrontVector()

	for range frames {
		cam.Move(camera.Forward, speed*dt)
		r.Apply(cam)
	}

	want := gardenBound.Clamp(start.Add(front.Mul(speed*dt*frames)), playerRadius)
	assert.True(t, cam.Position().ApproxEqualThreshold(want, 1e-4), "got %v want %v", cam.Position(), want)
	assert.InDelta(t, 5.5, cam.Position().Z(), 1e-4)
}

func TestPenetration(t *testing.T) {
	assert.InDelta(t, 0.25, Penetration(mgl32.Vec3{15.25, 2, 10}, playerRadius, houseWall), 1e-5)
	assert.Zero(t, Penetration(mgl32.Vec3{0, 2, 10}, playerRadius, houseWall))
}

func TestNewAABBOrdersCorners(t *testing.T) {
	b := NewAABB(mgl32.Vec3{1, -1, 3}, mgl32.Vec3{-1, 2, 0})
	assert.True(t, b.Valid())
	assert.Equal(t, mgl32.Vec3{-1, -1, 0}, b.Min)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, b.Max)
	assert.Equal(t, mgl32.Vec3{0, 0.5, 1.5}, b.Center())
}
