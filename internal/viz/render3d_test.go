package viz

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func assertVec(t *testing.T, want, got Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, "x")
	assert.InDelta(t, want.Y, got.Y, eps, "y")
	assert.InDelta(t, want.Z, got.Z, eps, "z")
}

func TestProjectionRotate(t *testing.T) {
	tests := []struct {
		name   string
		th, ph int
		in     Vec3
		want   Vec3
	}{
		{"identity", 0, 0, Vec3{1, 2, 3}, Vec3{1, 2, 3}},
		{"azimuth 90 moves x to -z", 90, 0, Vec3{1, 0, 0}, Vec3{0, 0, -1}},
		{"azimuth 90 moves z to x", 90, 0, Vec3{0, 0, 1}, Vec3{1, 0, 0}},
		{"elevation 90 moves y to z", 0, 90, Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{"azimuth applied before elevation", 90, 90, Vec3{1, 0, 0}, Vec3{0, 1, 0}},
		{"full turn", 360, -360, Vec3{1, 2, 3}, Vec3{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Projection{Th: tt.th, Ph: tt.ph, Dim: DefaultDim, Aspect: 1}
			assertVec(t, tt.want, p.Rotate(tt.in))
		})
	}
}

func TestProjectionNDC(t *testing.T) {
	p := Projection{Dim: 2, Aspect: 1}

	n, ok := p.NDC(Vec3{1, 1, 1}, 1)
	require.True(t, ok)
	assertVec(t, Vec3{0.5, 0.5, -0.5}, n)

	n, ok = p.NDC(Vec3{1, 0, 0}, 2)
	require.True(t, ok)
	assertVec(t, Vec3{0.25, 0, 0}, n)

	_, ok = p.NDC(Vec3{1, 0, 0}, 0)
	assert.False(t, ok)
	_, ok = p.NDC(Vec3{1, 0, 0}, -0.5)
	assert.False(t, ok)

	wide := Projection{Dim: 2, Aspect: 2}
	n, _ = wide.NDC(Vec3{2, 2, 0}, 1)
	assertVec(t, Vec3{0.5, 1, 0}, n)
}

func TestNewProjectionAspect(t *testing.T) {
	assert.Equal(t, 2.0, NewProjection(0, 0, 2, 200, 100).Aspect)
	assert.Equal(t, 1.0, NewProjection(0, 0, 2, 200, 0).Aspect)
}

func TestToPixel(t *testing.T) {
	x, y := ToPixel(Vec3{-1, 1, 0}, 11, 21)
	assert.Equal(t, [2]int{0, 0}, [2]int{x, y})

	x, y = ToPixel(Vec3{1, -1, 0}, 11, 21)
	assert.Equal(t, [2]int{10, 20}, [2]int{x, y})

	x, y = ToPixel(Vec3{}, 11, 21)
	assert.Equal(t, [2]int{5, 10}, [2]int{x, y})
}

func TestClipSegment(t *testing.T) {
	a, b, ok := ClipSegment(Vec3{-2, 0, 0}, Vec3{2, 0, 0})
	require.True(t, ok)
	assertVec(t, Vec3{-1, 0, 0}, a)
	assertVec(t, Vec3{1, 0, 0}, b)

	a, b, ok = ClipSegment(Vec3{-0.5, 0, 0}, Vec3{0.5, 0.5, 0})
	require.True(t, ok)
	assertVec(t, Vec3{-0.5, 0, 0}, a)
	assertVec(t, Vec3{0.5, 0.5, 0}, b)

	_, _, ok = ClipSegment(Vec3{2, 2, 0}, Vec3{3, 3, 0})
	assert.False(t, ok)

	_, _, ok = ClipSegment(Vec3{0, 0, 2}, Vec3{0, 0, 3})
	assert.False(t, ok, "beyond the depth planes")
}

func TestClipSegmentKeepsInsideEndpointsExact(t *testing.T) {
	p := Projection{Th: 37, Ph: -21, Dim: 2, Aspect: 1.3}
	pts := []Vec3{{0.11, 0.37, -0.29}, {0.731, -0.113, 0.057}, {-0.4999, 0.2501, 0.3333}}

	var prev Vec3
	for i, v := range pts {
		n, ok := p.NDC(v, 1.7)
		require.True(t, ok)
		if i > 0 {
			a, b, in := ClipSegment(prev, n)
			require.True(t, in)
			assert.Equal(t, prev, a, "segment %d start", i)
			assert.Equal(t, n, b, "segment %d end", i)
		}
		prev = n
	}

	a, b, ok := ClipSegment(Vec3{0.1, 0.2, 0.3}, Vec3{3, 0.2, 0.3})
	require.True(t, ok)
	assert.Equal(t, Vec3{0.1, 0.2, 0.3}, a)
	assertVec(t, Vec3{1, 0.2, 0.3}, b)
}

func TestSegmentsConnectedStripSharesVertices(t *testing.T) {
	p := Projection{Th: 15, Ph: 40, Dim: 2, Aspect: 1}
	var pts []Vec3
	for i := 0; i < 200; i++ {
		f := float64(i) / 200
		pts = append(pts, Vec3{math.Sin(7 * f), math.Cos(5 * f), f - 0.5})
	}

	var last Vec3
	breaks := 0
	n, err := Segments(p, pts, 1, func(a, b Vec3) {
		if last != (Vec3{}) && a != last {
			breaks++
		}
		last = b
	})
	require.NoError(t, err)
	assert.Equal(t, len(pts)-1, n)
	assert.Zero(t, breaks)
}

func TestDrawStrip(t *testing.T) {
	p := Projection{Dim: 2, Aspect: 1}

	t.Run("visible", func(t *testing.T) {
		c := NewCanvas(10, 5)
		n := DrawStrip(c, p, []Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}}, 1)
		assert.Equal(t, 2, n)
		assert.NoError(t, c.Err())
		assert.NotEqual(t, NewCanvas(10, 5).String(), c.String())
	})

	t.Run("non-finite vertex", func(t *testing.T) {
		c := NewCanvas(10, 5)
		n := DrawStrip(c, p, []Vec3{{0, 0, 0}, {math.NaN(), 0, 0}, {0.5, 0, 0}, {0.5, 0.5, 0}}, 1)
		assert.Equal(t, 1, n)
		assert.ErrorIs(t, c.Err(), ErrNonFinite)
		assert.NoError(t, c.Err())
	})

	t.Run("offscreen", func(t *testing.T) {
		c := NewCanvas(10, 5)
		n := DrawStrip(c, p, []Vec3{{10, 10, 0}, {11, 11, 0}}, 1)
		assert.Zero(t, n)
		assert.ErrorIs(t, c.Err(), ErrOffscreen)
	})

	t.Run("non-positive weight", func(t *testing.T) {
		c := NewCanvas(10, 5)
		n := DrawStrip(c, p, []Vec3{{0, 0, 0}, {1, 0, 0}}, 0)
		assert.Zero(t, n)
		assert.ErrorIs(t, c.Err(), ErrOffscreen)
	})

	t.Run("huge coordinates are clipped", func(t *testing.T) {
		c := NewCanvas(10, 5)
		n := DrawStrip(c, p, []Vec3{{-1e300, 0, 0}, {1e300, 0, 0}}, 1)
		assert.Equal(t, 1, n)
		assert.NoError(t, c.Err())
	})

	t.Run("single vertex", func(t *testing.T) {
		c := NewCanvas(10, 5)
		assert.Zero(t, DrawStrip(c, p, []Vec3{{0, 0, 0}}, 1))
		assert.NoError(t, c.Err())
	})
}

func TestZoomShrinksStrip(t *testing.T) {
	p := Projection{Dim: 2, Aspect: 1}
	near := NewCanvas(20, 10)
	far := NewCanvas(20, 10)

	DrawStrip(near, p, []Vec3{{0, 0, 0}, {1.5, 0, 0}}, 1)
	DrawStrip(far, p, []Vec3{{0, 0, 0}, {1.5, 0, 0}}, 2)

	assert.Greater(t, countDots(near), countDots(far))
}

func countDots(c *Canvas) int {
	n := 0
	for _, row := range c.Grid {
		for _, r := range row {
			if isBraille(r) {
				for b := r - brailleBlank; b != 0; b &= b - 1 {
					n++
				}
			}
		}
	}
	return n
}

func TestSegmentsEmitsClippedNDC(t *testing.T) {
	p := Projection{Dim: 2, Aspect: 1}
	var got [][2]Vec3
	n, err := Segments(p, []Vec3{{0, 0, 0}, {4, 0, 0}}, 1, func(a, b Vec3) {
		got = append(got, [2]Vec3{a, b})
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.Len(t, got, 1)
	assertVec(t, Vec3{0, 0, 0}, got[0][0])
	assertVec(t, Vec3{1, 0, 0}, got[0][1])
}

func TestToScreen(t *testing.T) {
	x, y := ToScreen(Vec3{0.5, 0.5, 0}, 500, 500)
	assert.InDelta(t, 375.0, x, eps)
	assert.InDelta(t, 125.0, y, eps)
}

func TestAnchor(t *testing.T) {
	p := Projection{Dim: 2, Aspect: 1}
	_, ok := p.Anchor(Vec3{1, 0, 0})
	assert.True(t, ok)
	_, ok = p.Anchor(Vec3{3, 0, 0})
	assert.False(t, ok)
}
