package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func assertVec(t *testing.T, expected, actual Vec2, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, expected.X(), actual.X(), eps, msgAndArgs...)
	assert.InDelta(t, expected.Y(), actual.Y(), eps, msgAndArgs...)
}

func TestCircleCircle(t *testing.T) {
	size := V(10, 10)
	diag := V(1, 1).Normalize()

	tests := []struct {
		name       string
		a, b       Vec2
		collides   bool
		normal     Vec2
		correction Vec2
	}{
		{"overlap right", V(0, 0), V(9, 0), true, V(1, 0), V(1, 0)},
		{"overlap left", V(9, 0), V(0, 0), true, V(-1, 0), V(-1, 0)},
		{"deeper overlap left", V(8, 0), V(0, 0), true, V(-1, 0), V(-2, 0)},
		{"diagonal", V(0, 0), V(4, 4), true, diag, diag.Mul(10 - math.Sqrt(32))},
		{"far on x", V(0, 0), V(40, 0), false, Vec2{}, Vec2{}},
		{"far on y", V(0, 0), V(0, 40), false, Vec2{}, Vec2{}},
		{"touching", V(0, 0), V(10, 0), false, Vec2{}, Vec2{}},
		{"coincident centers", V(3, 3), V(3, 3), true, V(1, 0), V(10, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := CircleCircle(tt.a, size, tt.b, size)
			require.Equal(t, tt.collides, ok)
			if !ok {
				return
			}
			assertVec(t, tt.normal, result.Normal, "normal")
			assertVec(t, tt.correction, result.Correction, "correction")
		})
	}
}

func TestCircleCircleProperties(t *testing.T) {
	for ax := -12.0; ax <= 12; ax += 1.5 {
		for ay := -12.0; ay <= 12; ay += 1.5 {
			for _, rb := range []float64{1, 2.5, 5} {
				a, b := V(0, 0), V(ax, ay)
				ra := 4.0
				dist := b.Sub(a).Len()

				result, ok := CircleCircle(a, V(ra*2, ra*2), b, V(rb*2, rb*2))
				if dist >= ra+rb {
					assert.False(t, ok, "a=%v b=%v rb=%v", a, b, rb)
					continue
				}
				require.True(t, ok, "a=%v b=%v rb=%v", a, b, rb)
				assert.InDelta(t, 1.0, result.Normal.Len(), eps)
				assert.InDelta(t, ra+rb-dist, result.Correction.Len(), eps)
				if dist > 0 {
					assert.Greater(t, result.Normal.Dot(b.Sub(a)), 0.0, "normal points from a to b")
				}
			}
		}
	}
}

func TestRectRect(t *testing.T) {
	size := V(10, 10)

	tests := []struct {
		name       string
		a, b       Vec2
		collides   bool
		normal     Vec2
		correction Vec2
	}{
		{"overlap right", V(0, 0), V(9, 0), true, V(1, 0), V(1, 0)},
		{"overlap left", V(9, 0), V(0, 0), true, V(-1, 0), V(-1, 0)},
		{"deeper right", V(0, 0), V(8, 0), true, V(1, 0), V(2, 0)},
		{"overlap above", V(0, 0), V(1, 7), true, V(0, 1), V(0, 3)},
		{"overlap below", V(1, 7), V(0, 0), true, V(0, -1), V(0, -3)},
		{"far on x", V(0, 0), V(40, 0), false, Vec2{}, Vec2{}},
		{"far on y", V(0, 0), V(0, 40), false, Vec2{}, Vec2{}},
		{"edges touching", V(0, 0), V(10, 0), false, Vec2{}, Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := RectRect(tt.a, size, tt.b, size)
			require.Equal(t, tt.collides, ok)
			if !ok {
				return
			}
			assertVec(t, tt.normal, result.Normal, "normal")
			assertVec(t, tt.correction, result.Correction, "correction")
		})
	}
}

func TestRectRectTieBreaksToX(t *testing.T) {
	result, ok := RectRect(V(0, 0), V(10, 10), V(8, 8), V(10, 10))
	require.True(t, ok)
	assertVec(t, V(1, 0), result.Normal)
	assertVec(t, V(2, 0), result.Correction)
}

func TestRectCircle(t *testing.T) {
	rectSize := V(10, 10)
	circleSize := V(10, 10)

	tests := []struct {
		name         string
		rect, circle Vec2
		collides     bool
		normal       Vec2
		correction   Vec2
	}{
		{"side right", V(0, 0), V(8, 0), true, V(1, 0), V(2, 0)},
		{"side left", V(9, 0), V(0, 0), true, V(-1, 0), V(-1, 0)},
		{"near corner top", V(0, 0), V(8, 9), true, V(0, 1), V(0, 1)},
		{"below", V(0, 0), V(0, -9), true, V(0, -1), V(0, -1)},
		{"outside corner", V(0, 0), V(9, 9), false, Vec2{}, Vec2{}},
		{"far on x", V(0, 0), V(40, 0), false, Vec2{}, Vec2{}},
		{"far on y", V(0, 0), V(0, 40), false, Vec2{}, Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := RectCircle(tt.rect, rectSize, tt.circle, circleSize)
			require.Equal(t, tt.collides, ok)
			if !ok {
				return
			}
			assertVec(t, tt.normal, result.Normal, "normal")
			assertVec(t, tt.correction, result.Correction, "correction")
		})
	}
}

func TestRectCircleNormalIsAxisAligned(t *testing.T) {
	for x := -8.0; x <= 8; x += 0.5 {
		for y := -8.0; y <= 8; y += 0.5 {
			result, ok := RectCircle(V(0, 0), V(10, 6), V(x, y), V(4, 4))
			if !ok {
				continue
			}
			n := result.Normal
			axisAligned := (math.Abs(n.X()) == 1 && n.Y() == 0) || (n.X() == 0 && math.Abs(n.Y()) == 1)
			assert.True(t, axisAligned, "circle at (%v, %v) gave normal %v", x, y, n)
			assert.InDelta(t, 0, result.Correction.X()*n.Y()-result.Correction.Y()*n.X(), eps, "correction along normal")
		}
	}
}

func TestBodyString(t *testing.T) {
	assert.Equal(t, "Rect", BodyRect.String())
	assert.Equal(t, "Circle", BodyCircle.String())
	assert.Equal(t, "Unknown", Body(7).String())
}
