package raster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCameraPointSymmetry(t *testing.T) {
	c := newCamera(Width, Height)
	for _, xy := range [][2]int{{0, 0}, {13, 257}, {399, 299}} {
		a := c.point(xy[0], xy[1])
		b := c.point(Width-1-xy[0], Height-1-xy[1])
		assert.InDelta(t, -b[0], a[0], 1e-5)
		assert.InDelta(t, -b[1], a[1], 1e-5)
		assert.Zero(t, a[2])
	}
}

func TestCameraPointOrientation(t *testing.T) {
	c := newCamera(Width, Height)

	topLeft := c.point(0, 0)
	assert.Less(t, topLeft[0], float32(0))
	assert.Greater(t, topLeft[1], float32(0))

	bottomRight := c.point(Width-1, Height-1)
	assert.Greater(t, bottomRight[0], float32(0))
	assert.Less(t, bottomRight[1], float32(0))
}

func TestCameraPointFrustumExtent(t *testing.T) {
	c := newCamera(Width, Height)
	tanHalf := float32(math.Tan(FovY / 2))

	// Pixel centers sit half a pixel inside the frustum edges.
	edge := c.point(Width-1, Height/2)
	want := (1 - 1/float32(Width)) * c.aspect * tanHalf
	assert.InDelta(t, want, edge[0], 1e-5)

	top := c.point(Width/2, 0)
	assert.InDelta(t, (1-1/float32(Height))*tanHalf, top[1], 1e-5)
}
