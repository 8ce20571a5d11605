package raster

import (
	"math"

	"rotorcast/internal/mathutil"
)

// Default view parameters shared by the interactive window and the
// offline recorder.
const (
	Width  = 800
	Height = 600
	FovY   = 80 * math.Pi / 180
)

// Background is the color of rays that hit nothing, packed 0xAARRGGBB.
const Background = 0xFF111111

// faceColors by face code: +X, -X, +Y, -Y, +Z, -Z.
var faceColors = [6]uint32{
	0xFFFF0000,
	0xFF880000,
	0xFF00FF00,
	0xFF008800,
	0xFF0000FF,
	0xFF000088,
}

// camera maps pixel coordinates onto the z=0 plane of camera space.
// The frustum opens along +Z.
type camera struct {
	width      int
	height     int
	aspect     float32
	tanHalfFov float32
}

func newCamera(width, height int) camera {
	return camera{
		width:      width,
		height:     height,
		aspect:     float32(width) / float32(height),
		tanHalfFov: float32(math.Tan(FovY / 2)),
	}
}

// point returns the camera-space position of the center of pixel
// (x, y). Window y grows downward, camera y upward.
func (c camera) point(x, y int) mathutil.Vec3 {
	xn := 2*(float32(x)+0.5)/float32(c.width) - 1
	yn := 1 - 2*(float32(y)+0.5)/float32(c.height)
	return mathutil.Vec3{xn * c.aspect * c.tanHalfFov, yn * c.tanHalfFov, 0}
}
