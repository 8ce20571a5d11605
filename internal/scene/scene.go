package scene

import (
	"errors"

	"rotorcast/internal/mathutil"
)

// MaxCubes is the fixed cube capacity of a world.
const MaxCubes = 1024

var (
	ErrWorldFull = errors.New("scene: cube capacity exhausted")
	ErrCubeSize  = errors.New("scene: cube size must be positive")
)

// Handle identifies a cube within its world. Handles are dense indices
// in creation order and stay valid for the lifetime of the world.
type Handle int

// World holds the camera pose and every cube. Cube components live in
// parallel arrays for cache-friendly scanning during ray traversal;
// callers address cubes through handles instead of raw storage.
type World struct {
	camera mathutil.Pose

	count int
	posX  [MaxCubes]float32
	posY  [MaxCubes]float32
	posZ  [MaxCubes]float32
	oriW  [MaxCubes]float32
	oriX  [MaxCubes]float32
	oriY  [MaxCubes]float32
	oriZ  [MaxCubes]float32
	size  [MaxCubes]float32
}

func NewWorld() *World {
	return &World{camera: mathutil.IdentityPose()}
}

// AddCube appends a cube with the given pose and edge length and
// returns its handle. Cubes are never removed, so earlier handles keep
// their priority when rays probe the world in creation order.
func (w *World) AddCube(pose mathutil.Pose, size float32) (Handle, error) {
	if size <= 0 {
		return 0, ErrCubeSize
	}
	if w.count == MaxCubes {
		return 0, ErrWorldFull
	}
	i := w.count
	w.posX[i] = pose.Pos[0]
	w.posY[i] = pose.Pos[1]
	w.posZ[i] = pose.Pos[2]
	w.oriW[i] = pose.Ori[0]
	w.oriX[i] = pose.Ori[1]
	w.oriY[i] = pose.Ori[2]
	w.oriZ[i] = pose.Ori[3]
	w.size[i] = size
	w.count++
	return Handle(i), nil
}

func (w *World) CubeCount() int {
	return w.count
}

func (w *World) CubePose(h Handle) mathutil.Pose {
	w.check(h)
	return mathutil.Pose{
		Ori: mathutil.Rotor{w.oriW[h], w.oriX[h], w.oriY[h], w.oriZ[h]},
		Pos: mathutil.Vec3{w.posX[h], w.posY[h], w.posZ[h]},
	}
}

func (w *World) CubeSize(h Handle) float32 {
	w.check(h)
	return w.size[h]
}

func (w *World) CameraPose() mathutil.Pose {
	return w.camera
}

func (w *World) SetCameraPose(p mathutil.Pose) {
	w.camera = p
}

func (w *World) check(h Handle) {
	if h < 0 || int(h) >= w.count {
		panic("scene: invalid cube handle")
	}
}
