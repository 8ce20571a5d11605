package raster

import (
	"rotorcast/internal/mathutil"
	"rotorcast/internal/scene"
)

// maxRayDistance caps the far clip of every ray, in units of the
// unnormalized per-pixel direction.
const maxRayDistance = 4096

// cubeView is a cube snapshot with its world-to-cube transform hoisted
// out of the pixel loop.
type cubeView struct {
	inv  mathutil.Pose
	half float32
}

// frameView freezes everything one frame needs from the world, so that
// render workers share only immutable state.
type frameView struct {
	cam   camera
	pose  mathutil.Pose
	cubes []cubeView
}

// snapshot refills the view from the world, reusing the cube slice
// across frames.
func (v *frameView) snapshot(w *scene.World, cam camera) {
	v.cam = cam
	v.pose = w.CameraPose()
	v.cubes = v.cubes[:0]
	for i := 0; i < w.CubeCount(); i++ {
		h := scene.Handle(i)
		v.cubes = append(v.cubes, cubeView{
			inv:  w.CubePose(h).Inverse(),
			half: w.CubeSize(h) * 0.5,
		})
	}
}

// trace casts the ray for one camera-space pixel point and returns its
// color. The ray starts on the camera's z=0 plane and travels along
// the unnormalized direction through the frustum, so entry distances
// are expressed in multiples of that direction. Cubes are probed in
// creation order and the first hit wins.
func (v *frameView) trace(pixel mathutil.Vec3) uint32 {
	origin := v.pose.TransformPoint(pixel)
	dir := v.pose.Ori.Rotate(mathutil.Vec3{pixel[0], pixel[1], 1})

	for i := range v.cubes {
		c := &v.cubes[i]
		p := c.inv.TransformPoint(origin)
		d := c.inv.Ori.Rotate(dir)
		if face, ok := slabHit(p, d, c.half); ok {
			return faceColors[face]
		}
	}
	return Background
}

// slabHit clips a ray against the three slabs of an origin-centered
// axis-aligned cube with half-edge half. p and d are the ray origin
// and direction in the cube's frame. It reports the face code of the
// entry plane, axis*2 plus one for rays traveling negative along the
// deciding axis. Entry behind the origin or past maxRayDistance is a
// miss.
func slabHit(p, d mathutil.Vec3, half float32) (int, bool) {
	tNear := float32(0)
	tFar := float32(maxRayDistance)
	face := 0
	for axis := 0; axis < 3; axis++ {
		if d[axis] == 0 {
			// Parallel to this slab: no constraint when the origin lies
			// between the planes, never a crossing otherwise.
			if p[axis] < -half || p[axis] > half {
				return 0, false
			}
			continue
		}
		t1 := (-half - p[axis]) / d[axis]
		t2 := (half - p[axis]) / d[axis]
		tMin, tMax := t1, t2
		if tMin > tMax {
			tMin, tMax = tMax, tMin
		}
		if tMin > tNear {
			tNear = tMin
			face = axis * 2
			if d[axis] < 0 {
				face++
			}
		}
		if tMax < tFar {
			tFar = tMax
		}
		if tNear > tFar {
			return 0, false
		}
	}
	return face, tNear < tFar
}
