package scene

import (
	"math"

	"rotorcast/internal/mathutil"
)

// DemoWorld builds the stock scene: four unit cubes spaced around the
// origin on the horizontal plane, and a camera four units out along
// -Y, pitched a quarter turn to face them.
func DemoWorld() *World {
	w := NewWorld()

	xs := [4]float32{2, 2, -2, -2}
	zs := [4]float32{2, -2, 2, -2}
	for i := 0; i < 4; i++ {
		pose := mathutil.Pose{
			Ori: mathutil.IdentityRotor(),
			Pos: mathutil.Vec3{xs[i], 0, zs[i]},
		}
		if _, err := w.AddCube(pose, 1); err != nil {
			panic(err)
		}
	}

	pitch, err := mathutil.FromAngleAxis(math.Pi/2, mathutil.Vec3{-1, 0, 0})
	if err != nil {
		panic(err)
	}
	w.SetCameraPose(mathutil.Pose{
		Ori: pitch,
		Pos: mathutil.Vec3{0, -4, 0},
	})
	return w
}
