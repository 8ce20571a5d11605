package input

import (
	"rotorcast/internal/mathutil"
	"rotorcast/internal/scene"
)

const (
	// LookSensitivity converts horizontal pointer counts to yaw radians.
	LookSensitivity = 0.002
	// MoveStep is the distance walked per tick for each held direction.
	MoveStep = 0.1
)

var yawAxis = mathutil.Vec3{0, 1, 0}

// Integrate folds one tick of input into the world's camera pose. Yaw
// is applied before movement so held keys walk along the freshly
// updated view basis. Vertical pointer movement is ignored.
func Integrate(w *scene.World, s Snapshot) {
	cam := w.CameraPose()

	if s.PointerDX != 0 {
		// The fixed yaw axis can never be degenerate.
		yaw, _ := mathutil.FromAngleAxis(LookSensitivity*float32(s.PointerDX), yawAxis)
		cam.Ori = cam.Ori.Mul(yaw).Normalize()
	}

	forward := cam.Ori.Rotate(mathutil.Vec3{0, 0, 1})
	right := cam.Ori.Rotate(mathutil.Vec3{1, 0, 0})
	if s.Forward {
		cam.Pos = cam.Pos.Add(forward.Scale(MoveStep))
	}
	if s.Backward {
		cam.Pos = cam.Pos.Sub(forward.Scale(MoveStep))
	}
	if s.Left {
		cam.Pos = cam.Pos.Sub(right.Scale(MoveStep))
	}
	if s.Right {
		cam.Pos = cam.Pos.Add(right.Scale(MoveStep))
	}

	w.SetCameraPose(cam)
}
