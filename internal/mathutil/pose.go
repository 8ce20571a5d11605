package mathutil

// Pose is a rigid transform: rotate by Ori, then translate by Pos.
type Pose struct {
	Ori Rotor
	Pos Vec3
}

// IdentityPose returns the do-nothing transform.
func IdentityPose() Pose {
	return Pose{Ori: IdentityRotor()}
}

// Compose returns the transform equivalent to applying b first and
// then a.
func (a Pose) Compose(b Pose) Pose {
	return Pose{
		Ori: a.Ori.Mul(b.Ori),
		Pos: a.Pos.Add(a.Ori.Rotate(b.Pos)),
	}
}

// Inverse returns the transform mapping the pose's target frame back
// to its source frame.
func (p Pose) Inverse() Pose {
	inv := p.Ori.Conjugate()
	return Pose{
		Ori: inv,
		Pos: inv.Rotate(p.Pos).Scale(-1),
	}
}

// TransformPoint maps v from the pose's source frame to its target
// frame.
func (p Pose) TransformPoint(v Vec3) Vec3 {
	return p.Ori.Rotate(v).Add(p.Pos)
}
