package mathutil

import (
	"errors"
	"math"
)

// ErrZeroAxis reports a rotation axis too short to define a rotation plane.
var ErrZeroAxis = errors.New("mathutil: rotation axis has near-zero length")

// Rotor is a unit quaternion stored scalar-first: one scalar part
// followed by three bivector parts. It encodes a rotation applied by
// the two-sided sandwich product, so composing rotations multiplies
// rotors.
type Rotor [4]float32

// IdentityRotor returns the rotor that rotates nothing.
func IdentityRotor() Rotor {
	return Rotor{1, 0, 0, 0}
}

// FromAngleAxis builds the rotor rotating by angle radians about axis.
// The axis may have any nonzero length; the angle keeps its sign, so
// negating the angle is the same as flipping the axis.
func FromAngleAxis(angle float32, axis Vec3) (Rotor, error) {
	if axis.Len() < 1e-12 {
		return IdentityRotor(), ErrZeroAxis
	}
	cosHalf := float32(math.Cos(float64(angle) * 0.5))
	// Rounding can push 1-cos^2 slightly negative; clamp before the root.
	s := 1 - cosHalf*cosHalf
	if s < 0 {
		s = 0
	}
	sinHalf := float32(math.Sqrt(float64(s)))
	if angle < 0 {
		sinHalf = -sinHalf
	}
	u := axis.Normalize().Scale(sinHalf)
	return Rotor{cosHalf, u[0], u[1], u[2]}, nil
}

// Mul returns the product a*b, the rotor applying b first and then a.
func (a Rotor) Mul(b Rotor) Rotor {
	return Rotor{
		a[0]*b[0] - a[1]*b[1] - a[2]*b[2] - a[3]*b[3],
		a[0]*b[1] + a[1]*b[0] + a[2]*b[3] - a[3]*b[2],
		a[0]*b[2] + a[2]*b[0] + a[3]*b[1] - a[1]*b[3],
		a[0]*b[3] + a[3]*b[0] + a[1]*b[2] - a[2]*b[1],
	}
}

// Conjugate negates the bivector parts. For a unit rotor this is the
// inverse rotation.
func (q Rotor) Conjugate() Rotor {
	return Rotor{q[0], -q[1], -q[2], -q[3]}
}

func (q Rotor) Norm() float32 {
	return float32(math.Sqrt(float64(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])))
}

// Normalize rescales q to unit norm, countering the drift that builds
// up over long products of incremental rotations.
func (q Rotor) Normalize() Rotor {
	n := q.Norm()
	if n < 1e-12 {
		return IdentityRotor()
	}
	inv := 1 / n
	return Rotor{q[0] * inv, q[1] * inv, q[2] * inv, q[3] * inv}
}

// Rotate applies the rotor to v through the expanded sandwich product,
// which costs two cross products instead of two full quaternion
// multiplies.
func (q Rotor) Rotate(v Vec3) Vec3 {
	u := Vec3{q[1], q[2], q[3]}
	uv := u.Cross(v)
	return v.Add(u.Cross(uv).Add(uv.Scale(q[0])).Scale(2))
}

// InverseRotate applies the opposite rotation, equivalent to rotating
// by the conjugate.
func (q Rotor) InverseRotate(v Vec3) Vec3 {
	u := Vec3{q[1], q[2], q[3]}
	uv := u.Cross(v)
	return v.Add(u.Cross(uv).Sub(uv.Scale(q[0])).Scale(2))
}
