package mathutil

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tol is the accuracy bound for unit norms and round-tripped
// coordinates after float32 rotor arithmetic.
const tol = 1e-4

func assertVec3Near(t *testing.T, want, got Vec3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDeltaf(t, want[i], got[i], tol, "component %d of %v vs %v", i, want, got)
	}
}

func randomVec3(rng *rand.Rand, scale float32) Vec3 {
	return Vec3{
		(rng.Float32()*2 - 1) * scale,
		(rng.Float32()*2 - 1) * scale,
		(rng.Float32()*2 - 1) * scale,
	}
}

func randomRotor(t *testing.T, rng *rand.Rand) Rotor {
	t.Helper()
	axis := randomVec3(rng, 1)
	if axis.Len() < 1e-3 {
		axis = Vec3{1, 0, 0}
	}
	angle := (rng.Float32()*2 - 1) * math.Pi
	q, err := FromAngleAxis(angle, axis)
	require.NoError(t, err)
	return q
}

func TestFromAngleAxisUnitNorm(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		q := randomRotor(t, rng)
		assert.InDelta(t, 1, q.Norm(), tol)
	}
}

func TestFromAngleAxisZeroAxis(t *testing.T) {
	q, err := FromAngleAxis(1.5, Vec3{})
	assert.ErrorIs(t, err, ErrZeroAxis)
	assert.Equal(t, IdentityRotor(), q)
}

func TestFromAngleAxisNegativeAngle(t *testing.T) {
	axis := Vec3{0.3, -1.2, 0.5}
	a, err := FromAngleAxis(-0.8, axis)
	require.NoError(t, err)
	b, err := FromAngleAxis(0.8, axis.Scale(-1))
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		assert.InDelta(t, b[i], a[i], tol)
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	q, err := FromAngleAxis(math.Pi/2, Vec3{0, 0, 1})
	require.NoError(t, err)

	assertVec3Near(t, Vec3{0, 1, 0}, q.Rotate(Vec3{1, 0, 0}))
	assertVec3Near(t, Vec3{-1, 0, 0}, q.Rotate(Vec3{0, 1, 0}))
	assertVec3Near(t, Vec3{0, 0, 1}, q.Rotate(Vec3{0, 0, 1}))
}

func TestMulComposesRotations(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		a := randomRotor(t, rng)
		b := randomRotor(t, rng)
		v := randomVec3(rng, 1)
		assertVec3Near(t, a.Rotate(b.Rotate(v)), a.Mul(b).Rotate(v))
	}
}

func TestInverseRotateUndoesRotate(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		q := randomRotor(t, rng)
		v := randomVec3(rng, 1)
		assertVec3Near(t, v, q.InverseRotate(q.Rotate(v)))
	}
}

func TestConjugateMatchesInverseRotate(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 100; i++ {
		q := randomRotor(t, rng)
		v := randomVec3(rng, 1)
		assertVec3Near(t, q.Conjugate().Rotate(v), q.InverseRotate(v))
	}
}

func TestRotatePreservesLength(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 100; i++ {
		q := randomRotor(t, rng)
		v := randomVec3(rng, 2)
		assert.InDelta(t, v.Len(), q.Rotate(v).Len(), tol)
	}
}

func TestNormalizeRestoresUnitNorm(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	q := IdentityRotor()
	// Long products drift away from unit norm in float32.
	for i := 0; i < 1000; i++ {
		q = q.Mul(randomRotor(t, rng))
	}
	assert.InDelta(t, 1, q.Normalize().Norm(), tol)

	scaled := Rotor{3, 0, 0, 0}
	assert.InDelta(t, 1, scaled.Normalize().Norm(), tol)
}
