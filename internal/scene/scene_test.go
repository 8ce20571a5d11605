package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rotorcast/internal/mathutil"
)

func TestAddCubeRoundTrip(t *testing.T) {
	w := NewWorld()
	ori, err := mathutil.FromAngleAxis(0.5, mathutil.Vec3{0, 1, 0})
	require.NoError(t, err)
	pose := mathutil.Pose{Ori: ori, Pos: mathutil.Vec3{1, 2, 3}}

	h, err := w.AddCube(pose, 2.5)
	require.NoError(t, err)

	assert.Equal(t, 1, w.CubeCount())
	assert.Equal(t, pose, w.CubePose(h))
	assert.Equal(t, float32(2.5), w.CubeSize(h))
}

func TestAddCubeRejectsNonPositiveSize(t *testing.T) {
	w := NewWorld()
	for _, size := range []float32{0, -1} {
		_, err := w.AddCube(mathutil.IdentityPose(), size)
		assert.ErrorIs(t, err, ErrCubeSize)
	}
	assert.Equal(t, 0, w.CubeCount())
}

func TestAddCubeCapacity(t *testing.T) {
	w := NewWorld()
	first := mathutil.Pose{Ori: mathutil.IdentityRotor(), Pos: mathutil.Vec3{9, 8, 7}}
	h, err := w.AddCube(first, 1)
	require.NoError(t, err)

	for i := 1; i < MaxCubes; i++ {
		_, err := w.AddCube(mathutil.IdentityPose(), 1)
		require.NoError(t, err)
	}
	require.Equal(t, MaxCubes, w.CubeCount())

	_, err = w.AddCube(mathutil.IdentityPose(), 1)
	assert.ErrorIs(t, err, ErrWorldFull)

	// A rejected add must leave the world untouched.
	assert.Equal(t, MaxCubes, w.CubeCount())
	assert.Equal(t, first, w.CubePose(h))
}

func TestInvalidHandlePanics(t *testing.T) {
	w := NewWorld()
	_, err := w.AddCube(mathutil.IdentityPose(), 1)
	require.NoError(t, err)

	assert.Panics(t, func() { w.CubePose(Handle(1)) })
	assert.Panics(t, func() { w.CubeSize(Handle(-1)) })
}

func TestCameraPose(t *testing.T) {
	w := NewWorld()
	assert.Equal(t, mathutil.IdentityPose(), w.CameraPose())

	p := mathutil.Pose{Ori: mathutil.IdentityRotor(), Pos: mathutil.Vec3{0, 0, -5}}
	w.SetCameraPose(p)
	assert.Equal(t, p, w.CameraPose())
}

func TestDemoWorldLayout(t *testing.T) {
	w := DemoWorld()
	require.Equal(t, 4, w.CubeCount())

	wantPos := []mathutil.Vec3{{2, 0, 2}, {2, 0, -2}, {-2, 0, 2}, {-2, 0, -2}}
	for i, want := range wantPos {
		pose := w.CubePose(Handle(i))
		assert.Equal(t, want, pose.Pos)
		assert.Equal(t, mathutil.IdentityRotor(), pose.Ori)
		assert.Equal(t, float32(1), w.CubeSize(Handle(i)))
	}

	cam := w.CameraPose()
	assert.Equal(t, mathutil.Vec3{0, -4, 0}, cam.Pos)
	pitch, err := mathutil.FromAngleAxis(math.Pi/2, mathutil.Vec3{-1, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, pitch, cam.Ori)
}
