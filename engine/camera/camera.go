// Package camera holds the view pose and its projection math.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Pose is the plain snapshot of a camera published once per frame; workers
// consume it read-only.
type Pose struct {
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32
}

// Forward returns the view direction for the pose.
func (p Pose) Forward() mgl32.Vec3 {
	cy := float32(math.Cos(float64(p.Yaw)))
	sy := float32(math.Sin(float64(p.Yaw)))
	cp := float32(math.Cos(float64(p.Pitch)))
	sp := float32(math.Sin(float64(p.Pitch)))
	return mgl32.Vec3{cy * cp, sp, sy * cp}.Normalize()
}

// FlatForward returns the walk direction: forward projected to the ground
// plane.
func (p Pose) FlatForward() mgl32.Vec3 {
	cy := float32(math.Cos(float64(p.Yaw)))
	sy := float32(math.Sin(float64(p.Yaw)))
	return mgl32.Vec3{cy, 0, sy}.Normalize()
}

// Right returns the strafe direction on the ground plane.
func (p Pose) Right() mgl32.Vec3 {
	f := p.FlatForward()
	return f.Cross(mgl32.Vec3{0, 1, 0}).Normalize()
}

const (
	// FovY is the vertical field of view in radians.
	FovY = float32(math.Pi / 4)
	// Near and Far bound the view frustum depth.
	Near = float32(0.1)
	Far  = float32(100.0)
)

// ViewProjection builds the combined perspective and look-at transform for
// the pose at the given aspect ratio.
func (p Pose) ViewProjection(aspect float32) mgl32.Mat4 {
	proj := mgl32.Perspective(FovY, aspect, Near, Far)
	view := mgl32.LookAtV(p.Position, p.Position.Add(p.Forward()), mgl32.Vec3{0, 1, 0})
	return proj.Mul4(view)
}

// ClampPitch keeps the pitch strictly inside the poles so the look-at basis
// never degenerates.
func ClampPitch(pitch float32) float32 {
	const limit = float32(math.Pi/2) - 0.01
	if pitch > limit {
		return limit
	}
	if pitch < -limit {
		return -limit
	}
	return pitch
}
