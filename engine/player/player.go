// Package player owns the input-driven physics body: walking, jumping,
// flying, crouching, and AABB collision against the voxel store. It runs
// only on the owner core; workers see the resulting camera pose through the
// per-frame snapshot.
package player

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxen/engine/camera"
	"voxen/engine/world"
)

const (
	playerHeight = float32(1.8)
	crouchHeight = float32(1.3)
	// Eye ratios place the camera near the top of the body; the AABB
	// extends eyeRatio*height below the eye and the rest above it.
	eyeRatio       = float32(0.9)
	crouchEyeRatio = float32(0.8)
	playerWidth    = float32(0.6)

	gravity      = float32(0.025)
	jumpStrength = float32(0.3)
	flySpeed     = float32(0.15)
	moveSpeed    = float32(0.1)

	// turnSpeed is the yaw/pitch step per tick while an arrow key is held.
	turnSpeed = float32(0.03)

	groundProbe = float32(0.05)
)

// Player is the physics body. Position is the eye point, not the feet.
type Player struct {
	Position  mgl32.Vec3
	Velocity  mgl32.Vec3
	Yaw       float32
	Pitch     float32
	Crouching bool
}

// Input is one tick's worth of movement commands.
type Input struct {
	Forward, Back, Left, Right bool
	// Ascend jumps when grounded and flies up when airborne.
	Ascend bool
	// Descend flies down while airborne. It is a held command.
	Descend bool
	// CrouchToggle flips the crouch state when grounded. It is
	// edge-triggered so a held key does not oscillate.
	CrouchToggle bool

	TurnYaw   float32
	TurnPitch float32
}

// Spawn places a player standing on the topmost solid block of the given
// column.
func Spawn(store *world.Octree, x, z float32) *Player {
	top := 0
	for y := store.Size() - 1; y >= 0; y-- {
		if store.Get(int(x), y, int(z)).IsOpaque() {
			top = y + 1
			break
		}
	}
	return &Player{
		Position: mgl32.Vec3{x, float32(top) + playerHeight*eyeRatio + 0.01, z},
	}
}

// Pose returns the camera pose for the current state.
func (p *Player) Pose() camera.Pose {
	return camera.Pose{Position: p.Position, Yaw: p.Yaw, Pitch: p.Pitch}
}

// Step advances the body by one fixed tick.
func (p *Player) Step(store *world.Octree, in Input) {
	p.Yaw += in.TurnYaw
	p.Pitch = camera.ClampPitch(p.Pitch + in.TurnPitch)

	onGround := p.onGround(store)
	pose := p.Pose()

	var wish mgl32.Vec3
	if in.Forward {
		wish = wish.Add(pose.FlatForward())
	}
	if in.Back {
		wish = wish.Sub(pose.FlatForward())
	}
	if in.Right {
		wish = wish.Add(pose.Right())
	}
	if in.Left {
		wish = wish.Sub(pose.Right())
	}
	if l := wish.Len(); l > 0 {
		wish = wish.Mul(1 / l)
	}
	p.Velocity[0] = wish.X() * moveSpeed
	p.Velocity[2] = wish.Z() * moveSpeed

	flyY := float32(0)
	flying := false
	if in.Ascend {
		if onGround {
			p.Velocity[1] = jumpStrength
		} else {
			flyY = flySpeed
			flying = true
		}
	}
	if in.CrouchToggle && onGround {
		p.Crouching = !p.Crouching
	}
	if in.Descend && !onGround {
		flyY = -flySpeed
		flying = true
	}
	if flying {
		p.Velocity[1] = flyY
	} else if onGround {
		if p.Velocity[1] < 0 {
			p.Velocity[1] = 0
		}
	} else {
		p.Velocity[1] -= gravity
	}

	// Move one axis at a time so a blocked axis still lets the others
	// slide along the obstacle.
	next := p.Position
	next[0] += p.Velocity[0]
	if p.collidesAt(store, next) {
		next[0] = p.Position[0]
	}
	next[2] += p.Velocity[2]
	if p.collidesAt(store, next) {
		next[2] = p.Position[2]
	}
	next[1] += p.Velocity[1]
	if p.collidesAt(store, next) {
		next[1] = p.Position[1]
		p.Velocity[1] = 0
	}
	p.Position = next
}

// OnGround reports whether the body is resting on a solid block.
func (p *Player) OnGround(store *world.Octree) bool { return p.onGround(store) }

func (p *Player) onGround(store *world.Octree) bool {
	probe := p.Position
	probe[1] -= groundProbe
	return p.collidesAt(store, probe)
}

func (p *Player) bodyHeight() float32 {
	if p.Crouching {
		return crouchHeight
	}
	return playerHeight
}

func (p *Player) bodyEyeRatio() float32 {
	if p.Crouching {
		return crouchEyeRatio
	}
	return eyeRatio
}

// collidesAt tests the body AABB centered on the eye point against every
// voxel it overlaps.
func (p *Player) collidesAt(store *world.Octree, eye mgl32.Vec3) bool {
	h := p.bodyHeight()
	r := p.bodyEyeRatio()
	half := playerWidth / 2

	minY := eye.Y() - h*r
	maxY := eye.Y() + h*(1-r)

	for by := int(minY); by <= int(maxY); by++ {
		for bz := int(eye.Z() - half); bz <= int(eye.Z()+half); bz++ {
			for bx := int(eye.X() - half); bx <= int(eye.X()+half); bx++ {
				if store.Get(bx, by, bz).IsOpaque() {
					return true
				}
			}
		}
	}
	return false
}
