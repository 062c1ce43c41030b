package player

import "voxen/hal"

// Controls folds key events into per-tick Input values. Movement keys act
// while held; crouch, the render-path toggle, and quit are edge-triggered
// and consumed by their accessors.
type Controls struct {
	held map[hal.KeyCode]bool

	descendEdge bool
	togglePath  bool
	quit        bool
}

func NewControls() *Controls {
	return &Controls{held: make(map[hal.KeyCode]bool)}
}

// HandleKey applies one keyboard event.
func (c *Controls) HandleKey(ev hal.KeyEvent) {
	c.held[ev.Code] = ev.Press
	if !ev.Press {
		return
	}
	switch ev.Code {
	case hal.KeyC:
		c.descendEdge = true
	case hal.KeyR:
		c.togglePath = true
	case hal.KeyEscape:
		c.quit = true
	}
}

// Input builds this tick's movement commands and consumes the crouch edge.
func (c *Controls) Input() Input {
	in := Input{
		Forward:      c.held[hal.KeyW],
		Back:         c.held[hal.KeyS],
		Left:         c.held[hal.KeyA],
		Right:        c.held[hal.KeyD],
		Ascend:       c.held[hal.KeySpace],
		Descend:      c.held[hal.KeyC],
		CrouchToggle: c.descendEdge,
	}
	c.descendEdge = false

	if c.held[hal.KeyLeft] {
		in.TurnYaw -= turnSpeed
	}
	if c.held[hal.KeyRight] {
		in.TurnYaw += turnSpeed
	}
	if c.held[hal.KeyUp] {
		in.TurnPitch += turnSpeed
	}
	if c.held[hal.KeyDown] {
		in.TurnPitch -= turnSpeed
	}
	return in
}

// TogglePath reports and consumes a pending render-path switch.
func (c *Controls) TogglePath() bool {
	t := c.togglePath
	c.togglePath = false
	return t
}

// Quit reports whether the user asked to exit.
func (c *Controls) Quit() bool { return c.quit }
