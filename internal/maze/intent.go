package maze

import "math"

// DefaultDeadzone is the stick deflection below which an axis reads as centred.
const DefaultDeadzone = 0.5

// Direction is a discrete 8-way direction, DirNone when centred.
type Direction struct {
	DX, DY int
}

// DirNone is the centred direction.
var DirNone = Direction{}

var directionNames = map[Direction]string{
	{0, 0}: "none", {0, -1}: "N", {1, -1}: "NE", {1, 0}: "E", {1, 1}: "SE",
	{0, 1}: "S", {-1, 1}: "SW", {-1, 0}: "W", {-1, -1}: "NW",
}

// String returns a compass label.
func (d Direction) String() string {
	if n, ok := directionNames[d]; ok {
		return n
	}
	return "?"
}

// Controls is one frame of movement input, already read from the devices.
type Controls struct {
	Left, Right, Up, Down bool // held direction keys

	HasStick       bool    // a primary gamepad is connected
	StickX, StickY float64 // left stick axes, roughly [-1,1]
}

// KeysDirection converts held keys to a direction. Opposite keys cancel.
func KeysDirection(c Controls) Direction {
	var d Direction
	if c.Left {
		d.DX--
	}
	if c.Right {
		d.DX++
	}
	if c.Up {
		d.DY--
	}
	if c.Down {
		d.DY++
	}
	return d
}

// StickDirection discretises stick axes with a per-axis deadzone.
func StickDirection(ax, ay, deadzone float64) Direction {
	return Direction{DX: axisStep(ax, deadzone), DY: axisStep(ay, deadzone)}
}

func axisStep(v, deadzone float64) int {
	if math.IsNaN(v) || math.Abs(v) <= deadzone {
		return 0
	}
	if v > 0 {
		return 1
	}
	return -1
}

// CombineDirections sums two directions and clamps each axis to [-1,1].
func CombineDirections(a, b Direction) Direction {
	return Direction{DX: clampInt(a.DX+b.DX, -1, 1), DY: clampInt(a.DY+b.DY, -1, 1)}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// HandleControls turns a frame of input into a queued move. It returns true
// when a new move was queued. While a move is pending, input is dropped.
// The stick is read continuously, the same way held keys are.
func (s *Sim) HandleControls(c Controls) bool {
	stick := DirNone
	if c.HasStick {
		stick = StickDirection(c.StickX, c.StickY, s.deadzone)
		if stick != s.lastPadDir {
			s.events.AddVerbose(s.ticks, CatInput, "stick", stick.String())
		}
		s.lastPadDir = stick
	}
	if s.hasPending {
		return false
	}
	d := CombineDirections(KeysDirection(c), stick)
	if d == DirNone {
		return false
	}
	tx := clampInt(s.playerX+d.DX, 0, s.m.GridW-1)
	ty := clampInt(s.playerY+d.DY, 0, s.m.GridH-1)
	if tx == s.playerX && ty == s.playerY {
		return false
	}
	s.pending = Cell{X: tx, Y: ty}
	s.hasPending = true
	s.events.AddVerbose(s.ticks, CatInput, "queued", s.pending.String())
	return true
}

// LastStickDirection returns the most recent discrete stick direction.
func (s *Sim) LastStickDirection() Direction {
	return s.lastPadDir
}
