package engine

// SignalKind is the transition a scene asks the manager to perform.
type SignalKind uint8

const (
	SignalNone    SignalKind = iota // stay on the current scene
	SignalPush                      // suspend the current scene and enter a new one
	SignalReplace                   // exit the current scene and enter a new one
	SignalPop                       // exit the current scene and resume the one below
	SignalQuit                      // terminate after this frame
)

// String returns the transition name for logs.
func (k SignalKind) String() string {
	switch k {
	case SignalNone:
		return "none"
	case SignalPush:
		return "push"
	case SignalReplace:
		return "replace"
	case SignalPop:
		return "pop"
	case SignalQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Signal is returned from HandleInput and Update. Scene is set only for
// Push and Replace.
type Signal struct {
	Kind  SignalKind
	Scene Scene
}

// None leaves the stack unchanged.
func None() Signal { return Signal{} }

// Push enters s on top of the current scene.
func Push(s Scene) Signal { return Signal{Kind: SignalPush, Scene: s} }

// Replace swaps the current scene for s.
func Replace(s Scene) Signal { return Signal{Kind: SignalReplace, Scene: s} }

// Pop removes the current scene.
func Pop() Signal { return Signal{Kind: SignalPop} }

// Quit ends the program after the current frame.
func Quit() Signal { return Signal{Kind: SignalQuit} }
