package engine

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Manager owns the scene stack. The last scene is the active one; scenes
// below it are suspended and neither updated nor drawn.
type Manager struct {
	stack  []Scene
	quit   bool
	in     Input
	logger *log.Logger
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLogger sets the logger used for transition messages.
func WithLogger(l *log.Logger) ManagerOption {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewManager pushes initial and enters it.
func NewManager(in Input, initial Scene, gs *GameState, opts ...ManagerOption) (*Manager, error) {
	m := &Manager{
		in:     in,
		logger: log.New(io.Discard),
	}
	for _, o := range opts {
		o(m)
	}
	if err := m.push(initial, gs); err != nil {
		return nil, err
	}
	return m, nil
}

// Step runs one frame of logic: input on the top scene, apply its signal,
// then update whichever scene is on top now and apply that signal.
func (m *Manager) Step(dt float64, gs *GameState) error {
	top := m.Top()
	if top == nil {
		return nil
	}
	if err := m.apply(top.HandleInput(m.in, gs), gs); err != nil {
		return err
	}
	top = m.Top()
	if top == nil {
		return nil
	}
	return m.apply(top.Update(dt, gs), gs)
}

// Render draws the top scene only.
func (m *Manager) Render(r Renderer, gs *GameState) {
	if top := m.Top(); top != nil {
		top.Draw(r, gs)
	}
}

// ShouldTerminate reports whether a scene asked to quit or the stack ran empty.
func (m *Manager) ShouldTerminate() bool {
	return m.quit || len(m.stack) == 0
}

// Shutdown exits every remaining scene, top first.
func (m *Manager) Shutdown(gs *GameState) {
	for len(m.stack) > 0 {
		m.pop(gs)
	}
}

// Top returns the active scene, or nil when the stack is empty.
func (m *Manager) Top() Scene {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

// Depth returns the number of scenes on the stack.
func (m *Manager) Depth() int {
	return len(m.stack)
}

func (m *Manager) apply(sig Signal, gs *GameState) error {
	switch sig.Kind {
	case SignalNone:
		return nil
	case SignalPush:
		return m.push(sig.Scene, gs)
	case SignalReplace:
		m.pop(gs)
		return m.push(sig.Scene, gs)
	case SignalPop:
		m.pop(gs)
		if len(m.stack) == 0 {
			m.logger.Debug("scene stack empty")
		}
		return nil
	case SignalQuit:
		m.logger.Debug("quit requested", "depth", len(m.stack))
		m.quit = true
		return nil
	default:
		return fmt.Errorf("engine: unknown signal kind %d", sig.Kind)
	}
}

func (m *Manager) push(s Scene, gs *GameState) error {
	if s == nil {
		return fmt.Errorf("engine: push of nil scene")
	}
	m.stack = append(m.stack, s)
	m.logger.Debug("scene enter", "scene", sceneName(s), "depth", len(m.stack))
	if err := s.OnEnter(gs); err != nil {
		m.stack = m.stack[:len(m.stack)-1]
		return fmt.Errorf("engine: enter %s: %w", sceneName(s), err)
	}
	return nil
}

func (m *Manager) pop(gs *GameState) {
	top := m.Top()
	if top == nil {
		return
	}
	m.stack[len(m.stack)-1] = nil
	m.stack = m.stack[:len(m.stack)-1]
	top.OnExit(gs)
	m.logger.Debug("scene exit", "scene", sceneName(top), "depth", len(m.stack))
}

func sceneName(s Scene) string {
	if n, ok := s.(fmt.Stringer); ok {
		return n.String()
	}
	return fmt.Sprintf("%T", s)
}
