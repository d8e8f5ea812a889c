// Package scene runs named scenes on a shared tick. One scene is started as
// the main scene; others can be launched to run alongside it, and all
// active scenes update and draw in the order they became active.
package scene

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/starcatch/internal/core"
)

var (
	// ErrUnknownScene is returned when starting a key that was never added.
	ErrUnknownScene = errors.New("scene: unknown scene")
	// ErrDuplicateScene is returned when a key is added twice.
	ErrDuplicateScene = errors.New("scene: duplicate scene")
)

// Scene is the lifecycle contract a scene exposes to the manager.
type Scene interface {
	// Create builds the scene's world. Called each time the scene starts.
	Create() error
	// Update advances the scene by dt seconds.
	Update(dt float64)
	// Draw renders the scene; later scenes draw over earlier ones.
	Draw(dst *core.Screen)
}

// Manager owns registered scenes and the list of active ones.
type Manager struct {
	scenes map[string]Scene
	active []string
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{scenes: make(map[string]Scene)}
}

// Add registers a scene under key without starting it.
func (m *Manager) Add(key string, s Scene) error {
	if _, exists := m.scenes[key]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateScene, key)
	}
	m.scenes[key] = s
	return nil
}

// Start stops every active scene and starts key as the only one.
func (m *Manager) Start(key string) error {
	if _, ok := m.scenes[key]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownScene, key)
	}
	m.active = m.active[:0]
	return m.activate(key)
}

// Launch starts key alongside the scenes already running. Launching an
// active scene does nothing.
func (m *Manager) Launch(key string) error {
	if _, ok := m.scenes[key]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownScene, key)
	}
	if m.IsActive(key) {
		return nil
	}
	return m.activate(key)
}

func (m *Manager) activate(key string) error {
	m.active = append(m.active, key)
	if err := m.scenes[key].Create(); err != nil {
		m.Stop(key)
		return fmt.Errorf("scene: create %q: %w", key, err)
	}
	return nil
}

// Stop deactivates key. Stopping an inactive scene does nothing.
func (m *Manager) Stop(key string) {
	kept := m.active[:0]
	for _, k := range m.active {
		if k != key {
			kept = append(kept, k)
		}
	}
	m.active = kept
}

// IsActive reports whether key is currently running.
func (m *Manager) IsActive(key string) bool {
	for _, k := range m.active {
		if k == key {
			return true
		}
	}
	return false
}

// Active returns the running scene keys in update order.
func (m *Manager) Active() []string {
	return append([]string(nil), m.active...)
}

// Update advances every active scene.
func (m *Manager) Update(dt float64) {
	for _, key := range m.Active() {
		m.scenes[key].Update(dt)
	}
}

// Draw renders every active scene in order.
func (m *Manager) Draw(dst *core.Screen) {
	for _, key := range m.active {
		m.scenes[key].Draw(dst)
	}
}
