// SPDX-License-Identifier: GPL-2.0-or-later

// Package panels tracks the floating surfaces of the scene: the video
// screen, the menu, anything else that hangs in space in front of the
// viewer.
package panels

import (
	"sort"
	"sync"

	"vrplay/math/quat"
	"vrplay/math/vec"
)

// Panel is one floating surface.
type Panel struct {
	ID       string
	Position vec.Vec3
	Rotation quat.Quat
	Scale    float32
	Content  string
}

// Manager owns the panel set. All methods are safe for concurrent use.
type Manager struct {
	mu     sync.Mutex
	panels map[string]Panel
}

func NewManager() *Manager {
	return &Manager{panels: make(map[string]Panel)}
}

// Put inserts or replaces a panel. A zero scale is corrected to one.
func (m *Manager) Put(p Panel) {
	if p.Scale == 0 {
		p.Scale = 1
	}
	if (p.Rotation == quat.Quat{}) {
		p.Rotation = quat.Identity()
	}
	m.mu.Lock()
	m.panels[p.ID] = p
	m.mu.Unlock()
}

func (m *Manager) Get(id string) (Panel, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.panels[id]
	return p, ok
}

func (m *Manager) Remove(id string) {
	m.mu.Lock()
	delete(m.panels, id)
	m.mu.Unlock()
}

// List returns the panels ordered by id, for stable draw order.
func (m *Manager) List() []Panel {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Panel, 0, len(m.panels))
	for _, p := range m.panels {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Rescale multiplies a panel's scale, keeping it within sane bounds.
func (m *Manager) Rescale(id string, factor float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.panels[id]
	if !ok {
		return
	}
	p.Scale *= factor
	if p.Scale < 0.1 {
		p.Scale = 0.1
	}
	if p.Scale > 10 {
		p.Scale = 10
	}
	m.panels[id] = p
}
