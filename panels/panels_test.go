// SPDX-License-Identifier: GPL-2.0-or-later

package panels

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vrplay/math/quat"
)

func TestPutDefaults(t *testing.T) {
	m := NewManager()
	m.Put(Panel{ID: "screen"})
	p, ok := m.Get("screen")
	assert.True(t, ok)
	assert.Equal(t, float32(1), p.Scale)
	assert.Equal(t, quat.Identity(), p.Rotation)
}

func TestListIsStable(t *testing.T) {
	m := NewManager()
	m.Put(Panel{ID: "menu"})
	m.Put(Panel{ID: "screen"})
	m.Put(Panel{ID: "about"})
	var ids []string
	for _, p := range m.List() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"about", "menu", "screen"}, ids)
}

func TestRescaleClamps(t *testing.T) {
	m := NewManager()
	m.Put(Panel{ID: "screen", Scale: 1})
	m.Rescale("screen", 100)
	p, _ := m.Get("screen")
	assert.Equal(t, float32(10), p.Scale)
	m.Rescale("screen", 0.0001)
	p, _ = m.Get("screen")
	assert.Equal(t, float32(0.1), p.Scale)
}

func TestRemove(t *testing.T) {
	m := NewManager()
	m.Put(Panel{ID: "screen"})
	m.Remove("screen")
	_, ok := m.Get("screen")
	assert.False(t, ok)
}
