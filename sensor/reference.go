// SPDX-License-Identifier: GPL-2.0-or-later

package sensor

import (
	"sync"

	"vrplay/math/quat"
)

// The tare reference survives tracker restarts (app suspend/resume
// recreates the tracker) but not the process. It is written only by
// Recenter and read only when a tracker starts.
var (
	savedMu        sync.Mutex
	savedReference = quat.Identity()
)

func loadReference() quat.Quat {
	savedMu.Lock()
	defer savedMu.Unlock()
	return savedReference
}

func storeReference(q quat.Quat) {
	savedMu.Lock()
	defer savedMu.Unlock()
	savedReference = q
}
