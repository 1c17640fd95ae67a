// SPDX-License-Identifier: GPL-2.0-or-later

package cvars

import (
	"vrplay/cvar"
)

var (
	ContentScale      *cvar.Cvar
	GyroEnabled       *cvar.Cvar
	HostMaxFps        *cvar.Cvar
	LensCenterOffset  *cvar.Cvar
	LensIPD           *cvar.Cvar
	LensRadius        *cvar.Cvar
	VideoBorderLess   *cvar.Cvar
	VideoVerticalSync *cvar.Cvar
)

func init() {
	ContentScale = cvar.MustRegister("content_scale", "1.0")
	GyroEnabled = cvar.MustRegister("gyro_enabled", "1")
	HostMaxFps = cvar.MustRegister("host_maxfps", "72")
	LensCenterOffset = cvar.MustRegister("lens_center_offset", "0")
	LensIPD = cvar.MustRegister("lens_ipd", "0.065")
	LensRadius = cvar.MustRegister("lens_radius", "1.0")
	VideoBorderLess = cvar.MustRegister("vid_borderless", "0")
	VideoVerticalSync = cvar.MustRegister("vid_vsync", "1")
}
