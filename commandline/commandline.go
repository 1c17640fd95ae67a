// SPDX-License-Identifier: GPL-2.0-or-later

package commandline

import (
	"flag"
)

var (
	fullscreen bool
	mono       bool
	noSensors  bool
	window     bool

	height int
	width  int

	configFile string
	mediaDir   string
)

func init() {
	flag.BoolVar(&fullscreen, "fullscreen", false, "start fullscreen")
	flag.BoolVar(&window, "window", false, "start windowed")
	flag.BoolVar(&mono, "mono", false, "start in mono (non VR) mode")
	flag.BoolVar(&noSensors, "nosensors", false, "disable head tracking")
	flag.IntVar(&width, "width", 0, "window width")
	flag.IntVar(&height, "height", 0, "window height")
	flag.StringVar(&configFile, "config", "", "config file to use")
	flag.StringVar(&mediaDir, "mediadir", "", "directory scanned by the video browser")
}

func Fullscreen() bool   { return fullscreen && !window }
func Mono() bool         { return mono }
func NoSensors() bool    { return noSensors }
func Width() int         { return width }
func Height() int        { return height }
func ConfigFile() string { return configFile }
func MediaDir() string   { return mediaDir }

// Source returns the media file given as first positional argument.
func Source() string {
	return flag.Arg(0)
}
