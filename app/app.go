// SPDX-License-Identifier: GPL-2.0-or-later

// Package app wires the tracker, the decoder and the renderer into
// the per frame loop.
package app

import (
	"log"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"

	"vrplay/bridge"
	"vrplay/browse"
	"vrplay/commandline"
	"vrplay/config"
	"vrplay/cvars"
	"vrplay/gametime"
	"vrplay/input"
	"vrplay/media"
	"vrplay/panels"
	"vrplay/render"
	"vrplay/sensor"
	"vrplay/ui"
	"vrplay/window"
)

const screenPanel = "screen"

type host struct {
	cfg      *config.Config
	time     gametime.FrameTime
	renderer *render.Renderer
	tracker  *sensor.Tracker
	decoder  *media.Decoder
	audio    *bridge.Player
	ui       *ui.UI
	inputs   *input.State
	panels   *panels.Manager

	// A file picked in the menu is applied at the top of the next
	// frame, never in the middle of one.
	pendingSource string
	session       string
	quit          bool
}

func Main() error {
	// The GL context is current on the thread that creates it. Pin
	// this goroutine before any SDL or GL call so the context never
	// loses its thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	cfg := config.Load(commandline.ConfigFile())
	seedCvars(cfg)

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS | sdl.INIT_GAMECONTROLLER); err != nil {
		return errors.Wrap(err, "sdl init")
	}
	defer sdl.Quit()

	width, height := cfg.Width, cfg.Height
	if commandline.Width() > 0 {
		width = int32(commandline.Width())
	}
	if commandline.Height() > 0 {
		height = int32(commandline.Height())
	}
	fullscreen := cfg.Fullscreen || commandline.Fullscreen()
	if err := window.SetMode(width, height, fullscreen); err != nil {
		return err
	}
	defer window.Shutdown()

	h, err := newHost(cfg)
	if err != nil {
		return err
	}
	defer h.shutdown()

	for !h.quit {
		h.pollEvents()
		if !h.time.UpdateTime() {
			time.Sleep(time.Millisecond)
			continue
		}
		h.frame()
		h.time.FrameIncrease()
	}
	return nil
}

func newHost(cfg *config.Config) (*host, error) {
	dw, dh := window.DrawableSize()
	renderer, err := render.NewRenderer(dw, dh, cfg.UISize)
	if err != nil {
		return nil, err
	}

	h := &host{
		cfg:      cfg,
		renderer: renderer,
		decoder:  media.NewDecoder(media.Config{FFmpeg: cfg.FFmpeg}),
		audio:    bridge.NewPlayer(),
		ui:       ui.New(int(cfg.UISize)),
		inputs:   input.NewState(),
		panels:   panels.NewManager(),
	}
	h.panels.Put(panels.Panel{ID: screenPanel, Content: "video"})
	h.panels.Put(panels.Panel{ID: "menu", Content: "browser"})

	if !commandline.NoSensors() {
		remap, err := sensor.ParseRemap(cfg.SensorRemap)
		if err != nil {
			log.Printf("sensor: remap %v: %v, using default", cfg.SensorRemap, err)
			remap = sensor.DefaultRemap()
		}
		h.tracker = sensor.Start(sensor.OpenSDL, remap)
	}

	if !commandline.Mono() {
		h.renderer.SetVRMode(true)
	}

	mediaDir := commandline.MediaDir()
	if files, err := browse.Videos(mediaDir); err != nil {
		log.Printf("browse: %v", err)
	} else {
		h.ui.SetFiles(files)
	}

	if src := commandline.Source(); src != "" {
		h.pendingSource = src
	}
	return h, nil
}

func (h *host) shutdown() {
	h.decoder.Stop()
	h.audio.Stop()
	if h.tracker != nil {
		h.tracker.Stop()
	}
}

func seedCvars(cfg *config.Config) {
	cvars.LensRadius.SetValue(float32(cfg.LensRadius))
	cvars.LensCenterOffset.SetValue(float32(cfg.LensCenterOffset))
	cvars.ContentScale.SetValue(float32(cfg.ContentScale))
	cvars.LensIPD.SetValue(float32(cfg.IPD))
	if cfg.Borderless {
		cvars.VideoBorderLess.SetByString("1")
	}
}
