// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/pkg/errors"

	"vrplay/glh"
	"vrplay/math/quat"
	"vrplay/media"
)

// Params are the per frame tuning values the interface exposes.
type Params struct {
	LensRadius       float32
	LensCenterOffset float32
	ContentScale     float32
	IPD              float32
}

// Renderer draws the decoded video and the interface overlay, either
// as one centered view or as two off axis eye views warped through the
// lens distortion pass. No depth testing is used anywhere; draw order
// is the compositing order.
type Renderer struct {
	vr     bool
	width  int32
	height int32

	scene   *glh.Framebuffer
	video   *videoSurface
	overlay *overlayPass
	distort *distortPass
}

func NewRenderer(width, height, overlaySize int32) (*Renderer, error) {
	r := &Renderer{width: width, height: height}
	var err error
	if r.video, err = newVideoSurface(); err != nil {
		return nil, err
	}
	if r.overlay, err = newOverlayPass(overlaySize); err != nil {
		return nil, err
	}
	if r.distort, err = newDistortPass(); err != nil {
		return nil, err
	}
	if r.scene, err = glh.NewFramebuffer(width, height); err != nil {
		return nil, errors.Wrap(err, "stereo target")
	}
	gl.Disable(gl.DEPTH_TEST)
	return r, nil
}

// Resize reconfigures the window-sized targets. The stereo target and
// the distortion pass source move to the new framebuffer together;
// the old one is unreferenced from here on.
func (r *Renderer) Resize(width, height int32) error {
	if width == r.width && height == r.height {
		return nil
	}
	scene, err := glh.NewFramebuffer(width, height)
	if err != nil {
		return errors.Wrap(err, "stereo target")
	}
	r.scene = scene
	r.width = width
	r.height = height
	return nil
}

func (r *Renderer) VRMode() bool { return r.vr }

// ToggleVRMode flips between mono and stereo output. Safe between any
// two frames; no GPU resources change.
func (r *Renderer) ToggleVRMode() { r.vr = !r.vr }

func (r *Renderer) SetVRMode(on bool) { r.vr = on }

// UploadFrame moves a decoded frame into the video textures. Must run
// on the render thread at the start of the frame.
func (r *Renderer) UploadFrame(f media.Frame) { r.video.Upload(f) }

// UploadOverlay replaces the interface texture with this frame's
// repainted image.
func (r *Renderer) UploadOverlay(pixels []byte) { r.overlay.Upload(pixels) }

// Render issues the draw calls for one frame.
func (r *Renderer) Render(orientation quat.Quat, p Params) {
	if p.ContentScale <= 0 {
		p.ContentScale = 1
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.ClearColor(0, 0, 0, 1)

	if !r.vr {
		glh.BindDefault()
		gl.Viewport(0, 0, r.width, r.height)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		aspect := float32(r.width) / float32(r.height)
		proj := monoProjection(aspect)
		view := eyeView(orientation, 0, 0)
		r.video.Draw(proj, view, p.ContentScale)
		r.overlay.DrawScene(proj, view)
		// Native resolution pass, unscaled by the scene composite.
		r.overlay.DrawScreen()
		return
	}

	w, h := r.scene.Size()
	half := w / 2
	r.scene.Bind()
	gl.Viewport(0, 0, w, h)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	aspect := float32(half) / float32(h)
	for _, eye := range []float32{-1, 1} {
		if eye < 0 {
			gl.Viewport(0, 0, half, h)
		} else {
			gl.Viewport(half, 0, w-half, h)
		}
		proj := eyeProjection(aspect, p.LensCenterOffset, eye)
		view := eyeView(orientation, eye, p.IPD)
		r.video.Draw(proj, view, p.ContentScale)
		r.overlay.DrawScene(proj, view)
	}

	glh.BindDefault()
	gl.Viewport(0, 0, r.width, r.height)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	r.distort.Draw(r.scene.Color(), p.LensRadius, p.LensCenterOffset)
}
