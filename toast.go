package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const toastSeconds = 3

type toast struct {
	message string
	clr     color.RGBA
	fade    *gween.Tween
	alpha   float32
}

// ToastStack is the desktop notification collaborator: short messages that
// fade out over a tween. It satisfies anim.Notifier.
type ToastStack struct {
	toasts []*toast
}

func (ts *ToastStack) Error(msg string) {
	log.Warn(msg)
	ts.push(msg, colorToastErr)
}

func (ts *ToastStack) Success(msg string) {
	log.Info(msg)
	ts.push(msg, colorToastOK)
}

func (ts *ToastStack) push(msg string, clr color.RGBA) {
	ts.toasts = append(ts.toasts, &toast{
		message: msg,
		clr:     clr,
		fade:    gween.New(1, 0, toastSeconds, ease.InQuad),
		alpha:   1,
	})
}

func (ts *ToastStack) Update(dt float32) {
	alive := ts.toasts[:0]
	for _, t := range ts.toasts {
		current, finished := t.fade.Update(dt)
		if finished {
			continue
		}
		t.alpha = current
		alive = append(alive, t)
	}
	ts.toasts = alive
}

func (ts *ToastStack) Draw(screen *ebiten.Image) {
	face := uiFace()
	for i, t := range ts.toasts {
		// premultiplied alpha
		clr := color.RGBA{
			R: uint8(float32(t.clr.R) * t.alpha),
			G: uint8(float32(t.clr.G) * t.alpha),
			B: uint8(float32(t.clr.B) * t.alpha),
			A: uint8(t.alpha * 255),
		}
		bounds := text.BoundString(face, t.message)
		x := (screenWidth - bounds.Dx()) / 2
		y := 24 + i*20
		text.Draw(screen, t.message, face, x, y, clr)
	}
}
