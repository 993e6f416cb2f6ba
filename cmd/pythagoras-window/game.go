package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/pythagoras/internal/window"
)

type game struct {
	ctrl       *window.Controller
	tex        *ebiten.Image
	generation int
}

func (g *game) Update() error {
	changed := false
	for _, a := range pollActions() {
		if g.ctrl.Apply(a) {
			changed = true
		}
	}
	if changed {
		ebiten.SetWindowTitle(g.ctrl.Title())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	img, err := g.ctrl.Frame()
	if err != nil {
		logrus.Errorf("render: %v", err)
		return
	}
	b := img.Bounds()
	if g.tex == nil || g.tex.Bounds().Dx() != b.Dx() || g.tex.Bounds().Dy() != b.Dy() {
		if g.tex != nil {
			g.tex.Deallocate()
		}
		g.tex = ebiten.NewImage(b.Dx(), b.Dy())
		g.generation = 0
	}
	// Upload only when the controller rendered a new snapshot.
	if gen := g.ctrl.Generation(); gen != g.generation {
		g.tex.WritePixels(img.Pix)
		g.generation = gen
	}
	screen.DrawImage(g.tex, nil)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.ctrl.Size()
}

// pollActions maps this tick's key presses to controller actions.
func pollActions() []window.Action {
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	var actions []window.Action
	pressed := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if inpututil.IsKeyJustPressed(k) {
				return true
			}
		}
		return false
	}

	switch {
	case pressed(ebiten.KeyDigit1, ebiten.KeyNumpad1):
		actions = append(actions, window.ActionPreset1)
	case pressed(ebiten.KeyDigit2, ebiten.KeyNumpad2):
		actions = append(actions, window.ActionPreset2)
	case pressed(ebiten.KeyDigit3, ebiten.KeyNumpad3):
		actions = append(actions, window.ActionPreset3)
	}
	if pressed(ebiten.KeyTab) {
		if shift {
			actions = append(actions, window.ActionPrevSide)
		} else {
			actions = append(actions, window.ActionNextSide)
		}
	}
	if pressed(ebiten.KeyArrowUp) {
		actions = append(actions, window.ActionPrevSide)
	}
	if pressed(ebiten.KeyArrowDown) {
		actions = append(actions, window.ActionNextSide)
	}
	if pressed(ebiten.KeyArrowRight) {
		if shift {
			actions = append(actions, window.ActionIncreaseBig)
		} else {
			actions = append(actions, window.ActionIncrease)
		}
	}
	if pressed(ebiten.KeyArrowLeft) {
		if shift {
			actions = append(actions, window.ActionDecreaseBig)
		} else {
			actions = append(actions, window.ActionDecrease)
		}
	}
	if pressed(ebiten.KeyC) {
		actions = append(actions, window.ActionSolve)
	}
	if pressed(ebiten.KeyS) {
		actions = append(actions, window.ActionSolveSelected)
	}
	return actions
}
