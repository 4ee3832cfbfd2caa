// Field preview tool - interactive glow field with tuning sliders.
//
// Usage: go run ./cmd/fieldpreview
package main

import (
	"fmt"
	"math/rand"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/alohaaki7/liquidventures/config"
	"github.com/alohaaki7/liquidventures/engine"
	"github.com/alohaaki7/liquidventures/renderer"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	panelWidth   = 300
	sliderWidth  = panelWidth - 90
)

func main() {
	config.MustInit("")
	cfg := config.Cfg()
	cfg.Screen.Width = windowWidth
	cfg.Screen.Height = windowHeight

	rl.InitWindow(windowWidth, windowHeight, "Glow Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	var seed int64 = 42
	eng := engine.New(engine.Options{Width: windowWidth, Height: windowHeight, Seed: seed})
	fr := renderer.NewFrame(cfg, rand.New(rand.NewSource(seed+1)), seed, windowWidth, windowHeight)
	defer fr.Unload()

	// Live-tunable copies of the attraction parameters. The engine reads
	// them through the config's derived block, so writing there is enough.
	gain := float32(cfg.Pointer.AttractionGain)
	radius := float32(cfg.Pointer.InfluenceRadius)
	smoothing := float32(cfg.Pointer.SmoothingFactor)
	fadeAlpha := float32(cfg.Render.FadeAlpha)
	grainStrength := float32(cfg.Render.GrainStrength)

	rebuild := func() {
		cfg.Pointer.AttractionGain = float64(gain)
		cfg.Pointer.InfluenceRadius = float64(radius)
		cfg.Pointer.SmoothingFactor = float64(smoothing)
		cfg.Render.FadeAlpha = int(fadeAlpha)
		cfg.Render.GrainStrength = int(grainStrength)
		cfg.Recompute()

		eng = engine.New(engine.Options{Width: windowWidth, Height: windowHeight, Seed: seed})
		fr.Unload()
		fr = renderer.NewFrame(cfg, rand.New(rand.NewSource(seed+1)), seed, windowWidth, windowHeight)
	}

	for !rl.WindowShouldClose() {
		eng.HandleInput()
		eng.Step()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		eng.Draw(fr)

		// Control panel
		panelX := float32(windowWidth - panelWidth - 10)
		panelY := float32(10)
		rl.DrawRectangle(int32(panelX)-10, 0, panelWidth+20, 330, rl.Fade(rl.Black, 0.6))

		rl.DrawText("Field Parameters", int32(panelX), int32(panelY), 20, rl.RayWhite)
		panelY += 35

		changed := false

		rl.DrawText("Attraction gain", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newGain := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: sliderWidth, Height: 20},
			"0", "0.1",
			gain, 0, 0.1,
		)
		rl.DrawText(fmt.Sprintf("%.3f", gain), int32(panelX+sliderWidth+10), int32(panelY+2), 16, rl.RayWhite)
		if newGain != gain {
			gain = newGain
			changed = true
		}
		panelY += 35

		rl.DrawText("Influence radius", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newRadius := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: sliderWidth, Height: 20},
			"50", "800",
			radius, 50, 800,
		)
		rl.DrawText(fmt.Sprintf("%.0f", radius), int32(panelX+sliderWidth+10), int32(panelY+2), 16, rl.RayWhite)
		if newRadius != radius {
			radius = newRadius
			changed = true
		}
		panelY += 35

		rl.DrawText("Pointer smoothing", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newSmoothing := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: sliderWidth, Height: 20},
			"0.01", "1",
			smoothing, 0.01, 1,
		)
		rl.DrawText(fmt.Sprintf("%.2f", smoothing), int32(panelX+sliderWidth+10), int32(panelY+2), 16, rl.RayWhite)
		if newSmoothing != smoothing {
			smoothing = newSmoothing
			changed = true
		}
		panelY += 35

		rl.DrawText("Trail fade alpha", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newFade := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: sliderWidth, Height: 20},
			"1", "80",
			fadeAlpha, 1, 80,
		)
		rl.DrawText(fmt.Sprintf("%.0f", fadeAlpha), int32(panelX+sliderWidth+10), int32(panelY+2), 16, rl.RayWhite)
		if newFade != fadeAlpha {
			fadeAlpha = newFade
			changed = true
		}
		panelY += 35

		rl.DrawText("Grain strength", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newGrain := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: sliderWidth, Height: 20},
			"0", "60",
			grainStrength, 0, 60,
		)
		rl.DrawText(fmt.Sprintf("%.0f", grainStrength), int32(panelX+sliderWidth+10), int32(panelY+2), 16, rl.RayWhite)
		if newGrain != grainStrength {
			grainStrength = newGrain
			changed = true
		}
		panelY += 35

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reseed") {
			seed++
			changed = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			tmp, _ := config.Load("")
			gain = float32(tmp.Pointer.AttractionGain)
			radius = float32(tmp.Pointer.InfluenceRadius)
			smoothing = float32(tmp.Pointer.SmoothingFactor)
			fadeAlpha = float32(tmp.Render.FadeAlpha)
			grainStrength = float32(tmp.Render.GrainStrength)
			changed = true
		}

		rl.DrawText(fmt.Sprintf("Tick: %d  FPS: %d", eng.Tick(), rl.GetFPS()), 10, 10, 18, rl.RayWhite)
		rl.EndDrawing()

		if changed {
			rebuild()
		}
	}
}
