// Quill-demo draws an orbiting rectangle around a bordered sun and two
// pulsing lines, re-issuing every shape each frame.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/phanxgames/quill"
	"github.com/phanxgames/quill/render"
	"github.com/tanema/gween/ease"
)

const (
	orbitRadius = 300
	sunRadius   = 100
)

// demo holds the animated parameters read by the update routine.
type demo struct {
	elapsed float64

	strokeA float64
	strokeB float64
	pulseA  *quill.TweenGroup
	pulseB  *quill.TweenGroup

	sunColor quill.Color
	sunTween *quill.TweenGroup
}

func newDemo() *demo {
	d := &demo{sunColor: quill.RGB(1, 1, 0)}
	d.pulseA = quill.TweenValue(&d.strokeA, 20, 1.3, ease.InOutSine).SetRepeat(quill.RepeatYoyo)
	d.pulseB = quill.TweenValue(&d.strokeB, 20, 1.6, ease.InOutSine).SetRepeat(quill.RepeatYoyo)
	d.sunTween = quill.TweenColor(&d.sunColor, quill.RGB(1, 0.6, 0), 2, ease.InOutQuad).SetRepeat(quill.RepeatYoyo)
	return d
}

func (d *demo) update(g *quill.Graphics, dt float64) error {
	d.elapsed += dt
	d.pulseA.Update(float32(dt))
	d.pulseB.Update(float32(dt))
	d.sunTween.Update(float32(dt))

	x := math.Sin(d.elapsed) * orbitRadius
	y := math.Cos(d.elapsed) * orbitRadius

	g.FillCircle(0, 0).
		WithRadius(sunRadius).
		WithColor(d.sunColor).
		WithBorder(quill.RGB(0.9, 0.3, 0), 0.2).
		Commit().
		FillRectangle(x, y).
		WithWidth(100).
		WithHeight(50).
		WithColor(quill.ColorGreen).
		WithBorder(quill.ColorBlue, 0.4).
		WithRotation(d.elapsed).
		Commit()

	// Strokes start at zero; keep them positive so the lines never collapse.
	g.DrawLine(200, -100, 200, 200).
		WithStroke(d.strokeA + 1).
		WithColor(quill.RGB(0, 5, 2)).
		Commit()
	g.DrawLine(-200, -100, -200, 200).
		WithStroke(d.strokeB + 1).
		WithColor(quill.RGB(1, 0, 2)).
		Commit()
	return nil
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	verbose := flag.Bool("v", false, "log debug output to stderr")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	quill.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := quill.DefaultConfig()
	cfg.Title = "Quill: Solar System"
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			log.Fatalf("read config: %v", err)
		}
		if cfg, err = quill.LoadConfig(data); err != nil {
			log.Fatal(err)
		}
	}

	if *verbose {
		cfg.Debug = true
	}

	plugin := quill.NewPlugin(nil)
	if err := render.Run(plugin, cfg, newDemo().update); err != nil {
		log.Fatal(err)
	}
}
