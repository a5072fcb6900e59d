package quill

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Repeat selects what a TweenGroup does when it reaches its target.
type Repeat uint8

const (
	RepeatNone Repeat = iota // stop at the target and set Done
	RepeatLoop               // jump back to the start values and run again
	RepeatYoyo               // run back to the start values, then forward again
)

// TweenGroup animates up to 4 float64 fields simultaneously. Immediate-mode
// draw calls are reissued every frame, so the fields are typically plain
// variables read by the update routine when it issues its draw calls.
//
// There is no global animation manager; users call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	begin  [4]float32
	end    [4]float32
	fields [4]*float64
	count  int

	duration float32
	fn       ease.TweenFunc
	repeat   Repeat
	reversed bool

	Done bool
}

func newTweenGroup(duration float32, fn ease.TweenFunc) *TweenGroup {
	return &TweenGroup{duration: duration, fn: fn}
}

func (g *TweenGroup) add(field *float64, to float64) {
	i := g.count
	g.begin[i] = float32(*field)
	g.end[i] = float32(to)
	g.tweens[i] = gween.New(g.begin[i], g.end[i], g.duration, g.fn)
	g.fields[i] = field
	g.count++
}

// Update advances all tweens by dt seconds and writes the values to the
// target fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	if !allDone {
		return
	}

	switch g.repeat {
	case RepeatLoop:
		for i := 0; i < g.count; i++ {
			g.tweens[i].Reset()
		}
	case RepeatYoyo:
		g.reversed = !g.reversed
		for i := 0; i < g.count; i++ {
			from, to := g.begin[i], g.end[i]
			if g.reversed {
				from, to = to, from
			}
			g.tweens[i] = gween.New(from, to, g.duration, g.fn)
		}
	default:
		g.Done = true
	}
}

// SetRepeat sets the repeat mode and returns g.
func (g *TweenGroup) SetRepeat(r Repeat) *TweenGroup {
	g.repeat = r
	return g
}

// TweenValue creates a TweenGroup that animates *field to the target value
// over the specified duration using the easing function.
func TweenValue(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(duration, fn)
	g.add(field, to)
	return g
}

// TweenPosition creates a TweenGroup that animates both components of *pos.
func TweenPosition(pos *Vec2, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(duration, fn)
	g.add(&pos.X, to.X)
	g.add(&pos.Y, to.Y)
	return g
}

// TweenColor creates a TweenGroup that animates all four components of *c
// (R, G, B, A) to the target color.
func TweenColor(c *Color, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(duration, fn)
	g.add(&c.R, to.R)
	g.add(&c.G, to.G)
	g.add(&c.B, to.B)
	g.add(&c.A, to.A)
	return g
}
