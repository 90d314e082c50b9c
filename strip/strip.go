// Package strip holds the effect state machine and render engine: which
// effect is active, what color and brightness it uses, how many pixels it
// may touch, and what gets written to the strip on each tick.
package strip

import (
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/Jon-Bright/neoctl/pixarray"
)

// MaxPixelCount is the largest active pixel count a Strip accepts,
// matching the common 144/m strip length.
const MaxPixelCount = 144

type Mode int

const (
	ModeFade Mode = iota
	ModeSolid
	ModeSnake
	ModeOff
)

func (m Mode) String() string {
	switch m {
	case ModeSolid:
		return "solid"
	case ModeSnake:
		return "snake"
	case ModeOff:
		return "off"
	default:
		return "fade"
	}
}

// ParseMode maps a case-insensitive name to a Mode. Unrecognized names
// report false and no mode.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(s) {
	case "fade":
		return ModeFade, true
	case "solid":
		return ModeSolid, true
	case "snake":
		return ModeSnake, true
	case "off":
		return ModeOff, true
	}
	return 0, false
}

// RGB is a color as it crosses the control surface.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// State is a point-in-time snapshot of a Strip's settings.
type State struct {
	Mode       string `json:"mode"`
	Brightness int    `json:"brightness"`
	Color      RGB    `json:"color"`
	Count      int    `json:"count"`
}

// Strip owns all effect state for one LED strip. Setters and Tick lock, so
// request handlers may call in concurrently with the render loop.
//
// The dirty flags mark an effect's last output as stale; whichever effect
// is active reinitializes itself before trusting the strip contents. Any
// mode change sets all of them, so no effect ever inherits another's
// rendering.
type Strip struct {
	mu         sync.Mutex
	pa         *pixarray.PixArray
	mode       Mode
	solid      pixarray.Pixel
	brightness int
	count      int

	solidDirty bool
	offDirty   bool
	snakeDirty bool

	fade  fade
	snake snake
	rand  *rand.Rand

	writeFailing bool
}

// NewStrip returns a Strip with the default power-on settings: fade mode,
// warm orange, brightness 160, 12 active pixels (fewer on a shorter
// strip).
func NewStrip(pa *pixarray.PixArray) *Strip {
	count := 12
	if pa.NumPixels() < count {
		count = pa.NumPixels()
	}
	return &Strip{
		pa:         pa,
		mode:       ModeFade,
		solid:      pixarray.Pixel{R: 255, G: 80, B: 10},
		brightness: 160,
		count:      count,
		solidDirty: true,
		offDirty:   true,
		snakeDirty: true,
		rand:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetMode switches the active effect. Unrecognized names and the current
// mode's own name report no change and have no side effects. A real
// switch stops any in-flight fade and marks every effect dirty.
func (s *Strip) SetMode(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := ParseMode(name)
	if !ok || m == s.mode {
		return false
	}
	s.mode = m
	s.fade.active = false
	s.markAllDirty()
	return true
}

// SetColor updates the solid color, clamping channels to 0-255. Snake uses
// the solid color as its base hue, so both effects go dirty. The mode is
// never changed here, even from another effect.
func (s *Strip) SetColor(r, g, b int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := pixarray.Pixel{R: clampChan(r), G: clampChan(g), B: clampChan(b)}
	if p == s.solid {
		return false
	}
	s.solid = p
	s.solidDirty = true
	s.snakeDirty = true
	return true
}

// SetBrightness updates the brightness, clamped to 0-255. Brightness is
// never blended, so an in-flight fade stops and restarts at the new level.
func (s *Strip) SetBrightness(v int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	v = clampChan(v)
	if v == s.brightness {
		return false
	}
	s.brightness = v
	s.solidDirty = true
	s.offDirty = true
	s.snakeDirty = true
	s.fade.active = false
	return true
}

// SetPixelCount updates the active pixel count, clamped to 1 through the
// strip's physical length (at most MaxPixelCount).
func (s *Strip) SetPixelCount(n int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	max := s.pa.NumPixels()
	if max > MaxPixelCount {
		max = MaxPixelCount
	}
	if n < 1 {
		n = 1
	} else if n > max {
		n = max
	}
	if n == s.count {
		return false
	}
	s.count = n
	s.solidDirty = true
	s.offDirty = true
	s.snakeDirty = true
	s.fade.active = false
	return true
}

// Snapshot returns the current settings for the control surface.
func (s *Strip) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		Mode:       s.mode.String(),
		Brightness: s.brightness,
		Color:      RGB{s.solid.R, s.solid.G, s.solid.B},
		Count:      s.count,
	}
}

// Tick runs one render step for whichever effect is active. It never
// blocks and is cheap when there is nothing to do, so the render loop
// calls it unconditionally.
func (s *Strip) Tick(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.mode {
	case ModeFade:
		// Fade rewrites the strip continuously, so the static
		// effects will need a redraw whenever they come back.
		s.offDirty = true
		s.solidDirty = true
		if !s.fade.active {
			s.startFade(now)
		}
		s.stepFade(now)
		s.show()
	case ModeSolid:
		s.fade.active = false
		if s.solidDirty {
			s.applySolid()
		}
	case ModeSnake:
		s.fade.active = false
		s.offDirty = true
		s.solidDirty = true
		s.stepSnake(now)
	case ModeOff:
		s.fade.active = false
		if s.offDirty {
			s.applyOff()
		}
	}
}

func (s *Strip) markAllDirty() {
	s.solidDirty = true
	s.offDirty = true
	s.snakeDirty = true
}

func (s *Strip) applySolid() {
	s.pa.SetPrefix(s.count, scale(s.solid, brightnessScale(s.brightness)))
	s.show()
	s.solidDirty = false
	s.offDirty = true
}

func (s *Strip) applyOff() {
	s.pa.SetPrefix(s.count, pixarray.Pixel{})
	s.show()
	s.offDirty = false
	s.solidDirty = true
}

// show pushes the buffer to the strip. A failing driver must not halt the
// render loop, and must not flood the log while it stays broken.
func (s *Strip) show() {
	err := s.pa.Write()
	if err != nil {
		if !s.writeFailing {
			log.Printf("couldn't write strip: %v", err)
			s.writeFailing = true
		}
		return
	}
	s.writeFailing = false
}
