package strip

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Jon-Bright/neoctl/pixarray"
)

const (
	fadeMinDuration = 2000 * time.Millisecond
	fadeMaxDuration = 4000 * time.Millisecond
)

// fade is the one blend animation channel: a time-bounded linear
// interpolation between two colors.
type fade struct {
	active   bool
	start    pixarray.Pixel
	end      pixarray.Pixel
	began    time.Time
	duration time.Duration
}

// startFade seeds a new blend cycle: a random fully-saturated target whose
// luminance follows the brightness setting, over a random 2-4s duration.
// If a blend was already running we continue from where it was heading;
// otherwise we pick up whatever color the strip is actually showing, so a
// cold start or a completed cycle blends away smoothly.
func (s *Strip) startFade(now time.Time) {
	target := colorful.Hsl(s.rand.Float64()*360.0, 1.0, fadeLuminance(s.brightness))
	r, g, b := target.RGB255()

	if s.fade.active {
		s.fade.start = s.fade.end
	} else {
		s.fade.start = s.pa.GetPixel(0)
	}
	s.fade.end = pixarray.Pixel{R: int(r), G: int(g), B: int(b)}
	s.fade.began = now
	s.fade.duration = fadeMinDuration + time.Duration(s.rand.Int63n(int64(fadeMaxDuration-fadeMinDuration)))
	s.fade.active = true
}

// stepFade writes the blend at its current progress. The write is guarded
// on the mode still being fade: a blend result must never clobber an
// effect that became active after the cycle began. Progress 1 writes the
// end color exactly and finishes the cycle.
func (s *Strip) stepFade(now time.Time) {
	if !s.fade.active {
		return
	}
	progress := float64(now.Sub(s.fade.began)) / float64(s.fade.duration)
	if progress >= 1.0 {
		progress = 1.0
	}
	if s.mode == ModeFade {
		s.pa.SetPrefix(s.count, blend(s.fade.start, s.fade.end, progress))
	}
	if progress >= 1.0 {
		s.fade.active = false
	}
}

// blend linearly interpolates between two colors. progress 0 yields from,
// progress 1 yields to, exactly.
func blend(from, to pixarray.Pixel, progress float64) pixarray.Pixel {
	return pixarray.Pixel{
		R: from.R + int(float64(to.R-from.R)*progress),
		G: from.G + int(float64(to.G-from.G)*progress),
		B: from.B + int(float64(to.B-from.B)*progress),
	}
}
