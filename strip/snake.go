package strip

import (
	"time"

	"github.com/Jon-Bright/neoctl/pixarray"
)

const (
	// SnakeSegmentLength is how many pixels the lit segment spans,
	// head plus fading tail.
	SnakeSegmentLength = 5
	// SnakeStepDelay is how long the head rests on each pixel.
	SnakeStepDelay = 80 * time.Millisecond
)

// snake tracks the moving segment between ticks.
type snake struct {
	head     int
	lastStep time.Time
}

func (s *Strip) resetSnake() {
	s.snake.head = 0
	s.snake.lastStep = time.Time{}
	s.snakeDirty = false
	s.pa.SetPrefix(s.count, pixarray.Pixel{})
	s.show()
}

// stepSnake advances the segment one pixel per SnakeStepDelay. A single
// draw stops at the active-count boundary rather than wrapping mid-
// segment; the head itself wraps modulo the count between steps, so the
// segment crosses the boundary over successive draws. That asymmetry is
// the intended boundary behavior, not an accident.
func (s *Strip) stepSnake(now time.Time) {
	if s.snakeDirty {
		s.resetSnake()
	}

	if !s.snake.lastStep.IsZero() && now.Sub(s.snake.lastStep) < SnakeStepDelay {
		return
	}
	s.snake.lastStep = now

	base := scale(s.solid, brightnessScale(s.brightness))
	s.pa.SetPrefix(s.count, pixarray.Pixel{})
	for offset := 0; offset < SnakeSegmentLength; offset++ {
		pixel := s.snake.head + offset
		if pixel >= s.count {
			break
		}
		tail := 1.0 - float64(offset)/float64(SnakeSegmentLength)
		s.pa.SetOne(pixel, scale(base, tail))
	}
	s.show()

	s.snake.head = (s.snake.head + 1) % s.count
}
