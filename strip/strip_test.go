package strip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jon-Bright/neoctl/pixarray"
)

func newTestStrip(numPixels int) (*Strip, *pixarray.Virtual) {
	v := pixarray.NewVirtual(numPixels)
	return NewStrip(pixarray.NewPixArray(numPixels, v)), v
}

func (s *Strip) clearDirty() {
	s.solidDirty = false
	s.offDirty = false
	s.snakeDirty = false
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		mode Mode
		ok   bool
	}{
		{"fade", ModeFade, true},
		{"solid", ModeSolid, true},
		{"snake", ModeSnake, true},
		{"off", ModeOff, true},
		{"SOLID", ModeSolid, true},
		{"Snake", ModeSnake, true},
		{"bogus", 0, false},
		{"", 0, false},
	}
	for _, test := range tests {
		m, ok := ParseMode(test.in)
		assert.Equal(t, test.ok, ok, "ParseMode(%q) ok", test.in)
		if test.ok {
			assert.Equal(t, test.mode, m, "ParseMode(%q)", test.in)
		}
	}
}

func TestDefaults(t *testing.T) {
	s, _ := newTestStrip(144)
	st := s.Snapshot()
	assert.Equal(t, "fade", st.Mode)
	assert.Equal(t, 160, st.Brightness)
	assert.Equal(t, RGB{255, 80, 10}, st.Color)
	assert.Equal(t, 12, st.Count)
}

func TestSetModeSameIsNoOp(t *testing.T) {
	s, _ := newTestStrip(144)
	s.clearDirty()
	s.fade.active = true

	assert.False(t, s.SetMode("fade"))
	assert.False(t, s.SetMode("FADE"))
	assert.False(t, s.solidDirty)
	assert.False(t, s.offDirty)
	assert.False(t, s.snakeDirty)
	assert.True(t, s.fade.active, "same-mode switch must not stop the animation")
}

func TestSetModeUnknownIsNoOp(t *testing.T) {
	s, _ := newTestStrip(144)
	s.clearDirty()

	assert.False(t, s.SetMode("bogus"))
	assert.Equal(t, "fade", s.Snapshot().Mode)
	assert.False(t, s.solidDirty)
}

func TestSetModeChangeResetsEverything(t *testing.T) {
	s, _ := newTestStrip(144)
	s.clearDirty()
	s.fade.active = true

	assert.True(t, s.SetMode("snake"))
	assert.Equal(t, "snake", s.Snapshot().Mode)
	assert.True(t, s.solidDirty)
	assert.True(t, s.offDirty)
	assert.True(t, s.snakeDirty)
	assert.False(t, s.fade.active, "mode switch must stop the animation")
}

func TestSetColorDuplicateIsNoOp(t *testing.T) {
	s, _ := newTestStrip(144)

	require.True(t, s.SetColor(10, 20, 30))
	s.clearDirty()
	assert.False(t, s.SetColor(10, 20, 30))
	assert.False(t, s.solidDirty)
	assert.False(t, s.snakeDirty)
	assert.False(t, s.offDirty)
}

func TestSetColorMarksSolidAndSnake(t *testing.T) {
	s, _ := newTestStrip(144)
	s.clearDirty()
	s.fade.active = true

	assert.True(t, s.SetColor(10, 20, 30))
	assert.True(t, s.solidDirty)
	assert.True(t, s.snakeDirty)
	assert.False(t, s.offDirty)
	assert.True(t, s.fade.active, "color change must not stop the animation")
	assert.Equal(t, "fade", s.Snapshot().Mode, "color change must not switch the mode")
}

func TestSetColorClamps(t *testing.T) {
	s, _ := newTestStrip(144)
	require.True(t, s.SetColor(300, -5, 40))
	assert.Equal(t, RGB{255, 0, 40}, s.Snapshot().Color)
}

func TestSetBrightness(t *testing.T) {
	s, _ := newTestStrip(144)
	s.clearDirty()
	s.fade.active = true

	assert.True(t, s.SetBrightness(300))
	assert.Equal(t, 255, s.Snapshot().Brightness)
	assert.True(t, s.solidDirty)
	assert.True(t, s.offDirty)
	assert.True(t, s.snakeDirty)
	assert.False(t, s.fade.active, "brightness applies immediately, never blended")

	assert.False(t, s.SetBrightness(300), "clamped duplicate must be a no-op")
	assert.True(t, s.SetBrightness(-1))
	assert.Equal(t, 0, s.Snapshot().Brightness)
}

func TestSetPixelCount(t *testing.T) {
	s, _ := newTestStrip(144)
	s.clearDirty()
	s.fade.active = true

	assert.True(t, s.SetPixelCount(500))
	assert.Equal(t, 144, s.Snapshot().Count)
	assert.True(t, s.solidDirty)
	assert.True(t, s.offDirty)
	assert.True(t, s.snakeDirty)
	assert.False(t, s.fade.active)

	assert.False(t, s.SetPixelCount(144))
	assert.True(t, s.SetPixelCount(0))
	assert.Equal(t, 1, s.Snapshot().Count)
}

func TestSetPixelCountShortStrip(t *testing.T) {
	s, _ := newTestStrip(30)
	assert.True(t, s.SetPixelCount(100))
	assert.Equal(t, 30, s.Snapshot().Count, "count clamps to the physical strip")
}

func TestSolidRendersOnceThenQuiesces(t *testing.T) {
	s, v := newTestStrip(144)
	require.True(t, s.SetMode("solid"))
	now := time.Now()

	s.Tick(now)
	want := scale(pixarray.Pixel{R: 255, G: 80, B: 10}, brightnessScale(160))
	assert.Equal(t, want, s.pa.GetPixel(0))
	assert.False(t, s.solidDirty)
	assert.True(t, s.offDirty, "a later switch to off must redraw")
	writes := v.Writes()

	s.Tick(now.Add(time.Millisecond))
	assert.Equal(t, writes, v.Writes(), "clean solid must not redraw")
}

func TestShrinkCountThenRenderSolid(t *testing.T) {
	s, _ := newTestStrip(144)
	require.True(t, s.SetMode("solid"))
	require.True(t, s.SetPixelCount(144))
	require.True(t, s.SetPixelCount(10))

	s.Tick(time.Now())
	want := scale(pixarray.Pixel{R: 255, G: 80, B: 10}, brightnessScale(160))
	for i, p := range s.pa.GetPixels() {
		if i < 10 {
			require.Equal(t, want, p, "pixel %d", i)
		} else {
			require.Equal(t, pixarray.Pixel{}, p, "pixel %d must be black", i)
		}
	}
}

func TestOffBlanksOnceThenQuiesces(t *testing.T) {
	s, v := newTestStrip(144)
	require.True(t, s.SetMode("solid"))
	now := time.Now()
	s.Tick(now)

	require.True(t, s.SetMode("off"))
	s.Tick(now.Add(time.Millisecond))
	for i, p := range s.pa.GetPixels() {
		require.Equal(t, pixarray.Pixel{}, p, "pixel %d must be black", i)
	}
	assert.False(t, s.offDirty)
	assert.True(t, s.solidDirty, "a later switch to solid must redraw")
	writes := v.Writes()

	s.Tick(now.Add(2 * time.Millisecond))
	assert.Equal(t, writes, v.Writes(), "clean off must not redraw")
}
