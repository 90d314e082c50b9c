package pixarray

// Virtual is an in-memory LEDStrip. It backs the -ledchip virtual mode for
// running the daemon without hardware attached, and stands in for a driver
// in tests.
type Virtual struct {
	pixels []Pixel
	writes int
}

func NewVirtual(numPixels int) *Virtual {
	return &Virtual{pixels: make([]Pixel, numPixels)}
}

func (v *Virtual) GetPixel(i int) Pixel {
	return v.pixels[i]
}

func (v *Virtual) SetPixel(i int, p Pixel) {
	v.pixels[i] = p
}

func (v *Virtual) Write() error {
	v.writes++
	return nil
}

// Writes reports how often the strip has been shown.
func (v *Virtual) Writes() int {
	return v.writes
}
