package pixarray

// LEDStrip is the capability a concrete pixel driver has to provide. The
// render engine only ever talks to this interface, so a software strip can
// stand in for hardware.
type LEDStrip interface {
	GetPixel(i int) Pixel
	SetPixel(i int, p Pixel)
	Write() error
}
