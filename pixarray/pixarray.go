package pixarray

import (
	"fmt"
)

const (
	GRB = iota
	BRG
	BGR
	GBR
	RGB
	RBG
)

var StringOrders map[string]int = map[string]int{
	"GRB": GRB,
	"BRG": BRG,
	"BGR": BGR,
	"GBR": GBR,
	"RGB": RGB,
	"RBG": RBG,
}

// offsets[order] gives the byte position of G, R and B within one pixel
var offsets map[int][]int = map[int][]int{
	GRB: {0, 1, 2},
	BRG: {2, 1, 0},
	BGR: {1, 2, 0},
	GBR: {0, 2, 1},
	RGB: {1, 0, 2},
	RBG: {2, 0, 1},
}

type Pixel struct {
	R int
	G int
	B int
}

func (p *Pixel) String() string {
	return fmt.Sprintf("%02x%02x%02x", p.R, p.G, p.B)
}

// This is satisfied by os.File, but this minimal interface makes testing easier
type dev interface {
	Fd() uintptr
	Write(b []byte) (n int, err error)
}

// PixArray is the single point of contact with an LEDStrip: it knows how
// many pixels physically exist and hands writes through to the driver.
type PixArray struct {
	numPixels int
	leds      LEDStrip
}

func NewPixArray(numPixels int, leds LEDStrip) *PixArray {
	return &PixArray{numPixels, leds}
}

func (pa *PixArray) NumPixels() int {
	return pa.numPixels
}

func (pa *PixArray) Write() error {
	return pa.leds.Write()
}

func (pa *PixArray) GetPixels() []Pixel {
	p := make([]Pixel, pa.numPixels)
	for i := 0; i < pa.numPixels; i++ {
		p[i] = pa.leds.GetPixel(i)
	}
	return p
}

func (pa *PixArray) GetPixel(i int) Pixel {
	return pa.leds.GetPixel(i)
}

// SetPrefix sets pixels [0,n) to p and forces [n,NumPixels) to black in a
// single pass, so a shrinking prefix can never leave stale lit pixels
// beyond its new boundary.
func (pa *PixArray) SetPrefix(n int, p Pixel) {
	for i := 0; i < pa.numPixels; i++ {
		if i < n {
			pa.leds.SetPixel(i, p)
		} else {
			pa.leds.SetPixel(i, Pixel{})
		}
	}
}

func (pa *PixArray) SetAll(p Pixel) {
	for i := 0; i < pa.numPixels; i++ {
		pa.leds.SetPixel(i, p)
	}
}

func (pa *PixArray) SetOne(i int, p Pixel) {
	pa.leds.SetPixel(i, p)
}
