package pixarray

import (
	"fmt"
)

// LPD8806 strips carry 7 bits per channel with the high bit always set;
// a run of zero bytes (one per 32 pixels) latches the frame. Engine colors
// are 0-255, so channel values lose their low bit on the way in.

type LPD8806 struct {
	numPixels int
	g         int
	r         int
	b         int
	pixels    []byte // wire-ordered 7-bit values, marker bit set
	sendBytes []byte // pixels followed by the latch run
	dev       dev
}

func NewLPD8806(dev dev, numPixels int, spiSpeed uint32, order int) (*LPD8806, error) {
	numReset := (numPixels + 31) / 32
	val := make([]byte, numPixels*3+numReset)
	offsets := offsets[order]
	la := LPD8806{
		numPixels: numPixels,
		g:         offsets[0],
		r:         offsets[1],
		b:         offsets[2],
		pixels:    val[:numPixels*3],
		sendBytes: val,
		dev:       dev,
	}
	for i := range la.pixels {
		la.pixels[i] = 0x80
	}

	if spiSpeed != 0 {
		err := setSPISpeed(dev.Fd(), spiSpeed)
		if err != nil {
			return nil, fmt.Errorf("couldn't set SPI speed: %v", err)
		}
	}

	firstReset := make([]byte, numReset)
	_, err := dev.Write(firstReset)
	if err != nil {
		return nil, fmt.Errorf("couldn't reset: %v", err)
	}
	return &la, nil
}

func (la *LPD8806) GetPixel(i int) Pixel {
	return Pixel{
		(int(la.pixels[i*3+la.r]) & 0x7f) << 1,
		(int(la.pixels[i*3+la.g]) & 0x7f) << 1,
		(int(la.pixels[i*3+la.b]) & 0x7f) << 1,
	}
}

func (la *LPD8806) SetPixel(i int, p Pixel) {
	la.pixels[i*3+la.r] = byte(0x80 | (p.R >> 1))
	la.pixels[i*3+la.g] = byte(0x80 | (p.G >> 1))
	la.pixels[i*3+la.b] = byte(0x80 | (p.B >> 1))
}

func (la *LPD8806) Write() error {
	_, err := la.dev.Write(la.sendBytes)
	return err
}
