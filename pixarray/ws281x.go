package pixarray

import (
	"fmt"
)

// WS281x drives WS2811/WS2812 strips through an SPI character device. Each
// data bit becomes a 3-bit line symbol clocked at three times the strip's
// data rate, so the wire carries the high/low pulse widths the chip
// expects. The frame ends with a run of zero bytes long enough to latch.

const (
	SYMBOL_HIGH = 0x6 // 1 1 0
	SYMBOL_LOW  = 0x4 // 1 0 0

	latchMicroseconds = 60
)

type WS281x struct {
	numPixels int
	g         int
	r         int
	b         int
	pixels    []byte // wire-ordered channel values
	sendBytes []byte // encoded symbols plus latch tail
	dev       dev
}

// NewWS281x prepares a strip of numPixels on dev, sending data at freq Hz
// (800000 for almost all WS281x variants). A freq of 0 leaves the device's
// SPI clock untouched.
func NewWS281x(dev dev, numPixels int, order int, freq uint32) (*WS281x, error) {
	offsets := offsets[order]
	ws := WS281x{
		numPixels: numPixels,
		g:         offsets[0],
		r:         offsets[1],
		b:         offsets[2],
		pixels:    make([]byte, numPixels*3),
		dev:       dev,
	}
	spiSpeed := freq * 3
	if freq != 0 {
		err := setSPISpeed(dev.Fd(), spiSpeed)
		if err != nil {
			return nil, fmt.Errorf("couldn't set SPI speed: %v", err)
		}
	}
	// 24 data bits per pixel, 3 symbol bits each: 9 bytes per pixel exactly
	latchBytes := int(uint64(spiSpeed)*latchMicroseconds/8000000) + 1
	ws.sendBytes = make([]byte, numPixels*9+latchBytes)
	return &ws, nil
}

func (ws *WS281x) GetPixel(i int) Pixel {
	return Pixel{int(ws.pixels[i*3+ws.r]), int(ws.pixels[i*3+ws.g]), int(ws.pixels[i*3+ws.b])}
}

func (ws *WS281x) SetPixel(i int, p Pixel) {
	ws.pixels[i*3+ws.r] = byte(p.R)
	ws.pixels[i*3+ws.g] = byte(p.G)
	ws.pixels[i*3+ws.b] = byte(p.B)
}

func (ws *WS281x) Write() error {
	pos := 0
	bit := 7
	for i := 0; i < len(ws.pixels); i++ {
		for k := 7; k >= 0; k-- {
			symbol := SYMBOL_LOW
			if ws.pixels[i]&(1<<uint(k)) != 0 {
				symbol = SYMBOL_HIGH
			}
			for l := 2; l >= 0; l-- {
				if symbol&(1<<uint(l)) != 0 {
					ws.sendBytes[pos] |= 1 << uint(bit)
				} else {
					ws.sendBytes[pos] &^= 1 << uint(bit)
				}
				bit--
				if bit < 0 {
					pos++
					bit = 7
				}
			}
		}
	}
	_, err := ws.dev.Write(ws.sendBytes)
	return err
}
