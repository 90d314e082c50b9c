package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	pixarray "github.com/Jon-Bright/neoctl/pixarray"
	strip "github.com/Jon-Bright/neoctl/strip"
)

var spiDev = flag.String("dev", "/dev/spidev0.0", "The SPI device on which the LEDs are connected")
var lpd8806SpiSpeed = flag.Uint("spispeed", 1000000, "The speed to send data via SPI to LPD8806s, in Hz")
var ws281xFreq = flag.Uint("ws281xfreq", 800000, "The data rate for WS281x devices, in Hz")
var ledChip = flag.String("ledchip", "ws281x", "The type of LED strip to drive: one of ws281x, lpd8806, virtual")
var port = flag.Int("port", 8080, "The port that the server should listen to")
var pixels = flag.Int("pixels", strip.MaxPixelCount, "The number of pixels physically attached")
var pixelOrder = flag.String("order", "GRB", "The color ordering of the pixels")
var tickEvery = flag.Duration("tick", 5*time.Millisecond, "How often to run a render step")

func runRender(st *strip.Strip) {
	t := time.NewTicker(*tickEvery)
	defer t.Stop()
	for now := range t.C {
		st.Tick(now)
	}
}

func main() {
	flag.Parse()
	order, ok := pixarray.StringOrders[*pixelOrder]
	if !ok {
		log.Fatalf("Unrecognized pixel order: %v", *pixelOrder)
	}
	var leds pixarray.LEDStrip
	switch *ledChip {
	case "lpd8806":
		dev, err := os.OpenFile(*spiDev, os.O_RDWR, os.ModePerm)
		if err != nil {
			log.Fatalf("Failed opening SPI: %v", err)
		}
		leds, err = pixarray.NewLPD8806(dev, *pixels, uint32(*lpd8806SpiSpeed), order)
		if err != nil {
			log.Fatalf("Failed creating LPD8806: %v", err)
		}
	case "ws281x":
		dev, err := os.OpenFile(*spiDev, os.O_RDWR, os.ModePerm)
		if err != nil {
			log.Fatalf("Failed opening SPI: %v", err)
		}
		leds, err = pixarray.NewWS281x(dev, *pixels, order, uint32(*ws281xFreq))
		if err != nil {
			log.Fatalf("Failed creating WS281x: %v", err)
		}
	case "virtual":
		leds = pixarray.NewVirtual(*pixels)
	default:
		log.Fatalf("Unrecognized LED type: %v", *ledChip)
	}
	pa := pixarray.NewPixArray(*pixels, leds)
	st := strip.NewStrip(pa)

	go runRender(st)

	s := NewServer(st, localIP)
	log.Printf("Listening on port %d", *port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", *port), s))
}
