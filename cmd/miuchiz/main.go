// Command miuchiz runs a handheld core against an OTP and flash image
// and displays the resulting framebuffer in a window.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/miuchizcore/emulator/machine"
)

var (
	otpFile   = flag.String("otp", "", "Path to the raw OTP image (otp.dat).")
	flashFile = flag.String("flash", "", "Path to the raw flash image (flash.dat).")
	scale     = flag.Int("scale", 4, "Window scale factor over the native framebuffer size.")
)

// stepsPerFrame is the instruction budget run before each displayed
// frame, matching the original device loop's fixed cadence.
const stepsPerFrame = 1000

func main() {
	flag.Parse()

	otp, err := os.ReadFile(*otpFile)
	if err != nil {
		log.Fatalf("couldn't read OTP image: %v", err)
	}
	flash, err := os.ReadFile(*flashFile)
	if err != nil {
		log.Fatalf("couldn't read flash image: %v", err)
	}

	m := machine.New()
	if err := m.LoadOTP(otp); err != nil {
		log.Fatalf("invalid OTP image: %v", err)
	}
	if err := m.LoadFlash(flash); err != nil {
		log.Fatalf("invalid flash image: %v", err)
	}

	g := &game{m: m}

	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w*(*scale), h*(*scale))
	ebiten.SetWindowTitle("miuchiz")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// game adapts machine.Machine to ebiten.Game: the host I/O boundary
// that drives Step and blits the framebuffer.
type game struct {
	m *machine.Machine
}

func (g *game) Update() error {
	for i := 0; i < stepsPerFrame; i++ {
		g.m.Step()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	px := g.m.Pixels()
	rect := px.Bounds()
	for x := 0; x < rect.Dx(); x++ {
		for y := 0; y < rect.Dy(); y++ {
			screen.Set(x, y, px.At(x, y))
		}
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.m.Pixels().Bounds()
	return b.Dx(), b.Dy()
}
