package machine

import (
	"image"
	"image/color"

	"github.com/miuchizcore/emulator/hardware"
)

// frameImage is a read-only image.Image view over the hardware's raw
// 12-bit-per-pixel framebuffer, expanding each 4-bit channel to 8 bits
// by nibble replication (n | n<<4), as miuchiz.c's update_screen does.
type frameImage struct {
	pixels *[hardware.FrameWidth][hardware.FrameHeight]uint16
}

func (f *frameImage) ColorModel() color.Model { return color.RGBAModel }

func (f *frameImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, hardware.FrameWidth, hardware.FrameHeight)
}

func (f *frameImage) At(x, y int) color.Color {
	if x < 0 || x >= hardware.FrameWidth || y < 0 || y >= hardware.FrameHeight {
		return color.RGBA{}
	}
	p := f.pixels[x][y]
	r := uint8(p>>8) & 0xF
	g := uint8(p>>4) & 0xF
	b := uint8(p) & 0xF
	return color.RGBA{
		R: r | r<<4,
		G: g | g<<4,
		B: b | b<<4,
		A: 0xFF,
	}
}

// Pixels returns a read-only view of the framebuffer for the host to
// render. It reflects live hardware state; the host must not call it
// concurrently with Step.
func (m *Machine) Pixels() image.Image {
	return &frameImage{pixels: m.hw.Pixels()}
}
