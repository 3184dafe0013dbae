// Package hardware implements the bank-switched address decoder and
// video peripheral that sit behind the CPU's Bus capability: three
// windowed regions (OTP, flash, RAM) selected by 16-bit bank
// registers, a fixed low RAM window, and a pixel-latch video register.
package hardware

const (
	otpSize   = 0x4000
	flashSize = 0x200000
	ramSize   = 0x8000
)

// Reset values for the bank registers, per the device's power-on
// sequence.
const (
	ResetBRR uint16 = 0xE000
	ResetPRR uint16 = 0x7202
	ResetDRR uint16 = 0x78C0
)

// Hardware owns everything behind the CPU's address space except the
// CPU's own registers: RAM, the three bank selectors, OTP, flash, the
// video latch, and the open-bus value.
type Hardware struct {
	BRR, PRR, DRR uint16

	ram   [ramSize]uint8
	otp   [otpSize]uint8
	flash [flashSize]uint8

	video video

	lastRead uint8
}

// New returns Hardware with bank registers and state at their
// power-on values.
func New() *Hardware {
	h := &Hardware{}
	h.Reset()
	return h
}

// Reset restores the bank registers and video cursor to their
// power-on values. RAM, OTP and flash contents are untouched — OTP
// and flash are loaded once at bring-up and RAM persists across a
// soft reset the way real hardware would.
func (h *Hardware) Reset() {
	h.BRR = ResetBRR
	h.PRR = ResetPRR
	h.DRR = ResetDRR
	h.video.reset()
	h.lastRead = 0
}

// Pixels returns the live framebuffer. The caller must not mutate it;
// machine.Machine wraps it in a read-only image.Image view.
func (h *Hardware) Pixels() *[FrameWidth][FrameHeight]uint16 {
	return &h.video.pixels
}
