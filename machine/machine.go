// Package machine wires the cpu and hardware packages together into
// the single capability a host needs: step the processor, load OTP
// and flash images, and read back the framebuffer.
package machine

import (
	"github.com/miuchizcore/emulator/cpu"
	"github.com/miuchizcore/emulator/hardware"
)

// Machine is the assembled core: a CPU driven by the bank-switched
// hardware it shares a Bus with.
type Machine struct {
	CPU *cpu.CPU
	hw  *hardware.Hardware
}

// New returns a Machine with hardware and CPU both at their power-on
// state, ready for Step.
func New() *Machine {
	hw := hardware.New()
	m := &Machine{hw: hw}
	m.CPU = cpu.New(hw)
	return m
}

// Reset re-applies the power-on sequence to both the CPU and the
// hardware's bank registers, without touching RAM, OTP or flash
// contents.
func (m *Machine) Reset() {
	m.hw.Reset()
	m.CPU.Reset()
}

// Step executes exactly one CPU instruction.
func (m *Machine) Step() {
	m.CPU.Step()
}

// LoadOTP installs a raw OTP image, verbatim.
func (m *Machine) LoadOTP(data []byte) error {
	return m.hw.LoadOTP(data)
}

// LoadFlash installs a raw flash image, verbatim.
func (m *Machine) LoadFlash(data []byte) error {
	return m.hw.LoadFlash(data)
}

// Read and Write expose the hardware's decoded address space
// directly, chiefly so tests can set up or inspect memory without
// stepping the CPU through it.
func (m *Machine) Read(addr uint16) uint8 {
	return m.hw.Read(addr)
}

func (m *Machine) Write(addr uint16, value uint8) {
	m.hw.Write(addr, value)
}
