package cpu

// Bus is the capability a CPU needs from its host: byte-addressable
// read/write across the full 16-bit space. Implementations route reads
// and writes to RAM, OTP, flash or video and track the open-bus value;
// the CPU itself never sees what's behind an address.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
}
