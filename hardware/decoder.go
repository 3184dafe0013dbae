package hardware

// Read and Write implement cpu.Bus by walking the same decode path:
// fixed RAM first, then the windowed region selected by address
// range, then the bank bits within that window. Read satisfies the
// open-bus model by recording every successful external read into
// lastRead and returning it for anything undecoded.

// Read returns the byte the CPU would see at addr.
func (h *Hardware) Read(addr uint16) uint8 {
	if addr >= 0x0080 && addr <= 0x1FFF {
		h.lastRead = h.ram[addr]
		return h.lastRead
	}

	bankReg, bank, offset := h.window(addr)
	isRAM := bankReg&0x8000 != 0

	if isRAM {
		h.lastRead = h.ram[addr&0x7FFF]
		return h.lastRead
	}

	switch {
	case bank&0x9E00 == 0x0000 || bank&0x9E00 == 0x1E00:
		v := h.otp[((bank&1)*8192+offset)&0x3FFF]
		h.lastRead = v
		return v
	case bank&0x9F00 == 0x0300:
		v := h.video.read(addr)
		h.lastRead = v
		return v
	case bank&0x9C00 == 0x0400:
		v := h.flash[((bank&0xFF)*8192+offset)&0x1FFFFF]
		h.lastRead = v
		return v
	default:
		return h.lastRead
	}
}

// Write routes a store the same way Read routes a load. OTP and flash
// writes are silently dropped; an undecoded region drops the write
// too.
func (h *Hardware) Write(addr uint16, value uint8) {
	if addr >= 0x0080 && addr <= 0x1FFF {
		h.ram[addr] = value
		return
	}

	bankReg, bank, _ := h.window(addr)
	isRAM := bankReg&0x8000 != 0

	if isRAM {
		h.ram[addr&0x7FFF] = value
		return
	}

	switch {
	case bank&0x9E00 == 0x0000 || bank&0x9E00 == 0x1E00:
		// OTP: writes dropped.
	case bank&0x9F00 == 0x0300:
		h.video.write(addr, value)
	case bank&0x9C00 == 0x0400:
		// Flash: writes dropped in this model.
	default:
		// Undecoded region: write dropped.
	}
}

// window selects the bank register, bank value, and in-window offset
// for a non-fixed address, per the three windowed regions. Addresses
// below 0x2000 that aren't fixed RAM (0x0000-0x007F) fall through all
// three window checks and keep the zero value, same as the source:
// bank==0 then matches the OTP pattern at offset 0.
func (h *Hardware) window(addr uint16) (bankReg uint16, bank uint16, offset uint16) {
	switch {
	case addr >= 0x2000 && addr <= 0x3FFF:
		return h.BRR, h.BRR, addr & 0x1FFF
	case addr >= 0x4000 && addr <= 0x7FFF:
		return h.PRR, (h.PRR << 1) & 0x7FFF, addr & 0x3FFF
	case addr >= 0x8000:
		return h.DRR, (h.DRR << 2) & 0x7FFF, addr & 0x7FFF
	default:
		return 0, 0, 0
	}
}
