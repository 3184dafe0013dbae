package cpu

// Each addressing-mode method consumes its operand bytes from PC
// (advancing it) and returns the 16-bit effective address. Reads of
// pointer bytes go through the bus like any other memory access.

func (c *CPU) addrZP() uint16 {
	return uint16(c.fetch())
}

func (c *CPU) addrZPX() uint16 {
	return uint16((c.fetch() + c.X) & 0xFF)
}

func (c *CPU) addrZPY() uint16 {
	return uint16((c.fetch() + c.Y) & 0xFF)
}

func (c *CPU) addrAbs() uint16 {
	lo := uint16(c.fetch())
	hi := uint16(c.fetch())
	return hi<<8 | lo
}

func (c *CPU) addrAbsX() uint16 {
	return c.addrAbs() + uint16(c.X)
}

func (c *CPU) addrAbsY() uint16 {
	return c.addrAbs() + uint16(c.Y)
}

// addrIndZP is the 65C02 (zp) mode: pointer at zp/zp+1, no indexing.
func (c *CPU) addrIndZP() uint16 {
	zp := c.fetch()
	lo := uint16(c.bus.Read(uint16(zp)))
	hi := uint16(c.bus.Read(uint16((zp + 1) & 0xFF)))
	return hi<<8 | lo
}

// addrIndX is (zp,X): pointer at (zp+X)/(zp+X+1), both wrapped to zero page.
func (c *CPU) addrIndX() uint16 {
	base := (c.fetch() + c.X) & 0xFF
	lo := uint16(c.bus.Read(uint16(base)))
	hi := uint16(c.bus.Read(uint16((base + 1) & 0xFF)))
	return hi<<8 | lo
}

// addrIndY is (zp),Y: pointer at zp/zp+1, then add Y.
func (c *CPU) addrIndY() uint16 {
	zp := c.fetch()
	lo := uint16(c.bus.Read(uint16(zp)))
	hi := uint16(c.bus.Read(uint16((zp + 1) & 0xFF)))
	return (hi<<8 | lo) + uint16(c.Y)
}
