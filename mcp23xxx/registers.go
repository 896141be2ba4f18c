// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp23xxx

import "strconv"

// Register is the offset of a register when IOCON.BANK is 0. The A side of
// every pair is at an even offset and its B twin immediately follows it.
type Register uint8

// Register offsets in paired addressing mode.
const (
	IODIRA   Register = 0x00 // Direction, 1 = input.
	IODIRB   Register = 0x01
	IPOLA    Register = 0x02 // Input polarity, 1 = inverted.
	IPOLB    Register = 0x03
	GPINTENA Register = 0x04 // Interrupt on change enable.
	GPINTENB Register = 0x05
	DEFVALA  Register = 0x06 // Default compare value for interrupt on change.
	DEFVALB  Register = 0x07
	INTCONA  Register = 0x08 // Interrupt control, 1 = compare against DEFVAL.
	INTCONB  Register = 0x09
	IOCON    Register = 0x0A // Configuration, shared by both ports.
	IOCONB   Register = 0x0B
	GPPUA    Register = 0x0C // 100kΩ pull-up enable.
	GPPUB    Register = 0x0D
	INTFA    Register = 0x0E // Interrupt flags, read only.
	INTFB    Register = 0x0F
	INTCAPA  Register = 0x10 // Port value captured at interrupt, read only.
	INTCAPB  Register = 0x11
	GPIOA    Register = 0x12 // Port value. Writing modifies OLAT.
	GPIOB    Register = 0x13
	OLATA    Register = 0x14 // Output latches.
	OLATB    Register = 0x15

	// NumRegisters is the size of the register address space.
	NumRegisters = 0x16
)

// Per pin bits, valid in every per-port register.
const (
	GP0 uint8 = 1 << iota
	GP1
	GP2
	GP3
	GP4
	GP5
	GP6
	GP7
)

// IOCON bits. Bit 0 is unimplemented and reads as 0.
const (
	INTPOL uint8 = 0x02 // INT output polarity, 1 = active high.
	ODR    uint8 = 0x04 // INT is open drain, overrides INTPOL.
	HAEN   uint8 = 0x08 // Hardware address enable, MCP23S17 only.
	DISSLW uint8 = 0x10 // SDA slew rate control disabled.
	SEQOP  uint8 = 0x20 // Sequential operation disabled.
	MIRROR uint8 = 0x40 // INTA and INTB are internally connected.
	BANK   uint8 = 0x80 // Registers are split into one bank per port.
)

// Mode is the register addressing mode selected by IOCON.BANK.
type Mode int

const (
	Paired Mode = iota // BANK = 0, power-on default.
	Banked             // BANK = 1.
)

// Port identifies one side of a register pair.
type Port int

const (
	PortA Port = 0
	PortB Port = 1
)

func (p Port) String() string {
	if p == PortB {
		return "B"
	}
	return "A"
}

// Field is a named bit within a register.
type Field struct {
	Name string
	Mask uint8
}

// RegisterInfo describes one register pair.
type RegisterInfo struct {
	Name     string   // Name without the port suffix, e.g. "IODIR".
	Register Register // A side offset in paired mode.
	Valid    uint8    // Implemented bits.
	ReadOnly bool
	Fields   []Field // Named bits, in ascending bit order. Nil for per pin registers.
}

// B returns the offset of the B side twin in paired mode.
func (i RegisterInfo) B() Register {
	return i.Register + 1
}

var ioconFields = []Field{
	{Name: "INTPOL", Mask: INTPOL},
	{Name: "ODR", Mask: ODR},
	{Name: "HAEN", Mask: HAEN},
	{Name: "DISSLW", Mask: DISSLW},
	{Name: "SEQOP", Mask: SEQOP},
	{Name: "MIRROR", Mask: MIRROR},
	{Name: "BANK", Mask: BANK},
}

// registerMap is indexed by Register/2.
var registerMap = [NumRegisters / 2]RegisterInfo{
	{Name: "IODIR", Register: IODIRA, Valid: 0xFF},
	{Name: "IPOL", Register: IPOLA, Valid: 0xFF},
	{Name: "GPINTEN", Register: GPINTENA, Valid: 0xFF},
	{Name: "DEFVAL", Register: DEFVALA, Valid: 0xFF},
	{Name: "INTCON", Register: INTCONA, Valid: 0xFF},
	{Name: "IOCON", Register: IOCON, Valid: 0xFE, Fields: ioconFields},
	{Name: "GPPU", Register: GPPUA, Valid: 0xFF},
	{Name: "INTF", Register: INTFA, Valid: 0xFF, ReadOnly: true},
	{Name: "INTCAP", Register: INTCAPA, Valid: 0xFF, ReadOnly: true},
	{Name: "GPIO", Register: GPIOA, Valid: 0xFF},
	{Name: "OLAT", Register: OLATA, Valid: 0xFF},
}

// Registers returns a copy of the register map, in address order.
func Registers() []RegisterInfo {
	out := make([]RegisterInfo, len(registerMap))
	copy(out, registerMap[:])
	for i := range out {
		if out[i].Fields != nil {
			out[i].Fields = append([]Field(nil), out[i].Fields...)
		}
	}
	return out
}

// Lookup returns the register pair with the given name, e.g. "GPPU".
func Lookup(name string) (RegisterInfo, bool) {
	for _, r := range Registers() {
		if r.Name == name {
			return r, true
		}
	}
	return RegisterInfo{}, false
}

// Info returns the description of the pair r belongs to.
func (r Register) Info() (RegisterInfo, bool) {
	if r >= NumRegisters {
		return RegisterInfo{}, false
	}
	return Registers()[r/2], true
}

// Port returns the side of the pair r belongs to.
func (r Register) Port() Port {
	return Port(r & 1)
}

// Offset returns the bus offset of r in the given addressing mode.
func (r Register) Offset(m Mode) uint8 {
	if m == Banked {
		return uint8(r&1)<<4 | uint8(r>>1)
	}
	return uint8(r)
}

func (r Register) String() string {
	if r >= NumRegisters {
		return "0x" + strconv.FormatUint(uint64(r), 16)
	}
	name := registerMap[r/2].Name
	if r == IOCON {
		return name
	}
	return name + r.Port().String()
}
