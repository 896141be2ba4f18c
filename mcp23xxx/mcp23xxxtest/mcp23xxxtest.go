// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package mcp23xxxtest is meant to be used to test drivers over a simulated
// MCP23017.
//
// Register contents are plain fields that tests set before a run and
// inspect after it. Every transaction is recorded, and one transaction can be
// cut short to exercise transfer error handling.
package mcp23xxxtest

import (
	"fmt"

	"github.com/GermanBionicSystems/mcp23017demo/mcp23xxx"
)

// Chip is a simulated MCP23017 in paired addressing mode.
type Chip struct {
	Regs [mcp23xxx.NumRegisters]byte

	ptr uint8
}

// NewChip returns a Chip in its power-on state: every pin is an input, all
// other registers are 0.
func NewChip() *Chip {
	c := &Chip{}
	c.Reset()
	return c
}

// Reset restores the power-on register values.
func (c *Chip) Reset() {
	c.Regs = [mcp23xxx.NumRegisters]byte{}
	c.Regs[mcp23xxx.IODIRA] = 0xFF
	c.Regs[mcp23xxx.IODIRB] = 0xFF
	c.ptr = 0
}

// Pair returns the A and B values of the pair starting at r.
func (c *Chip) Pair(r mcp23xxx.Register) (a, b uint8) {
	return c.Regs[r], c.Regs[r+1]
}

// SetPair sets both sides of the pair starting at r.
func (c *Chip) SetPair(r mcp23xxx.Register, a, b uint8) {
	c.Regs[r] = a
	c.Regs[r+1] = b
}

func (c *Chip) write(b []byte) {
	if len(b) == 0 {
		return
	}
	c.ptr = b[0] % mcp23xxx.NumRegisters
	for _, v := range b[1:] {
		c.store(mcp23xxx.Register(c.ptr), v)
		c.advance()
	}
}

func (c *Chip) read(b []byte) {
	for i := range b {
		b[i] = c.Regs[c.ptr]
		c.advance()
	}
}

// store writes v to r. GPIO and OLAT track each other and IOCON is a single
// register visible at two offsets.
func (c *Chip) store(r mcp23xxx.Register, v byte) {
	c.Regs[r] = v
	switch r {
	case mcp23xxx.GPIOA, mcp23xxx.GPIOB:
		c.Regs[r+2] = v
	case mcp23xxx.OLATA, mcp23xxx.OLATB:
		c.Regs[r-2] = v
	case mcp23xxx.IOCON:
		c.Regs[mcp23xxx.IOCONB] = v
	case mcp23xxx.IOCONB:
		c.Regs[mcp23xxx.IOCON] = v
	}
}

func (c *Chip) advance() {
	c.ptr = (c.ptr + 1) % mcp23xxx.NumRegisters
}

// IO registers one transaction, the same way as i2ctest.IO does.
type IO struct {
	Addr uint16
	W    []byte
	R    []byte
}

// Bus is a simulated bus holding one Chip per address. It implements
// mcp23xxx.Bus.
//
// Bus is not safe for concurrent use; tests set and inspect its fields
// between transactions.
type Bus struct {
	Chips map[uint16]*Chip
	// Ops is every transaction that reached the bus, including the short
	// one. Bind is not recorded.
	Ops []IO
	// ShortAt is the 1-based index in Ops of a transaction that transfers
	// only ShortN bytes. 0 disables fault injection.
	ShortAt int
	ShortN  int

	addr  uint16
	bound bool
}

// NewBus returns a Bus with a power-on Chip at each of addrs.
func NewBus(addrs ...uint16) *Bus {
	b := &Bus{Chips: map[uint16]*Chip{}}
	for _, a := range addrs {
		b.Chips[a] = NewChip()
	}
	return b
}

// Bind implements mcp23xxx.Bus. It fails for an address without a Chip.
func (b *Bus) Bind(addr uint16) error {
	if _, ok := b.Chips[addr]; !ok {
		return fmt.Errorf("mcp23xxxtest: no device at 0x%02X", addr)
	}
	b.addr = addr
	b.bound = true
	return nil
}

// Write implements mcp23xxx.Bus.
func (b *Bus) Write(w []byte) (int, error) {
	if !b.bound {
		return 0, errNotBound
	}
	n := b.count(len(w))
	b.Chips[b.addr].write(w[:n])
	b.Ops = append(b.Ops, IO{Addr: b.addr, W: append([]byte{}, w[:n]...)})
	return n, nil
}

// Read implements mcp23xxx.Bus.
func (b *Bus) Read(r []byte) (int, error) {
	if !b.bound {
		return 0, errNotBound
	}
	n := b.count(len(r))
	b.Chips[b.addr].read(r[:n])
	b.Ops = append(b.Ops, IO{Addr: b.addr, R: append([]byte{}, r[:n]...)})
	return n, nil
}

// Writes returns the number of register writes, i.e. write transactions
// carrying at least one value byte, issued to addr.
func (b *Bus) Writes(addr uint16) int {
	n := 0
	for _, op := range b.Ops {
		if op.Addr == addr && len(op.W) > 1 {
			n++
		}
	}
	return n
}

// Reset clears the recorded transactions and the fault injection.
func (b *Bus) Reset() {
	b.Ops = nil
	b.ShortAt = 0
	b.ShortN = 0
}

func (b *Bus) String() string {
	return "mcp23xxxtest"
}

// count returns how many bytes the next transaction of size l moves.
func (b *Bus) count(l int) int {
	if b.ShortAt != 0 && len(b.Ops)+1 == b.ShortAt && b.ShortN < l {
		if b.ShortN < 0 {
			return 0
		}
		return b.ShortN
	}
	return l
}

var errNotBound = fmt.Errorf("mcp23xxxtest: no device selected")

var _ mcp23xxx.Bus = &Bus{}
