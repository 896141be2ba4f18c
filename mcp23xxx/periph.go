// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp23xxx

import (
	"errors"

	"periph.io/x/conn/v3/i2c"
)

// PeriphBus adapts a periph.io i2c.Bus to Bus.
//
// periph.io buses address the peripheral on every Tx, so Bind only records
// the address. A transaction is either complete or failed; failures are
// reported as zero bytes transferred.
type PeriphBus struct {
	bus   i2c.Bus
	addr  uint16
	bound bool
}

// NewPeriphBus returns a Bus that issues its transactions on b.
func NewPeriphBus(b i2c.Bus) *PeriphBus {
	return &PeriphBus{bus: b}
}

// Bind implements Bus.
func (p *PeriphBus) Bind(addr uint16) error {
	if addr > 0x7F {
		return &AddressError{Addr: addr, Err: errors.New("not a 7 bit address")}
	}
	p.addr = addr
	p.bound = true
	return nil
}

// Write implements Bus.
func (p *PeriphBus) Write(b []byte) (int, error) {
	if !p.bound {
		return 0, errNotBound
	}
	if err := p.bus.Tx(p.addr, b, nil); err != nil {
		return 0, err
	}
	return len(b), nil
}

// Read implements Bus.
func (p *PeriphBus) Read(b []byte) (int, error) {
	if !p.bound {
		return 0, errNotBound
	}
	if err := p.bus.Tx(p.addr, nil, b); err != nil {
		return 0, err
	}
	return len(b), nil
}

func (p *PeriphBus) String() string {
	return p.bus.String()
}

var errNotBound = errors.New("mcp23xxx: no peripheral selected")

var _ Bus = &PeriphBus{}
