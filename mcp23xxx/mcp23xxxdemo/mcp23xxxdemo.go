// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package mcp23xxxdemo exercises an MCP23017 the way the bring-up test
// fixture expects it to be wired: port A pins 0 and 1 jumpered to port B pins
// 0 and 1.
//
// On every run the device registers are dumped, A0/A1 are made outputs and
// B0/B1 inputs, B1 gets inverted polarity, and A0 is toggled with A1 mirroring
// it. Configuration registers are only written when they differ from the
// wanted value, so repeated runs converge and then stop writing.
package mcp23xxxdemo

import (
	"fmt"
	"io"

	"github.com/GermanBionicSystems/mcp23017demo/mcp23xxx"
)

// Opts selects the devices and pins used by Run.
type Opts struct {
	// Devices are dumped, in order, before the tests run.
	Devices []uint16
	// Target is the device the tests run against.
	Target uint16

	// Outputs are the port A bits that must be outputs.
	Outputs uint8
	// Inputs are the port B bits that must be inputs.
	Inputs uint8
	// Normal are the port B bits whose polarity must not be inverted.
	Normal uint8
	// Inverted are the port B bits whose polarity must be inverted.
	Inverted uint8
	// Toggle is the port A bit that is flipped.
	Toggle uint8
	// Mirror are the port A bits forced to the new state of Toggle.
	Mirror uint8

	Dump mcp23xxx.DumpOpts

	_ struct{}
}

// DefaultOpts matches the reference fixture: two expanders at 0x20 and 0x21.
var DefaultOpts = Opts{
	Devices:  []uint16{0x20, 0x21},
	Target:   0x20,
	Outputs:  mcp23xxx.GP0 | mcp23xxx.GP1,
	Inputs:   mcp23xxx.GP0 | mcp23xxx.GP1,
	Normal:   mcp23xxx.GP0,
	Inverted: mcp23xxx.GP1,
	Toggle:   mcp23xxx.GP0,
	Mirror:   mcp23xxx.GP1,
}

// Run dumps every device of opts, then runs the direction, polarity and
// toggle steps on the target. The first failure aborts the run.
func Run(bus mcp23xxx.Bus, w io.Writer, opts *Opts) error {
	if opts == nil {
		opts = &DefaultOpts
	}
	for _, addr := range opts.Devices {
		if err := mcp23xxx.DumpAllRegisters(bus, addr, w, &opts.Dump); err != nil {
			return err
		}
	}
	if err := mcp23xxx.Bind(bus, opts.Target); err != nil {
		return err
	}
	fmt.Fprintf(w, "\n\nRunning some tests on device 0x%02X...\n", opts.Target)
	if _, err := EnsureDirection(bus, w, opts); err != nil {
		return err
	}
	if _, err := EnsurePolarity(bus, w, opts); err != nil {
		return err
	}
	_, err := Toggle(bus, w, opts)
	return err
}

// EnsureDirection makes opts.Outputs outputs on port A and opts.Inputs
// inputs on port B. It returns the number of register writes issued.
//
// The target must already be bound.
func EnsureDirection(bus mcp23xxx.Bus, w io.Writer, opts *Opts) (int, error) {
	a, b, err := readPair(bus, w, mcp23xxx.IODIRA)
	if err != nil {
		return 0, err
	}
	writes := 0
	if a&opts.Outputs != 0 {
		if err := mcp23xxx.WriteRegister(bus, mcp23xxx.IODIRA, a&^opts.Outputs); err != nil {
			return writes, err
		}
		writes++
	}
	if b&opts.Inputs != opts.Inputs {
		if err := mcp23xxx.WriteRegister(bus, mcp23xxx.IODIRB, b|opts.Inputs); err != nil {
			return writes, err
		}
		writes++
	}
	return writes, nil
}

// EnsurePolarity clears opts.Normal and sets opts.Inverted in IPOLB. It
// returns the number of register writes issued.
func EnsurePolarity(bus mcp23xxx.Bus, w io.Writer, opts *Opts) (int, error) {
	_, b, err := readPair(bus, w, mcp23xxx.IPOLA)
	if err != nil {
		return 0, err
	}
	if b&opts.Normal == 0 && b&opts.Inverted == opts.Inverted {
		return 0, nil
	}
	if err := mcp23xxx.WriteRegister(bus, mcp23xxx.IPOLB, b&^opts.Normal|opts.Inverted); err != nil {
		return 0, err
	}
	return 1, nil
}

// Toggle flips opts.Toggle on port A, drives opts.Mirror to the same new
// level, and reads the port back. It returns the port A value written.
func Toggle(bus mcp23xxx.Bus, w io.Writer, opts *Opts) (uint8, error) {
	a, _, err := readPair(bus, w, mcp23xxx.GPIOA)
	if err != nil {
		return 0, err
	}
	a = NextOutput(a, opts.Toggle, opts.Mirror)
	if err := mcp23xxx.WriteRegister(bus, mcp23xxx.GPIOA, a); err != nil {
		return 0, err
	}
	if _, _, err := readPair(bus, w, mcp23xxx.GPIOA); err != nil {
		return 0, err
	}
	fmt.Fprintln(w)
	return a, nil
}

// NextOutput returns v with toggle inverted and mirror set to the new value
// of toggle.
func NextOutput(v, toggle, mirror uint8) uint8 {
	if v&toggle != 0 {
		return v &^ (toggle | mirror)
	}
	return v | toggle | mirror
}

// readPair reads and prints the pair starting at r.
func readPair(bus mcp23xxx.Bus, w io.Writer, r mcp23xxx.Register) (a, b uint8, err error) {
	v, err := mcp23xxx.ReadRegisterPair(bus, r, 2)
	if err != nil {
		return 0, 0, err
	}
	a, b = mcp23xxx.Split(v)
	fmt.Fprintf(w, "%s 0x%02X  %s 0x%02X\n", r, a, r+1, b)
	return a, b, nil
}
