// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp23xxx

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
)

// DumpOpts controls the output of DumpAllRegisters.
type DumpOpts struct {
	// Bits draws the 16 bits of each register pair as colored blocks after
	// the hex values, B7 first. Only useful on an ANSI terminal.
	Bits bool
	// Palette used when Bits is set. Defaults to ansi256.Default.
	Palette *ansi256.Palette

	_ struct{}
}

var (
	bitOn  = color.NRGBA{R: 0x00, G: 0xD0, B: 0x00, A: 0xFF}
	bitOff = color.NRGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xFF}
)

// DumpAllRegisters binds addr and prints every register of the device to w:
// IOCON with its flags, then each A/B pair on one line.
//
// The dump stops at the first failed transaction; lines already printed are
// left as is.
func DumpAllRegisters(bus Bus, addr uint16, w io.Writer, opts *DumpOpts) error {
	if opts == nil {
		opts = &DumpOpts{}
	}
	if err := Bind(bus, addr); err != nil {
		return err
	}
	fmt.Fprintf(w, "\n=== Device 0x%02X Register Dump ===\n", addr)

	v, err := ReadRegister(bus, IOCON)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "IOCON: 0x%02X\n", v)
	for _, f := range ioconFields {
		fmt.Fprintf(w, "  %-6s %d\n", f.Name, bit(v, f.Mask))
	}

	fmt.Fprintf(w, "\n         PortA  PortB\n")
	for _, info := range registerMap {
		if info.Register == IOCON {
			continue
		}
		pair, err := ReadRegisterPair(bus, info.Register, 2)
		if err != nil {
			return err
		}
		a, b := Split(pair)
		var line bytes.Buffer
		fmt.Fprintf(&line, "%-9s0x%02X   0x%02X", info.Name+":", a, b)
		if opts.Bits {
			line.WriteString("  ")
			writeBits(&line, opts.Palette, a)
			line.WriteString(" ")
			writeBits(&line, opts.Palette, b)
			line.WriteString("\033[0m")
		}
		line.WriteByte('\n')
		_, _ = line.WriteTo(w)
	}
	fmt.Fprintf(w, "=====\n")
	return nil
}

func writeBits(buf *bytes.Buffer, p *ansi256.Palette, v uint8) {
	if p == nil {
		p = ansi256.Default
	}
	for i := 7; i >= 0; i-- {
		c := bitOff
		if v&(1<<uint(i)) != 0 {
			c = bitOn
		}
		_, _ = io.WriteString(buf, p.Block(c))
	}
}

func bit(v, mask uint8) int {
	if v&mask != 0 {
		return 1
	}
	return 0
}
