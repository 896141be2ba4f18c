// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"errors"
	"flag"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/GermanBionicSystems/mcp23017demo/i2cdev"
	"github.com/GermanBionicSystems/mcp23017demo/mcp23xxx"
)

func TestParseAddrs(t *testing.T) {
	got, err := parseAddrs("0x20, 0x21,,39")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]uint16{0x20, 0x21, 0x27}, got); diff != "" {
		t.Errorf("unexpected addresses (-want +got):\n%s", diff)
	}
	for _, s := range []string{"0x80", "foo", "-1"} {
		if _, err := parseAddrs(s); err == nil {
			t.Errorf("parseAddrs(%q) succeeded", s)
		}
	}
}

func TestUseColor(t *testing.T) {
	if v, err := useColor("always"); !v || err != nil {
		t.Errorf("always = %t, %v", v, err)
	}
	if v, err := useColor("never"); v || err != nil {
		t.Errorf("never = %t, %v", v, err)
	}
	if _, err := useColor("auto"); err != nil {
		t.Error(err)
	}
	if _, err := useColor("sometimes"); err == nil {
		t.Error("invalid mode accepted")
	}
}

func TestOpenBus(t *testing.T) {
	if _, _, err := openBus("smbus", ""); !errors.Is(err, errUsage) {
		t.Errorf("unknown backend: got %v, want a usage error", err)
	}
	_, _, err := openBus("i2cdev", filepath.Join(t.TempDir(), "i2c-42"))
	if !errors.Is(err, i2cdev.ErrOpen) {
		t.Errorf("got %v, want i2cdev.ErrOpen", err)
	}
}

func TestParseFlags(t *testing.T) {
	c, err := parseFlags([]string{"-target", "0x27", "-devices", "0x27", "-color", "never"})
	if err != nil {
		t.Fatal(err)
	}
	if c.opts.Target != 0x27 || c.backend != "i2cdev" || c.bus != i2cdev.Path(3) || c.opts.Dump.Bits {
		t.Errorf("got %+v", c)
	}
	if diff := cmp.Diff([]uint16{0x27}, c.opts.Devices); diff != "" {
		t.Errorf("unexpected devices (-want +got):\n%s", diff)
	}

	var tests = [][]string{
		// 65568 is 0x10020 and must not wrap around to 0x20.
		{"-target", "65568"},
		{"-target", "0x80"},
		{"-target", "foo"},
		{"-devices", "0x20,bar"},
		{"-color", "bogus"},
		{"-backend", "smbus"},
		{"-reset-chip", "gpiochip0"},
		{"-nope"},
		{"extra"},
	}
	for _, args := range tests {
		if _, err := parseFlags(args); !errors.Is(err, errUsage) {
			t.Errorf("parseFlags(%q) = %v, want a usage error", args, err)
		}
	}
	if _, err := parseFlags([]string{"-h"}); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("-h: got %v", err)
	}
}

func TestExitCode(t *testing.T) {
	var tests = []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, exitOK},
		{"help", flag.ErrHelp, exitOK},
		{"usage", fmt.Errorf("%w: invalid -color %q", errUsage, "bogus"), exitUsage},
		{"bus open", fmt.Errorf("%w: %w", errResource, i2cdev.ErrOpen), exitResource},
		{"address select", &mcp23xxx.AddressError{Addr: 0x21}, exitRun},
		{"transfer", &mcp23xxx.TransferError{Op: "read", Reg: mcp23xxx.GPIOA, Want: 2, Got: 1}, exitRun},
		{"wrapped transfer", fmt.Errorf("dump: %w", &mcp23xxx.TransferError{Op: "write", Want: 1}), exitRun},
	}
	for _, test := range tests {
		if got := exitCode(test.err); got != test.want {
			t.Errorf("%s: exitCode(%v) = %d, want %d", test.name, test.err, got, test.want)
		}
	}
}

func TestMainImpl_exitCode(t *testing.T) {
	// Argument errors are reported before the bus is opened.
	err := mainImpl([]string{"-target", "65568", "-devices", ""})
	if got := exitCode(err); got != exitUsage {
		t.Errorf("bad -target: exit %d (%v), want %d", got, err, exitUsage)
	}
	err = mainImpl([]string{"-bus", filepath.Join(t.TempDir(), "i2c-7"), "-color", "never"})
	if got := exitCode(err); got != exitResource {
		t.Errorf("missing bus: exit %d (%v), want %d", got, err, exitResource)
	}
}
