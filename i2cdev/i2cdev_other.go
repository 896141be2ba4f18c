// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !linux

package i2cdev

import (
	"errors"
	"fmt"
)

var errUnsupported = errors.New("i2cdev: i2c-dev is only available on linux")

// Dev is an open i2c-dev bus.
type Dev struct{}

// Open always fails on this platform.
func Open(path string) (*Dev, error) {
	return nil, fmt.Errorf("%w %s: %w", ErrOpen, path, errUnsupported)
}

// Bind implements mcp23xxx.Bus.
func (d *Dev) Bind(addr uint16) error { return errUnsupported }

// Write implements mcp23xxx.Bus.
func (d *Dev) Write(b []byte) (int, error) { return 0, errUnsupported }

// Read implements mcp23xxx.Bus.
func (d *Dev) Read(b []byte) (int, error) { return 0, errUnsupported }

// Close does nothing.
func (d *Dev) Close() error { return nil }

func (d *Dev) String() string { return "i2cdev" }
