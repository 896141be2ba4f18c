// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build linux

package i2cdev

import (
	"fmt"
	"os"

	"github.com/GermanBionicSystems/mcp23017demo/mcp23xxx"
	"golang.org/x/sys/unix"
)

// ioctlSlave is I2C_SLAVE from linux/i2c-dev.h.
const ioctlSlave = 0x0703

// Dev is an open i2c-dev bus. It implements mcp23xxx.Bus.
type Dev struct {
	f    *os.File
	fd   int
	path string
}

// Open opens the bus device file at path, e.g. Path(1).
func Open(path string) (*Dev, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrOpen, path, err)
	}
	return &Dev{f: f, fd: int(f.Fd()), path: path}, nil
}

// Bind selects the peripheral with the I2C_SLAVE ioctl. It stays selected
// until the next Bind.
func (d *Dev) Bind(addr uint16) error {
	if err := unix.IoctlSetInt(d.fd, ioctlSlave, int(addr)); err != nil {
		return &mcp23xxx.AddressError{Addr: addr, Err: fmt.Errorf("i2cdev: ioctl(I2C_SLAVE) on %s: %w", d.path, err)}
	}
	return nil
}

// Write writes b in one transaction and returns the number of bytes the
// peripheral accepted.
func (d *Dev) Write(b []byte) (int, error) {
	n, err := unix.Write(d.fd, b)
	if n < 0 {
		n = 0
	}
	return n, err
}

// Read reads len(b) bytes in one transaction and returns the number of bytes
// received.
func (d *Dev) Read(b []byte) (int, error) {
	n, err := unix.Read(d.fd, b)
	if n < 0 {
		n = 0
	}
	return n, err
}

// Close releases the device file.
func (d *Dev) Close() error {
	return d.f.Close()
}

func (d *Dev) String() string {
	return d.path
}

var _ mcp23xxx.Bus = &Dev{}
