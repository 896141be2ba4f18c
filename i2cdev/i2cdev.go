// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package i2cdev talks to I²C peripherals through the Linux i2c-dev
// character devices (/dev/i2c-N).
//
// Transfers are plain read(2) and write(2) calls on the device file after the
// peripheral has been selected with the I2C_SLAVE ioctl, so the byte counts
// reported by the kernel are passed through untouched.
package i2cdev

import (
	"errors"
	"strconv"
)

// ErrOpen is wrapped by every error returned by Open.
var ErrOpen = errors.New("i2cdev: cannot open bus")

// Path returns the device file of I²C bus number n.
func Path(n int) string {
	return "/dev/i2c-" + strconv.Itoa(n)
}
