// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !linux

package main

import "errors"

func pulseReset(chip string, line int) error {
	return errors.New("GPIO reset requires linux")
}
