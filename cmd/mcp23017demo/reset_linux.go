// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build linux

package main

import (
	"fmt"
	"time"

	"github.com/warthog618/gpiod"
)

const (
	// RESET must be held low for at least 1µs.
	resetPulse = 10 * time.Microsecond
	// Time for the device to come out of reset before the first transaction.
	resetRecovery = time.Millisecond
)

// pulseReset drives the active low RESET pin of the expanders low, then
// high. The line is released on return, so RESET only stays high if the board
// pulls it up.
func pulseReset(chip string, line int) error {
	if line < 0 {
		return fmt.Errorf("-reset-line is required with -reset-chip")
	}
	c, err := gpiod.NewChip(chip, gpiod.WithConsumer("mcp23017demo"))
	if err != nil {
		return fmt.Errorf("failed to open GPIO chip: %w", err)
	}
	defer c.Close()
	l, err := c.RequestLine(line, gpiod.AsOutput(0))
	if err != nil {
		return fmt.Errorf("failed to request RESET line: %w", err)
	}
	defer l.Close()
	time.Sleep(resetPulse)
	if err := l.SetValue(1); err != nil {
		return fmt.Errorf("failed to release RESET line: %w", err)
	}
	time.Sleep(resetRecovery)
	return nil
}
