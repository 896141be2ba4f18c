// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package mcp23xxx provides register level access to the MCP23017 16 bit I²C
// GPIO expander.
//
// The package does not cache anything: every read goes to the device and
// every write is issued immediately. Transactions are performed over a Bus,
// which can be a Linux i2c-dev handle (see package i2cdev), any periph.io
// i2c.Bus wrapped with NewPeriphBus, or the simulated bus in mcp23xxxtest.
//
// Register offsets assume the power-on default addressing mode (IOCON.BANK
// = 0) where the A and B registers of a port pair are adjacent. Offsets for
// the banked mode are available through Register.Offset.
//
// # Datasheet
//
// https://ww1.microchip.com/downloads/en/DeviceDoc/20001952C.pdf
package mcp23xxx
