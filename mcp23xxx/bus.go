// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp23xxx

import (
	"errors"
	"fmt"
)

// Bus is an addressed byte oriented bus. Bind selects the peripheral that
// subsequent Write and Read calls talk to; the selection persists until the
// next Bind.
//
// Write and Read return the number of bytes actually transferred. A count
// smaller than the buffer is reported by this package as a TransferError.
type Bus interface {
	Bind(addr uint16) error
	Write(b []byte) (int, error)
	Read(b []byte) (int, error)
}

var (
	// ErrAddressSelect is wrapped by every error returned by Bind.
	ErrAddressSelect = errors.New("mcp23xxx: address select failed")
	// ErrTransfer is wrapped by every TransferError.
	ErrTransfer = errors.New("mcp23xxx: transfer failed")
	// ErrWidth is returned by ReadRegisterPair for a width other than 1 or 2.
	ErrWidth = errors.New("mcp23xxx: read width must be 1 or 2")
)

// AddressError is returned when a peripheral cannot be selected.
type AddressError struct {
	Addr uint16
	Err  error
}

func (e *AddressError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("mcp23xxx: select 0x%02X failed", e.Addr)
	}
	return fmt.Sprintf("mcp23xxx: select 0x%02X: %v", e.Addr, e.Err)
}

func (e *AddressError) Unwrap() error { return e.Err }

func (e *AddressError) Is(target error) bool { return target == ErrAddressSelect }

// TransferError is returned when a write or read did not move exactly the
// expected number of bytes.
type TransferError struct {
	Op   string // "write" or "read"
	Reg  Register
	Want int
	Got  int
	Err  error // Underlying bus error, may be nil for a plain short transfer.
}

func (e *TransferError) Error() string {
	s := fmt.Sprintf("mcp23xxx: %s %s: transferred %d of %d bytes", e.Op, e.Reg, e.Got, e.Want)
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *TransferError) Unwrap() error { return e.Err }

func (e *TransferError) Is(target error) bool { return target == ErrTransfer }

// Bind selects the peripheral at addr as the target of the following
// transactions on bus.
func Bind(bus Bus, addr uint16) error {
	if addr > 0x7F {
		return &AddressError{Addr: addr, Err: errors.New("not a 7 bit address")}
	}
	if err := bus.Bind(addr); err != nil {
		var ae *AddressError
		if errors.As(err, &ae) {
			return err
		}
		return &AddressError{Addr: addr, Err: err}
	}
	return nil
}

// ReadRegisterPair writes the register offset, then reads width bytes back.
//
// With width 2 the second byte comes from the next register, which in paired
// mode is the B twin of reg. The result is byte1<<8 | byte0. Partial
// transfers are never retried.
func ReadRegisterPair(bus Bus, reg Register, width int) (uint16, error) {
	if width != 1 && width != 2 {
		return 0, ErrWidth
	}
	var buf [2]byte
	buf[0] = byte(reg)
	if n, err := bus.Write(buf[:1]); n != 1 || err != nil {
		return 0, &TransferError{Op: "write", Reg: reg, Want: 1, Got: n, Err: err}
	}
	buf[0] = 0
	if n, err := bus.Read(buf[:width]); n != width || err != nil {
		return 0, &TransferError{Op: "read", Reg: reg, Want: width, Got: n, Err: err}
	}
	return uint16(buf[1])<<8 | uint16(buf[0]), nil
}

// ReadRegister reads a single register.
func ReadRegister(bus Bus, reg Register) (uint8, error) {
	v, err := ReadRegisterPair(bus, reg, 1)
	return uint8(v), err
}

// WriteRegister writes value to reg in a single two byte transaction.
func WriteRegister(bus Bus, reg Register, value uint8) error {
	if n, err := bus.Write([]byte{byte(reg), value}); n != 2 || err != nil {
		return &TransferError{Op: "write", Reg: reg, Want: 2, Got: n, Err: err}
	}
	return nil
}

// Split returns the A and B bytes of a value read by ReadRegisterPair.
func Split(pair uint16) (a, b uint8) {
	return uint8(pair), uint8(pair >> 8)
}
