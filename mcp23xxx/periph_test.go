// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp23xxx

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/i2c/i2ctest"
)

func TestPeriphBus_read(t *testing.T) {
	const address uint16 = 0x20
	scenario := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: address, W: []byte{0x00}},
			{Addr: address, R: []byte{0xFC, 0xFF}},
		},
	}
	bus := NewPeriphBus(scenario)
	if err := Bind(bus, address); err != nil {
		t.Fatal(err)
	}
	v, err := ReadRegisterPair(bus, IODIRA, 2)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0xFFFC {
		t.Errorf("got 0x%04X, want 0xFFFC", v)
	}
	if err := scenario.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestPeriphBus_write(t *testing.T) {
	const address uint16 = 0x21
	scenario := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: address, W: []byte{0x03, 0x02}},
		},
	}
	bus := NewPeriphBus(scenario)
	if err := Bind(bus, address); err != nil {
		t.Fatal(err)
	}
	if err := WriteRegister(bus, IPOLB, 0x02); err != nil {
		t.Fatal(err)
	}
	if err := scenario.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestPeriphBus_errors(t *testing.T) {
	scenario := &i2ctest.Playback{DontPanic: true}
	bus := NewPeriphBus(scenario)
	if _, err := bus.Write([]byte{0x00}); err == nil {
		t.Error("Write() before Bind() succeeded")
	}
	if err := Bind(bus, 0x100); !errors.Is(err, ErrAddressSelect) {
		t.Errorf("Bind(0x100) = %v", err)
	}
	if err := Bind(bus, 0x20); err != nil {
		t.Fatal(err)
	}
	// The playback has no more operations, so the bus fails the Tx.
	_, err := ReadRegisterPair(bus, GPIOA, 2)
	var te *TransferError
	if !errors.As(err, &te) {
		t.Fatalf("got %v, want a TransferError", err)
	}
	if te.Op != "write" || te.Got != 0 || te.Err == nil {
		t.Errorf("got %+v", te)
	}
	if bus.String() == "" {
		t.Error("String() is empty")
	}
}
