// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp23xxx_test

import (
	"fmt"
	"log"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/mcp23017demo/mcp23xxx"
	"github.com/GermanBionicSystems/mcp23017demo/mcp23xxx/mcp23xxxtest"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Open default I²C bus.
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer b.Close()

	bus := mcp23xxx.NewPeriphBus(b)
	if err := mcp23xxx.Bind(bus, 0x20); err != nil {
		log.Fatal(err)
	}
	v, err := mcp23xxx.ReadRegisterPair(bus, mcp23xxx.GPIOA, 2)
	if err != nil {
		log.Fatal(err)
	}
	a, portB := mcp23xxx.Split(v)
	fmt.Printf("GPIOA 0x%02X  GPIOB 0x%02X\n", a, portB)
}

func ExampleWriteRegister() {
	bus := mcp23xxxtest.NewBus(0x20)
	if err := mcp23xxx.Bind(bus, 0x20); err != nil {
		log.Fatal(err)
	}
	// Make GPA0 and GPA1 outputs.
	if err := mcp23xxx.WriteRegister(bus, mcp23xxx.IODIRA, ^(mcp23xxx.GP0 | mcp23xxx.GP1)); err != nil {
		log.Fatal(err)
	}
	v, err := mcp23xxx.ReadRegisterPair(bus, mcp23xxx.IODIRA, 2)
	if err != nil {
		log.Fatal(err)
	}
	a, b := mcp23xxx.Split(v)
	fmt.Printf("IODIRA 0x%02X  IODIRB 0x%02X\n", a, b)
	// Output: IODIRA 0xFC  IODIRB 0xFF
}
