// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// mcp23017demo exercises MCP23017 I/O expanders from user space.
//
// It dumps the registers of every device, then on the target device makes
// GPA0/GPA1 outputs and GPB0/GPB1 inputs, inverts the polarity of GPB1 and
// toggles GPA0 with GPA1 following it. The test is more interesting with
// GPA0/GPA1 jumpered to GPB0/GPB1.
//
// Exit status is 1 when the bus (or the reset line) cannot be opened, 2 when
// a transaction fails afterward and 64 for invalid arguments.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/mcp23017demo/i2cdev"
	"github.com/GermanBionicSystems/mcp23017demo/mcp23xxx"
	"github.com/GermanBionicSystems/mcp23017demo/mcp23xxx/mcp23xxxdemo"
)

var (
	// errResource marks failures to acquire the bus or the reset line.
	errResource = errors.New("resource unavailable")
	// errUsage marks invalid command line arguments.
	errUsage = errors.New("usage")
)

// Exit status.
const (
	exitOK       = 0
	exitResource = 1
	exitRun      = 2
	exitUsage    = 64
)

func main() {
	log.SetFlags(0)
	err := mainImpl(os.Args[1:])
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintf(os.Stderr, "mcp23017demo: %s.\n", err)
	}
	os.Exit(exitCode(err))
}

// exitCode maps the error returned by mainImpl to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return exitOK
	case errors.Is(err, errUsage):
		return exitUsage
	case errors.Is(err, errResource):
		return exitResource
	}
	return exitRun
}

type config struct {
	backend   string
	bus       string
	resetChip string
	resetLine int
	verbose   bool
	opts      mcp23xxxdemo.Opts
}

// parseFlags validates every argument before anything is acquired.
func parseFlags(args []string) (*config, error) {
	fs := flag.NewFlagSet("mcp23017demo", flag.ContinueOnError)
	backend := fs.String("backend", "i2cdev", "bus implementation: i2cdev or periph")
	busName := fs.String("bus", i2cdev.Path(3), "i2c-dev device file, or periph.io bus name (empty for the first bus)")
	devices := fs.String("devices", "0x20,0x21", "comma separated addresses of the devices to dump")
	target := fs.String("target", "0x20", "address of the device to test")
	colorMode := fs.String("color", "auto", "draw register bits: auto, always or never")
	resetChip := fs.String("reset-chip", "", "GPIO chip driving the RESET pin, e.g. gpiochip0; empty to skip the reset")
	resetLine := fs.Int("reset-line", -1, "GPIO line offset on -reset-chip driving the RESET pin; the line is released after the pulse, so RESET needs a pull-up to stay high")
	verbose := fs.Bool("v", false, "verbose mode")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() != 0 {
		return nil, fmt.Errorf("%w: unexpected argument: %s", errUsage, strings.Join(fs.Args(), " "))
	}
	switch *backend {
	case "i2cdev", "periph":
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", errUsage, *backend)
	}
	if *resetChip != "" && *resetLine < 0 {
		return nil, fmt.Errorf("%w: -reset-line is required with -reset-chip", errUsage)
	}

	c := &config{
		backend:   *backend,
		bus:       *busName,
		resetChip: *resetChip,
		resetLine: *resetLine,
		verbose:   *verbose,
		opts:      mcp23xxxdemo.DefaultOpts,
	}
	addrs, err := parseAddrs(*devices)
	if err != nil {
		return nil, err
	}
	c.opts.Devices = addrs
	t, err := parseAddr(*target)
	if err != nil {
		return nil, err
	}
	c.opts.Target = t
	bits, err := useColor(*colorMode)
	if err != nil {
		return nil, err
	}
	c.opts.Dump.Bits = bits
	return c, nil
}

func mainImpl(args []string) error {
	c, err := parseFlags(args)
	if err != nil {
		return err
	}
	if !c.verbose {
		log.SetOutput(io.Discard)
	}

	if c.resetChip != "" {
		log.Printf("pulsing RESET on %s line %d", c.resetChip, c.resetLine)
		if err := pulseReset(c.resetChip, c.resetLine); err != nil {
			return fmt.Errorf("%w: %w", errResource, err)
		}
	}

	bus, closer, err := openBus(c.backend, c.bus)
	if err != nil {
		if errors.Is(err, errUsage) {
			return err
		}
		return fmt.Errorf("%w: %w", errResource, err)
	}
	defer closer.Close()
	log.Printf("using %s", bus)

	return mcp23xxxdemo.Run(bus, colorable.NewColorableStdout(), &c.opts)
}

type namedBus interface {
	mcp23xxx.Bus
	fmt.Stringer
}

func openBus(backend, name string) (namedBus, io.Closer, error) {
	switch backend {
	case "i2cdev":
		d, err := i2cdev.Open(name)
		if err != nil {
			return nil, nil, err
		}
		return d, d, nil
	case "periph":
		if _, err := host.Init(); err != nil {
			return nil, nil, err
		}
		if name == i2cdev.Path(3) {
			name = ""
		}
		b, err := i2creg.Open(name)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open I²C: %w", err)
		}
		return mcp23xxx.NewPeriphBus(b), b, nil
	}
	return nil, nil, fmt.Errorf("%w: unknown backend %q", errUsage, backend)
}

func parseAddrs(s string) ([]uint16, error) {
	var out []uint16
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := parseAddr(f)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// parseAddr parses a 7 bit peripheral address.
func parseAddr(s string) (uint16, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 7)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid device address %q: %w", errUsage, s, err)
	}
	return uint16(v), nil
}

func useColor(mode string) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		fd := os.Stdout.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd), nil
	}
	return false, fmt.Errorf("%w: invalid -color %q", errUsage, mode)
}
