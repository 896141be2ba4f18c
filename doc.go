// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package mcp23017demo is a container for the MCP23017 bring-up tool.
//
// The register access layer lives in mcp23xxx, the Linux i2c-dev transport in
// i2cdev and the command in cmd/mcp23017demo.
package mcp23017demo
