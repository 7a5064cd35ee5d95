// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Cinderworks
//
// espflash - Espressif serial bootloader client
//
// Programs flash on ESP32-family chips over a serial port or a
// serial-over-WebSocket bridge, without the vendor toolchain.

package main

import (
	"os"

	"github.com/cinderworks/espflash/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
