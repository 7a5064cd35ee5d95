// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Cinderworks

package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Serial connection flags
	portName string
	baudRate int

	// WebSocket connection flags
	wsURL         string
	wsUsername    string
	wsNoSSLVerify bool

	// Diagnostics
	tracePath string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "espflash",
	Short: "Espressif serial bootloader client",
	Long: `espflash - Flash ESP32-family chips over the ROM serial bootloader.

Talks the SLIP-framed loader protocol directly: chip detection, RAM stub
upload, and block-oriented flash programming, plus register, MAC, and
flash blank-check utilities.

Connection modes:
  Serial:    --port /dev/ttyUSB0 [--baud 115200]
  WebSocket: --url ws://host/path [--username user]

Serial connections drive DTR/RTS to reset the target into its bootloader.
WebSocket bridges carry no control lines, so hold the BOOT strap and reset
the board manually before running a command.

For WebSocket authentication, the password is read from the ESPFLASH_PASSWORD
environment variable, or prompted interactively if not set.`,
	Version: "1.2.0",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&portName, "port", "p", "", "Serial port device")
	rootCmd.PersistentFlags().IntVarP(&baudRate, "baud", "b", 115200, "Baud rate (serial only)")

	rootCmd.PersistentFlags().StringVarP(&wsURL, "url", "u", "", "WebSocket URL (ws:// or wss://)")
	rootCmd.PersistentFlags().StringVar(&wsUsername, "username", "", "Username for HTTP Basic auth")
	rootCmd.PersistentFlags().BoolVar(&wsNoSSLVerify, "no-ssl-verify", false, "Skip TLS certificate verification (wss:// only)")

	rootCmd.PersistentFlags().StringVar(&tracePath, "trace", "", "Record all protocol frames to a CBOR capture file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log protocol-level debug output")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
