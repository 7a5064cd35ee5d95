// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Cinderworks

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cinderworks/espflash/pkg/esprom"
)

var chipIDCmd = &cobra.Command{
	Use:   "chip-id",
	Short: "Detect the connected chip and read its MAC address",
	Long: `Reset the target into its ROM bootloader, synchronize, and report the
detected chip identity and factory MAC address.

An unrecognized chip is reported as such; register-level commands still
work against it, but flashing does not.`,
	RunE: runChipID,
}

func init() {
	rootCmd.AddCommand(chipIDCmd)
}

func runChipID(cmd *cobra.Command, args []string) error {
	sess, cleanup, err := openSession()
	if err != nil {
		return err
	}
	defer cleanup()

	err = sess.Connect()
	var unsupported *esprom.UnsupportedChipError
	if errors.As(err, &unsupported) {
		fmt.Printf("Chip: unknown (magic 0x%08X)\n", unsupported.Magic)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Chip: %s\n", sess.Chip())

	mac, err := sess.ReadMAC()
	if err != nil {
		return fmt.Errorf("reading MAC: %w", err)
	}
	fmt.Printf("MAC:  %s\n", mac)
	return nil
}
