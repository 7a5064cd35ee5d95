// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Cinderworks

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var readRegCmd = &cobra.Command{
	Use:   "read-reg <address>",
	Short: "Read a 32-bit register",
	Args:  cobra.ExactArgs(1),
	RunE:  runReadReg,
}

var writeRegCmd = &cobra.Command{
	Use:   "write-reg <address> <value>",
	Short: "Write a 32-bit register",
	Args:  cobra.ExactArgs(2),
	RunE:  runWriteReg,
}

func init() {
	rootCmd.AddCommand(readRegCmd)
	rootCmd.AddCommand(writeRegCmd)
}

func parseWord(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid 32-bit value %q: %v", s, err)
	}
	return uint32(v), nil
}

func runReadReg(cmd *cobra.Command, args []string) error {
	addr, err := parseWord(args[0])
	if err != nil {
		return err
	}

	sess, cleanup, err := openSession()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := connectRawOK(sess); err != nil {
		return err
	}

	value, err := sess.ReadReg(addr)
	if err != nil {
		return err
	}
	fmt.Printf("0x%08X = 0x%08X\n", addr, value)
	return nil
}

func runWriteReg(cmd *cobra.Command, args []string) error {
	addr, err := parseWord(args[0])
	if err != nil {
		return err
	}
	value, err := parseWord(args[1])
	if err != nil {
		return err
	}

	sess, cleanup, err := openSession()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := connectRawOK(sess); err != nil {
		return err
	}

	if err := sess.WriteReg(addr, value); err != nil {
		return err
	}
	fmt.Printf("0x%08X <- 0x%08X\n", addr, value)
	return nil
}
