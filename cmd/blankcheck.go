// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Cinderworks

package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var (
	blankStart string
	blankEnd   string
)

var blankCheckCmd = &cobra.Command{
	Use:   "blank-check",
	Short: "Scan a flash range for non-erased bytes",
	Long: `Scan an address range through the memory-mapped flash window and count
bytes still in the erased (0xFF) state.

The scan reads one word per command, so expect it to take a while on
large ranges.`,
	RunE: runBlankCheck,
}

func init() {
	rootCmd.AddCommand(blankCheckCmd)
	blankCheckCmd.Flags().StringVar(&blankStart, "start", "", "Range start address (required)")
	blankCheckCmd.Flags().StringVar(&blankEnd, "end", "", "Range end address, exclusive (required)")
	blankCheckCmd.MarkFlagRequired("start")
	blankCheckCmd.MarkFlagRequired("end")
}

func runBlankCheck(cmd *cobra.Command, args []string) error {
	start, err := parseWord(blankStart)
	if err != nil {
		return err
	}
	end, err := parseWord(blankEnd)
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

	total, err := sess.BlankCheck(start, end, func(current, start, end, blockSize uint32, erasedInBlock, totalErased int) {
		log.Printf("0x%08X: %d/%d erased in block, %d total", current, erasedInBlock, int(blockSize), totalErased)
	})
	if err != nil {
		return err
	}

	size := int(end - start)
	fmt.Printf("%d of %d bytes erased", total, size)
	if total == size {
		fmt.Print(" - range is blank")
	}
	fmt.Println()
	return nil
}
