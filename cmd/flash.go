// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Cinderworks

package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cinderworks/espflash/pkg/esprom"
)

var (
	flashAddress uint32
	flashReboot  bool
	flashNoStub  bool
)

var flashCmd = &cobra.Command{
	Use:   "flash <image.bin>",
	Short: "Write a firmware image to flash",
	Long: `Write a binary image to target flash at the given address.

By default the RAM flasher stub is uploaded first for larger write blocks;
if the upload fails the write falls back to the slower ROM loader path.
--no-stub skips the stub entirely.`,
	Args: cobra.ExactArgs(1),
	RunE: runFlash,
}

func init() {
	rootCmd.AddCommand(flashCmd)
	flashCmd.Flags().Uint32Var(&flashAddress, "address", 0x10000, "Flash offset to write at")
	flashCmd.Flags().BoolVar(&flashReboot, "reboot", false, "Reboot into the new firmware after writing")
	flashCmd.Flags().BoolVar(&flashNoStub, "no-stub", false, "Flash through the ROM loader without uploading the stub")
}

func runFlash(cmd *cobra.Command, args []string) error {
	image, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	sess, cleanup, err := openSession()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := sess.Connect(); err != nil {
		return err
	}
	fmt.Printf("Chip: %s\n", sess.Chip())

	if !flashNoStub {
		var stubErr *esprom.StubUploadError
		err := sess.LoadStub()
		switch {
		case err == nil:
			fmt.Println("Stub loaded")
		case errors.As(err, &stubErr):
			log.Printf("Stub upload failed, continuing with ROM loader: %v", err)
		default:
			return err
		}
	}

	start := time.Now()
	lastPercent := -1
	err = sess.WriteFlash(flashAddress, image, func(written, total int) {
		percent := written * 100 / total
		if percent/10 != lastPercent/10 {
			log.Printf("Wrote %d/%d bytes (%d%%)", written, total, percent)
		}
		lastPercent = percent
	}, flashReboot)
	if err != nil {
		return err
	}

	elapsed := time.Since(start).Seconds()
	fmt.Printf("Wrote %d bytes at 0x%08X in %.1fs (%.1f kB/s)\n",
		len(image), flashAddress, elapsed, float64(len(image))/1024/elapsed)
	if flashReboot {
		fmt.Println("Target rebooting into new firmware")
	}
	return nil
}
