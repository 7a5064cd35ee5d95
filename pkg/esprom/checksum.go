// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Cinderworks

package esprom

// Checksum computes the write-command integrity checksum: the fixed seed
// XORed with every byte of the block. Only MEM_DATA and FLASH_DATA carry
// it; other commands send zero in the checksum field.
func Checksum(block []byte) uint32 {
	var sum byte = ChecksumSeed
	for _, b := range block {
		sum ^= b
	}
	return uint32(sum)
}
