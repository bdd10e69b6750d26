// Package block defines block naming and sizing shared by the namenode,
// the datanodes, and the client driver.
//
// A file of declared size S is split into ceil(S/B) blocks of at most B
// bytes. Block i of file p is named "p_i"; the name addresses the stored
// replica on a datanode. The block id is a 64-bit hash of the name and is
// used only to seed placement — never for addressing.
package block

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Name returns the canonical block name for index within path.
func Name(path string, index int) string {
	return fmt.Sprintf("%s_%d", path, index)
}

// ID returns the 64-bit hash of a block name. xxhash is stable across
// processes, which placement determinism depends on.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}

// Count returns the number of blocks a file of fileSize bytes occupies.
func Count(fileSize, blockSize int64) int {
	if fileSize <= 0 {
		return 0
	}
	return int((fileSize + blockSize - 1) / blockSize)
}
