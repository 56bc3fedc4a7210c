// Package mhash computes the 32-bit identifiers that key localized message entries.
package mhash

import (
	"sync"

	"github.com/samber/lo"
	"message-info/ds"
)

const (
	// Polynomial is the standard CRC-32 generator, applied most-significant bit first.
	Polynomial uint32 = 0x04C11DB7
	// TableSize is one entry per possible byte value.
	TableSize = 256
)

var table = sync.OnceValue(buildTable)

func buildTable() []uint32 {
	return lo.Map(
		ds.MakeRange[uint32](0, TableSize, 1),
		func(i uint32, _ int) uint32 {
			k := i << 24
			for bit := 0; bit < 8; bit++ {
				if k&0x80000000 != 0 {
					k = k<<1 ^ Polynomial
				} else {
					k = k << 1
				}
			}
			return k
		},
	)
}

// Table returns a copy of the lookup table, computing it on first use.
func Table() []uint32 {
	return ds.ShallowCopy(table())
}
