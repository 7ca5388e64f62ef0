// Package internal holds iterator helpers shared by the puzzle packages.
package internal

import (
	"iter"
)

// Grid yields every (row, col) pair with both coordinates in [0, limit],
// in row-major order: the row is the outer loop, the column the inner.
func Grid(limit uint64) iter.Seq2[uint64, uint64] {
	return func(yield func(row, col uint64) bool) {
		for row := uint64(0); row <= limit; row++ {
			for col := uint64(0); col <= limit; col++ {
				if !yield(row, col) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}
