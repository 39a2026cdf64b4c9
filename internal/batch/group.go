// Package batch splits ordered sequences into fixed-size chunks.
package batch

import "fmt"

// Group chunks items into consecutive groups of size elements. The last group
// may be shorter. Order is preserved within and across groups. size must be
// positive; Group panics otherwise.
func Group[T any](items []T, size int) [][]T {
	if size <= 0 {
		panic(fmt.Sprintf("batch: group size must be positive, got %d", size))
	}
	if len(items) == 0 {
		return nil
	}

	groups := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		// full slice expression so appending to a group never writes into the next one
		groups = append(groups, items[start:end:end])
	}
	return groups
}
