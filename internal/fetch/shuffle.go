// internal/fetch/shuffle.go
package fetch

import "math/rand"

// Shuffle returns the slice reordered by a uniform Fisher–Yates shuffle.
// Controllers using it as a transform shuffle once per fetched page;
// snapshots of an already-fetched page keep their order.
func Shuffle[T any](items []T) []T {
	rand.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
	return items
}
