// SPDX-License-Identifier: MIT

package network

// Allocator hands out dense, increasing index ids. It is owned by a single
// term's synthesis and never shared.
type Allocator struct {
	next Index
}

// Next returns a fresh index.
func (a *Allocator) Next() Index {
	id := a.next
	a.next++

	return id
}

// Count returns how many indices have been allocated.
func (a *Allocator) Count() int { return int(a.next) }

// chainPairs wires k factors into an open path from left to right.
// k == 1 reuses the ends; k > 1 allocates k−1 internal indices.
func (a *Allocator) chainPairs(left, right Index, k int) []Pair {
	switch k {
	case 0:
		return nil
	case 1:
		return []Pair{{left, right}}
	}

	// 1) First factor: left end to a fresh internal id.
	pairs := make([]Pair, k)
	prev := a.Next()
	pairs[0] = Pair{left, prev}

	// 2) Middle factors: each shares its row leg with the previous column leg.
	for p := 1; p < k-1; p++ {
		next := a.Next()
		pairs[p] = Pair{prev, next}
		prev = next
	}

	// 3) Last factor closes onto the right end.
	pairs[k-1] = Pair{prev, right}

	return pairs
}

// loopPairs wires k factors into a closed cycle of k fresh indices.
func (a *Allocator) loopPairs(k int) []Pair {
	switch k {
	case 0:
		return nil
	case 1:
		// A one-factor trace contracts its own legs.
		i := a.Next()
		return []Pair{{i, i}}
	}

	// 1) First factor opens the cycle on two fresh ids.
	pairs := make([]Pair, k)
	first, prev := a.Next(), a.Next()
	pairs[0] = Pair{first, prev}

	// 2) Middle factors extend it by one id each.
	for p := 1; p < k-1; p++ {
		next := a.Next()
		pairs[p] = Pair{prev, next}
		prev = next
	}

	// 3) Last factor returns to the first id.
	pairs[k-1] = Pair{prev, first}

	return pairs
}
