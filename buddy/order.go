package buddy

// orderFor returns the smallest order k in [minOrder, maxOrder] with
// 1<<k >= size, matching spec §4.2. A size of 0 maps to minOrder (the
// minimum block). ok is false if size exceeds the arena's capacity.
func (a *Allocator) orderFor(size uint64) (order int, ok bool) {
	if size > a.ArenaSize() {
		return 0, false
	}
	if size == 0 {
		return a.minOrder, true
	}

	k := a.minOrder
	for k < a.maxOrder && (uint64(1)<<uint(k)) < size {
		k++
	}
	return k, true
}
