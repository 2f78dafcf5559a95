package buddy

// Free-list registry (spec §3): an array of list heads, one per order
// in [minOrder, maxOrder]. A descriptor is on free[k] iff the block
// starting at its page is currently free and has order k.
//
// The list is intrusive per design note §9 option (a): next/prev live
// directly on the pageDescriptor, so removal by page index is O(1)
// without walking the list -- grounded in alewtschuk-balloc's
// sentinel-per-order Avail list, generalized here to a plain head/tail
// pair per order instead of an embedded sentinel record. Each
// descriptor's free bit doubles as the O(1) buddy-presence check from
// design note §9 option (b), so the coalesce loop in free.go never
// scans a free list at all.

// pushFront inserts page at the head of free[k]. Removing the list
// head (not tail) on allocation is specified in spec §4.4 so that
// coalesced-and-reinserted blocks are reused first (LIFO reuse).
func (a *Allocator) pushFront(k, page int) {
	fl := &a.free[k]
	pd := &a.pages[page]

	pd.order = k
	pd.free = true
	pd.prev = -1
	pd.next = fl.head

	if fl.head != -1 {
		a.pages[fl.head].prev = int32(page)
	} else {
		fl.tail = int32(page)
	}
	fl.head = int32(page)
}

// popFront removes and returns the head of free[k], or ok=false if
// free[k] is empty.
func (a *Allocator) popFront(k int) (page int, ok bool) {
	fl := &a.free[k]
	if fl.head == -1 {
		return 0, false
	}
	p := int(fl.head)
	a.unlink(k, p)
	return p, true
}

// unlink removes page from free[k] using its own stored prev/next,
// without searching the list.
func (a *Allocator) unlink(k, page int) {
	fl := &a.free[k]
	pd := &a.pages[page]

	if pd.prev != -1 {
		a.pages[pd.prev].next = pd.next
	} else {
		fl.head = pd.next
	}
	if pd.next != -1 {
		a.pages[pd.next].prev = pd.prev
	} else {
		fl.tail = pd.prev
	}

	pd.next, pd.prev = -1, -1
	pd.free = false
}
