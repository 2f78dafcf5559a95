package buddy

// Buddy addressing: pure, total functions over the arena (spec §4.1).
// addr below means "byte offset into the arena," since this arena is
// an owned []byte rather than a process-wide fixed address; every
// formula from spec §3/§4.1 carries over unchanged under that reading.

// pageOf maps an arena-relative byte offset to its page index.
func (a *Allocator) pageOf(addr uint64) int {
	return int(addr >> uint(a.minOrder))
}

// addrOf maps a page index to its arena-relative byte offset.
func (a *Allocator) addrOf(page int) uint64 {
	return uint64(page) << uint(a.minOrder)
}

// buddyAddr returns the offset of the buddy of the block of order k
// starting at addr.
func (a *Allocator) buddyAddr(addr uint64, k int) uint64 {
	return addr ^ (uint64(1) << uint(k))
}

// buddyPage returns the page index of the buddy of the block of
// order k starting at page.
func (a *Allocator) buddyPage(page, k int) int {
	return page ^ (1 << uint(k-a.minOrder))
}
