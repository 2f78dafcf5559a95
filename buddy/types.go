// Package buddy implements a binary buddy memory allocator over a
// fixed, contiguous byte arena. It services variable-size allocation
// requests by splitting and coalescing power-of-two blocks, the way a
// kernel or embedded runtime backs page-grained allocations.
package buddy

import "sync"

const (
	// DefaultMinOrder is the reference minimum block order: 2^12 = 4 KiB pages.
	DefaultMinOrder = 12
	// DefaultMaxOrder is the reference maximum block order: 2^20 = 1 MiB arena.
	DefaultMaxOrder = 20

	// maxSupportedOrder bounds maxOrder so that 1<<maxOrder fits in a
	// signed 64-bit int; on 32-bit platforms the usable bound is lower.
	maxSupportedOrder = 62
)

// pageDescriptor is the per-page bookkeeping record described in
// spec §3. Only the head page of an extant block carries a meaningful
// order and free-list membership; interior pages are dormant.
type pageDescriptor struct {
	order int   // current block order; meaningful only on a block head
	free  bool  // true iff this page heads a block linked into a free list
	next  int32 // next page index in its free list, or -1 at the tail
	prev  int32 // prev page index in its free list, or -1 at the head
}

// freeList is the head/tail pair for one order's free list. It plays
// the role of the sentinel node in the teacher's and balloc's
// intrusive lists, without needing a dummy pageDescriptor of its own.
type freeList struct {
	head int32
	tail int32
}

// Allocator manages one arena of exactly 1<<maxOrder bytes, serviced
// by free lists for every order in [minOrder, maxOrder]. Unlike the
// reference C implementation (and the teacher's package-level
// globals), state lives on the Allocator value so a process can run
// multiple independent arenas, per design note §9.
type Allocator struct {
	minOrder int
	maxOrder int

	arena []byte
	pages []pageDescriptor
	free  []freeList // indexed by order; only [minOrder, maxOrder] populated

	mu sync.Mutex
}

// New creates an allocator managing an arena of 1<<maxOrder bytes,
// partitioned into pages of 1<<minOrder bytes. It is the equivalent
// of the reference implementation's init(): the returned Allocator
// starts with a single free block of order maxOrder covering the
// whole arena and all other free lists empty (spec §3 invariant 5,
// spec §4.6).
func New(minOrder, maxOrder int) (*Allocator, error) {
	if minOrder < 0 || maxOrder > maxSupportedOrder || minOrder > maxOrder {
		return nil, ErrInvalidConfig
	}

	numPages := 1 << uint(maxOrder-minOrder)
	a := &Allocator{
		minOrder: minOrder,
		maxOrder: maxOrder,
		arena:    make([]byte, uint64(1)<<uint(maxOrder)),
		pages:    make([]pageDescriptor, numPages),
		free:     make([]freeList, maxOrder+1),
	}

	for k := range a.free {
		a.free[k].head = -1
		a.free[k].tail = -1
	}
	for p := range a.pages {
		a.pages[p].next = -1
		a.pages[p].prev = -1
	}

	a.pages[0].order = maxOrder
	a.pushFront(maxOrder, 0)

	logDebug("buddy: initialized allocator", "minOrder", minOrder, "maxOrder", maxOrder, "pages", numPages)
	return a, nil
}

// NewDefault creates an allocator using the reference configuration
// from spec.md: 4 KiB pages within a 1 MiB arena (MIN=12, MAX=20).
func NewDefault() (*Allocator, error) {
	return New(DefaultMinOrder, DefaultMaxOrder)
}

// MinOrder returns the smallest block order this allocator services.
func (a *Allocator) MinOrder() int { return a.minOrder }

// MaxOrder returns the largest block order this allocator services.
func (a *Allocator) MaxOrder() int { return a.maxOrder }

// ArenaSize returns the total number of bytes managed by the allocator.
func (a *Allocator) ArenaSize() uint64 { return uint64(1) << uint(a.maxOrder) }
