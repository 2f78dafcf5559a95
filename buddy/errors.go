package buddy

import (
	"errors"
	"fmt"
)

// Error definitions for the capacity-exhaustion error kind (spec §7.1).
// These are returned, never panicked: allocation failure and a
// not-currently-allocated address are conditions the caller decides
// how to handle.
var (
	// ErrSizeTooLarge is returned when a request exceeds the arena's
	// total capacity (size > 1<<maxOrder).
	ErrSizeTooLarge = errors.New("buddy: requested size exceeds arena capacity")

	// ErrNoSpaceAvailable is returned when no combination of free
	// blocks can satisfy an otherwise-valid request.
	ErrNoSpaceAvailable = errors.New("buddy: no space available")

	// ErrInvalidAddress is returned when freeing an address that does
	// not fall within the managed arena.
	ErrInvalidAddress = errors.New("buddy: address is not within the managed arena")

	// ErrDoubleFree is returned when the page at the given address is
	// already linked into a free list. Spec §4.5 does not require
	// detecting a double free, but this case is cheap to catch (the
	// head page's free bit is already set) so it is reported rather
	// than silently corrupting the free lists.
	ErrDoubleFree = errors.New("buddy: address is already free")

	// ErrInvalidConfig is returned by New when minOrder/maxOrder are
	// out of range.
	ErrInvalidConfig = errors.New("buddy: invalid min/max order configuration")
)

// PreconditionViolation is panicked when a block slated for free
// carries an order field outside [minOrder, maxOrder]. Spec §7.2
// treats this as a programming error (a corrupted descriptor, or a
// free of an address that was never a block head); the reference C
// implementation printed a diagnostic and spun in `while(1)` forever.
// Spec §9 directs a rewrite to "trap/abort cleanly" instead.
type PreconditionViolation struct {
	Page  int
	Order int
}

func (e PreconditionViolation) Error() string {
	return fmt.Sprintf("buddy: precondition violation: page %d has order %d outside the allocator's range", e.Page, e.Order)
}
