package buddy

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a human-readable, per-order free-block count snapshot
// to w, matching spec §4.7: observational only, no state changes.
//
// The output shape ("<count>:<sizeKiB>K ") matches original_source's
// buddy_dump; spec §6 calls the dump text format informative, not
// normative, but matching it costs nothing and is recognizable to
// anyone who has read the reference implementation.
func (a *Allocator) Dump(w io.Writer) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	for k := a.minOrder; k <= a.maxOrder; k++ {
		count := 0
		for p := a.free[k].head; p != -1; p = a.pages[p].next {
			count++
		}
		if _, err := fmt.Fprintf(w, "%d:%dK ", count, (uint64(1)<<uint(k))/1024); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// DumpString is a convenience wrapper around Dump for callers (and
// tests) that want the snapshot as a string rather than writing to an
// io.Writer.
func (a *Allocator) DumpString() string {
	var sb strings.Builder
	_ = a.Dump(&sb)
	return sb.String()
}
