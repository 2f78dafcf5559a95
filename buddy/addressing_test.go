package buddy

import "testing"

// TestBuddyAddressingConsistency checks the pure addressing functions
// from spec §4.1 against each other: buddyAddr and buddyPage must
// agree on the same buddy regardless of whether it is reached via a
// byte offset or a page index, and pageOf/addrOf must be inverses at
// block heads.
func TestBuddyAddressingConsistency(t *testing.T) {
	a, err := New(4, 9)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for page := 0; page < len(a.pages); page += 3 {
		addr := a.addrOf(page)
		if got := a.pageOf(addr); got != page {
			t.Fatalf("pageOf(addrOf(%d)) = %d, want %d", page, got, page)
		}

		for k := a.minOrder; k <= a.maxOrder; k++ {
			wantPage := a.buddyPage(page, k)
			wantAddr := a.addrOf(wantPage)
			if got := a.buddyAddr(addr, k); got != wantAddr {
				t.Fatalf("buddyAddr(%d, %d) = %d, want %d (addrOf(buddyPage(%d, %d)))", addr, k, got, wantAddr, page, k)
			}
		}
	}
}

// TestBuddyAddrIsSelfInverse checks that applying buddyAddr twice at
// the same order returns the original address (spec §3: buddies share
// a parent, and XOR is its own inverse).
func TestBuddyAddrIsSelfInverse(t *testing.T) {
	a, err := New(4, 9)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	addr := a.addrOf(0)
	for k := a.minOrder; k <= a.maxOrder; k++ {
		buddy := a.buddyAddr(addr, k)
		if got := a.buddyAddr(buddy, k); got != addr {
			t.Fatalf("buddyAddr(buddyAddr(%d, %d), %d) = %d, want %d", addr, k, k, got, addr)
		}
	}
}
