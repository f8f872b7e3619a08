package main

import (
	"fmt"

	"github.com/marcodamonte/memlayout/strbuf"
)

// Appends are in-place while len stays within cap. The moment one more byte
// would not fit, the runtime allocates a bigger buffer, copies everything
// over, and the handle's ptr changes — the old address is dead.

func demoGrowth() {
	strbuf.With(8, func(b *strbuf.Buf) {
		fmt.Println("  reserve 8 bytes:")
		fmt.Printf("  len=%d cap=%d addr=0x%x\n", b.Len(), b.Cap(), b.Addr())

		// ── Within capacity: address is stable ───────────────────────────────
		before := b.Addr()
		b.AppendString("12345678")
		fmt.Println("\n  append 8 bytes (fits exactly):")
		fmt.Printf("  len=%d cap=%d addr=0x%x  ← same address, no copy\n",
			b.Len(), b.Cap(), b.Addr())
		if b.Addr() != before {
			fmt.Println("  (unexpected relocation!)")
		}

		// ── Overflow: reallocate + copy ──────────────────────────────────────
		b.AppendString("9")
		fmt.Println("\n  append 1 more byte (overflows):")
		fmt.Printf("  len=%d cap=%d addr=0x%x  ← new allocation, bytes copied\n",
			b.Len(), b.Cap(), b.Addr())

		// len <= cap held at every step above; growth happens before the
		// write, never after.
		fmt.Printf("\n  invariant len <= cap: %d <= %d\n", b.Len(), b.Cap())
	})
}
