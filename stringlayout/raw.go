package main

import (
	"fmt"

	"github.com/marcodamonte/memlayout/strbuf"
)

// The accessor-based report is the contract. For illustration only, the
// handle record can also be read at fixed offsets — and on today's runtime
// the numbers line up with the accessors. Don't build on this: the order of
// the three fields inside the record is an implementation detail (the
// toolchain's swaplencap experiment swaps len and cap), so a fixed-offset
// read that works today can silently read the wrong field tomorrow.

func demoRawHeader() {
	strbuf.WithString("Hello", func(b *strbuf.Buf) {
		r := strbuf.Inspect(b)
		h := b.RawHeader()

		fmt.Println("  accessor report (supported):")
		fmt.Printf("  len=%d cap=%d addr=0x%x\n", r.Len, r.Cap, r.Addr)

		fmt.Println("\n  fixed-offset view (illustration only):")
		fmt.Printf("  Data=%p Len=%d Cap=%d\n", h.Data, h.Len, h.Cap)

		agree := h.Len == r.Len && h.Cap == r.Cap
		fmt.Printf("\n  views agree on this runtime: %v  ← coincidence of layout, not a promise\n", agree)
	})
}
