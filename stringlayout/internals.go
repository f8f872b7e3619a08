package main

import (
	"fmt"
	"strings"

	"github.com/marcodamonte/memlayout/strbuf"
)

// A growable string buffer is two things, not one:
//
//	+──────────+─────+─────+
//	│  ptr     │ len │ cap │   ← the handle: a 3-word record (24 bytes on 64-bit)
//	+──────────+─────+─────+
//	     │
//	     ▼
//	[H][e][l][l][o] . . . . .  ← the bytes: one heap allocation, cap bytes wide
//
// ptr → address of the first stored byte
// len → how many bytes are meaningful right now
// cap → how many bytes are reserved before the next reallocation
//
// The handle is cheap to move around; the bytes never move unless an append
// outgrows cap. Everything below reads the handle through accessors only —
// which of the three fields comes first inside the record is nobody's
// business but the runtime's.

func demoHandle() {
	strbuf.With(25, func(b *strbuf.Buf) {
		b.AppendString("Hello")

		fmt.Println("  reserve 25, append \"Hello\":")
		printReport(strbuf.Inspect(b))

		// ── Deep copy: new storage, same text ────────────────────────────────
		fmt.Println("\n  a clone owns its own heap buffer:")
		c := b.Clone()
		defer c.Release()
		fmt.Printf("  original addr : 0x%x\n", b.Addr())
		fmt.Printf("  clone addr    : 0x%x  ← different allocation, same bytes %q\n",
			c.Addr(), c.String())
	})
	// b released here — the scope owns the storage, not the name.
}

func printReport(r strbuf.Report) {
	lines := strings.TrimRight(r.String(), "\n")
	fmt.Println("  " + strings.ReplaceAll(lines, "\n", "\n  "))
}
