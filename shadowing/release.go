package main

import (
	"fmt"

	"github.com/marcodamonte/memlayout/strbuf"
)

// When the shadowed value OWNS a resource the question gets interesting:
// does hiding the owner's name release the resource early? No. Release is
// tied to the owner's scope, not to its name being reachable. The shadowed
// owner keeps its heap buffer until its own scope ends.

// ── Shadowed owner stays live ─────────────────────────────────────────────────

func demoLifetimes() {
	strbuf.WithString("primer dueño", func(b *strbuf.Buf) {
		outer := strbuf.Inspect(b)
		fmt.Printf("  outer owner: %q  addr=0x%x\n", b.String(), outer.Addr)

		strbuf.WithString("segundo dueño", func(b *strbuf.Buf) { // shadows the outer b
			fmt.Printf("  inner owner: %q  addr=0x%x  ← the name b now means this one\n",
				b.String(), b.Addr())
			// The outer buffer is name-hidden here, pero sigue vivo: its
			// storage is untouched and will be released by ITS scope, not this one.
		})

		// Inner scope closed, inner buffer gone. The outer owner never noticed.
		fmt.Printf("  outer owner after inner scope: %q  addr=0x%x  ← same storage, still live\n",
			b.String(), b.Addr())
	})
}

// ── Release order is a stack ──────────────────────────────────────────────────
// Most-recently-created owner releases first. Shadowing does not reorder
// anything: each owner releases at its own scope boundary, innermost first.

func demoReleaseOrder() {
	var order []string
	note := func(name string) func() {
		return func() {
			order = append(order, name)
			fmt.Printf("  released: %s\n", name)
		}
	}

	strbuf.WithString("outer", func(b *strbuf.Buf) {
		b.OnRelease(note("outer"))

		strbuf.WithString("middle", func(b *strbuf.Buf) {
			b.OnRelease(note("middle"))

			strbuf.WithString("inner", func(b *strbuf.Buf) {
				b.OnRelease(note("inner"))
				fmt.Println("  all three owners live, two of them name-hidden")
			})
		})
	})

	fmt.Printf("\n  order: %v  ← innermost first, every owner exactly once\n", order)
}
