package main

import "fmt"

// ── Rule 1: shadowing creates a fresh storage slot ────────────────────────────
// `x := ...` inside a nested scope does not touch the outer x. Two slots, one
// display name; which slot the name resolves to depends only on where you are.

func freshSlot() {
	x := "outer"
	fmt.Printf("  before block: x = %q\n", x)
	{
		x := "inner" // new slot; the outer slot is untouched
		fmt.Printf("  inside block: x = %q\n", x)
	}
	fmt.Printf("  after block:  x = %q  ← outer slot was never written\n", x)
}

// ── Rule 2: shadowing is not assignment ──────────────────────────────────────
// `x = ...` writes the existing slot; `x := ...` makes a new one. The byte of
// difference decides whether the change survives the block.

func shadowVsAssign() {
	x := 1
	{
		x := x * 10 // shadow: arithmetic on a copy in a new slot
		fmt.Printf("  shadowed x = %d\n", x)
	}
	fmt.Printf("  outer x still = %d\n", x)

	{
		x = x * 10 // assignment: same slot
	}
	fmt.Printf("  after assignment, outer x = %d\n", x)
}

// ── Rule 3: the hidden value stays reachable through other routes ────────────
// Shadowing hides a NAME. If anything else still refers to the value — a
// pointer, a closure — the value is as alive as ever.

func hiddenButAlive() {
	x := "still here"
	p := &x
	{
		x := "the usurper"
		fmt.Printf("  name resolves to: %q\n", x)
		fmt.Printf("  via pointer:      %q  ← the shadowed value, alive and well\n", *p)
	}
}

func demoBindings() {
	fmt.Println("  ── A new slot, same name ──")
	freshSlot()

	fmt.Println("\n  ── := makes a slot, = writes one ──")
	shadowVsAssign()

	fmt.Println("\n  ── Hidden, not destroyed ──")
	hiddenButAlive()
}
