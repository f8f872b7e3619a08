package main

import "fmt"

// Each demo covers one aspect of variable shadowing and what it does — and
// does not do — to the lifetime of the value being shadowed. Shadowing is
// the #1 source of "surely the old one is gone now?" confusion.
//
// Run:
//
//	go run .
func main() {
	section("Bindings — a new name slot, not a new value in the old slot")
	demoBindings()

	section("Lifetimes — the shadowed owner is NOT released early")
	demoLifetimes()

	section("Release order — innermost scope first, like a stack")
	demoReleaseOrder()
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}
