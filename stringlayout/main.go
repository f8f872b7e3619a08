package main

import "fmt"

// Each demo covers one aspect of how a growable string buffer actually sits
// in memory: a tiny handle record on one side, the byte storage on the heap
// on the other.
//
// Run:
//
//	go run .
func main() {
	section("Handle — {ptr, len, cap} record, heap-backed bytes")
	demoHandle()

	section("Growth — reserve, append in place, reallocate on overflow")
	demoGrowth()

	section("Encoding — length counts bytes, lossy decode, replacement marker")
	demoEncoding()

	section("Raw header — fixed offsets work today, field order is NOT a contract")
	demoRawHeader()
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}
