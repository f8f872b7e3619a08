package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/marcodamonte/memlayout/strbuf"
)

// len counts BYTES, not characters. With a variable-width encoding the two
// drift apart as soon as the text leaves ASCII, and a byte that loses its
// neighbours stops being decodable at all — the decoder substitutes U+FFFD
// rather than giving up.

func demoEncoding() {
	const text = "cañón astur" // 11 caracteres; ñ y ó ocupan 2 bytes cada uno

	strbuf.WithString(text, func(b *strbuf.Buf) {
		fmt.Printf("  %q\n", text)
		fmt.Printf("  characters : %d\n", utf8.RuneCountInString(text))
		fmt.Printf("  len (bytes): %d  ← what the handle stores\n", b.Len())

		// ── Well-formed bytes decode back exactly ────────────────────────────
		fmt.Printf("\n  decode(Bytes()) == original: %v\n", b.String() == text)

		// ── Corrupt one byte: replacement marker, not an error ───────────────
		raw := b.Bytes() // private copy; the buffer itself stays intact
		raw[2] = 0xFF    // first byte of ñ — its continuation byte is now an orphan
		fmt.Printf("\n  corrupt byte 2 and decode lossily:\n")
		fmt.Printf("  %q  ← U+FFFD per malformed unit, rest survives\n",
			strbuf.DecodeLossy(raw))

		// Bytes() hands out exactly len bytes. The reserved tail between len
		// and cap is never part of any decode.
		fmt.Printf("\n  decoded from %d bytes, cap is %d — tail never read\n",
			len(raw), b.Cap())
	})
}
