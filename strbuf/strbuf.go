// Package strbuf implements a growable, heap-backed byte buffer whose handle —
// the {data pointer, length, capacity} record — stays observable for teaching
// purposes. It is the string-flavoured sibling of a slice header:
//
//	+──────────+─────+─────+
//	│  data    │ len │ cap │   ← handle record (3×8 bytes on 64-bit)
//	+──────────+─────+─────+
//	     │
//	     ▼
//	[H][e][l][l][o] . . . .    ← byte storage, lives on the heap
//
// A Buf owns its storage exclusively: Clone performs a deep copy, and Release
// returns the storage deterministically. The supported way to guarantee
// release on every exit path is the scoped form:
//
//	strbuf.With(25, func(b *strbuf.Buf) {
//		b.AppendString("Hello")
//		fmt.Print(strbuf.Inspect(b))
//	}) // released here, panic or not
//
// Inspect and the named accessors are the only contract for reading the
// handle; RawHeader exists purely as a non-portable illustration.
package strbuf

import "unicode/utf8"

// Buf is an owned, growable byte buffer. The zero value is not ready to use;
// construct with New, WithCapacity or FromString.
//
// A Buf is Live from construction until Release, and Released afterwards.
// Released is terminal: no operation on a released Buf is part of the
// supported API. Code that only touches a Buf inside With can never observe
// the released state.
type Buf struct {
	data []byte

	// onRelease fires exactly once, when the storage is returned.
	onRelease func()
	released  bool
}

// New returns an empty Buf with no storage reserved.
func New() *Buf {
	return &Buf{}
}

// WithCapacity returns an empty Buf with storage for n bytes already
// reserved. Appends stay in place (same heap address) until the length
// would exceed n.
func WithCapacity(n int) *Buf {
	return &Buf{data: make([]byte, 0, n)}
}

// FromString returns a Buf holding a private copy of the bytes of s.
func FromString(s string) *Buf {
	b := WithCapacity(len(s))
	b.AppendString(s)
	return b
}

// AppendString appends the bytes of s, growing (and possibly relocating)
// the storage if the new length would exceed the capacity.
func (b *Buf) AppendString(s string) {
	b.data = append(b.data, s...)
}

// Append appends a copy of p. Growth rules are the same as AppendString.
func (b *Buf) Append(p []byte) {
	b.data = append(b.data, p...)
}

// Len reports the number of meaningful bytes currently stored.
func (b *Buf) Len() int { return len(b.data) }

// Cap reports the number of bytes currently reserved. Len() <= Cap() holds
// after any sequence of appends.
func (b *Buf) Cap() int { return cap(b.data) }

// Bytes returns a copy of exactly Len() bytes. It never exposes the reserved
// tail between length and capacity, and the copy keeps ownership exclusive:
// mutating the result does not touch the buffer.
func (b *Buf) Bytes() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// String decodes the stored bytes as UTF-8, substituting U+FFFD for any
// malformed sequence. Equivalent to DecodeLossy(b.Bytes()) without the copy.
func (b *Buf) String() string {
	return decodeLossy(b.data)
}

// Clone returns a new Buf owning a fresh heap buffer with the same bytes and
// the same reserved capacity. The two buffers share nothing afterwards.
func (b *Buf) Clone() *Buf {
	c := WithCapacity(cap(b.data))
	c.data = append(c.data, b.data...)
	return c
}

// OnRelease registers fn to run when the storage is released. At most one
// hook is kept; a later call replaces the earlier one. Used to make release
// order observable in the shadowing lesson and its tests.
func (b *Buf) OnRelease(fn func()) {
	b.onRelease = fn
}

// Release returns the byte storage and moves the Buf to its terminal state.
// The release hook fires exactly once; further Release calls are no-ops.
//
// Callers using With never call Release themselves.
func (b *Buf) Release() {
	if b.released {
		return
	}
	b.released = true
	b.data = nil
	if b.onRelease != nil {
		b.onRelease()
	}
}

// With runs fn with a live Buf reserving capacity bytes, and releases the
// storage on every exit path — normal return or panic. The Buf must not be
// retained after fn returns; this scope is what rules out use-after-release.
func With(capacity int, fn func(b *Buf)) {
	b := WithCapacity(capacity)
	defer b.Release()
	fn(b)
}

// WithString is With seeded with the bytes of s.
func WithString(s string, fn func(b *Buf)) {
	b := FromString(s)
	defer b.Release()
	fn(b)
}

// decodeLossy is the shared decode path for String and DecodeLossy.
func decodeLossy(p []byte) string {
	if utf8.Valid(p) {
		return string(p)
	}
	// Walk rune by rune, replacing each malformed unit. DecodeRune returns
	// (RuneError, 1) exactly for malformed input, so a literal U+FFFD in the
	// input passes through untouched.
	out := make([]byte, 0, len(p)+utf8.UTFMax)
	for len(p) > 0 {
		r, size := utf8.DecodeRune(p)
		out = utf8.AppendRune(out, r)
		p = p[size:]
	}
	return string(out)
}
