package strbuf

import "unsafe"

// RawHeader mirrors the handle record at the fixed offsets today's runtime
// happens to use. It cannot be used safely or portably: the relative order of
// the three fields is an implementation detail, not a contract — the
// toolchain's swaplencap experiment already reorders Len and Cap. This type
// exists only so the layout lesson can print a fixed-offset view next to the
// accessor-based Report; it is excluded from the supported API and from
// tested guarantees. Use Inspect instead.
type RawHeader struct {
	_align [0][]byte
	Data   unsafe.Pointer
	Len    int
	Cap    int
}

// RawHeader reinterprets the handle record in place. Same caveats as the
// RawHeader type: illustration only, never a supported read path.
func (b *Buf) RawHeader() RawHeader {
	return *(*RawHeader)(unsafe.Pointer(&b.data))
}
