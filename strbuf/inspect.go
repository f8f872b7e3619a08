package strbuf

import (
	"fmt"
	"strings"
	"unsafe"
)

// Report is the inspection result for one live Buf: the size of the handle
// record itself plus the three values it holds. All values come from the
// named accessors — the report never assumes where each field sits inside
// the record.
type Report struct {
	HandleSize uintptr // bytes occupied by the {data,len,cap} record
	Len        int
	Cap        int
	Addr       uintptr // heap address of the first stored byte; 0 when nothing is reserved
}

// Inspect reads the in-memory shape of a live Buf. It is read-only and must
// only be called while the Buf is in scope — With makes that automatic.
func Inspect(b *Buf) Report {
	return Report{
		HandleSize: unsafe.Sizeof(b.data),
		Len:        b.Len(),
		Cap:        b.Cap(),
		Addr:       b.Addr(),
	}
}

// Addr returns the heap address of the byte storage, or 0 when no storage
// has been reserved. The address is informational: it identifies a
// relocation after growth, nothing more.
func (b *Buf) Addr() uintptr {
	if cap(b.data) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(b.data)))
}

// String renders the report as labeled lines for console output. The exact
// formatting is for humans, not a compatibility contract.
func (r Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "handle size : %d bytes\n", r.HandleSize)
	fmt.Fprintf(&sb, "length      : %d\n", r.Len)
	fmt.Fprintf(&sb, "capacity    : %d\n", r.Cap)
	fmt.Fprintf(&sb, "heap addr   : 0x%x\n", r.Addr)
	return sb.String()
}

// DecodeLossy decodes p as UTF-8, substituting U+FFFD for every malformed
// unit instead of failing. Well-formed input comes back byte-for-byte
// identical; the decode reads exactly len(p) bytes.
func DecodeLossy(p []byte) string {
	return decodeLossy(p)
}
