package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/memlayout/strbuf"
)

// TestShadowedOwnerOutlivesInnerScope pins down the lesson's claim: hiding
// an owner's name behind a new binding must not shorten the original owner's
// lifetime. The outer buffer stays inspectable after the shadowing scope has
// closed, and each owner releases exactly once, innermost first.
func TestShadowedOwnerOutlivesInnerScope(t *testing.T) {
	t.Parallel()

	var order []string
	releases := map[string]int{}
	note := func(name string) func() {
		return func() {
			order = append(order, name)
			releases[name]++
		}
	}

	strbuf.WithString("outer", func(b *strbuf.Buf) {
		b.OnRelease(note("outer"))
		outerAddr := b.Addr()

		strbuf.WithString("inner", func(b *strbuf.Buf) { // shadows outer b
			b.OnRelease(note("inner"))
			require.NotEqual(t, outerAddr, b.Addr(), "two distinct owners, two buffers")

			// While shadowed, the outer owner must not have released.
			assert.Zero(t, releases["outer"], "shadowing must not trigger an early release")
		})

		// Inner scope ended: inner released, outer still live and readable.
		require.Equal(t, []string{"inner"}, order)
		r := strbuf.Inspect(b)
		assert.Equal(t, outerAddr, r.Addr, "outer storage untouched by the inner scope")
		assert.Equal(t, "outer", b.String())
	})

	assert.Equal(t, []string{"inner", "outer"}, order, "innermost releases first")
	assert.Equal(t, 1, releases["inner"])
	assert.Equal(t, 1, releases["outer"])
}

// TestPointerKeepsShadowedValueReachable mirrors the bindings demo: a name
// can be hidden while the value it bound stays fully usable through another
// reference.
func TestPointerKeepsShadowedValueReachable(t *testing.T) {
	t.Parallel()

	x := "original"
	p := &x
	{
		x := "shadow"
		_ = x
		assert.Equal(t, "original", *p)
	}
	assert.Equal(t, "original", x)
}
