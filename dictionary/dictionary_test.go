package dictionary_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ieml/dictionary"
	"github.com/katalvlaran/ieml/parser"
	"github.com/katalvlaran/ieml/script"
	"github.com/katalvlaran/ieml/table"
)

func roots(texts ...string) []*script.Script {
	out := make([]*script.Script, len(texts))
	for i, t := range texts {
		out[i] = parser.MustParse(t)
	}

	return out
}

func TestClosure(t *testing.T) {
	d, err := dictionary.New(roots("M:.E:A:M:.-", "O:M:.+M:O:."), dictionary.WithBuilder(table.NewBuilder()))
	require.NoError(t, err)

	// 1 root + 6 headers + 9 sequences, and 1 root + 2 members + 10 headers + 12 sequences
	require.Equal(t, 41, d.Len())

	got := d.Roots()
	require.Equal(t, "M:.E:A:M:.-", got[0].String())
	require.Equal(t, "O:M:.+M:O:.", got[1].String())

	for _, text := range []string{"S:.E:A:M:.-", "M:.E:A:T:.-", "O:M:.", "M:O:.", "A:M:.", "O:T:.", "M:U:.", "i."} {
		require.True(t, d.Has(parser.MustParse(text)), text)
	}
	require.False(t, d.Has(parser.MustParse("M:.")))

	first, err := d.At(0)
	require.NoError(t, err)
	require.Equal(t, "y.", first.String())
}

func TestIndicesFollowScriptOrder(t *testing.T) {
	d, err := dictionary.New(roots("O:M:.+M:O:.", "M:.E:A:M:.-"))
	require.NoError(t, err)

	terms := d.Terms()
	for i, s := range terms {
		idx, err := d.Index(s)
		require.NoError(t, err)
		require.Equal(t, i, idx)
		at, err := d.At(i)
		require.NoError(t, err)
		require.Same(t, s, at)
		if i > 0 {
			require.True(t, script.Less(terms[i-1], s))
		}
	}
}

func TestRootMembership(t *testing.T) {
	r1, r2 := parser.MustParse("M:.E:A:M:.-"), parser.MustParse("O:M:.+M:O:.")
	d, err := dictionary.New([]*script.Script{r1, r2})
	require.NoError(t, err)

	require.True(t, d.IsRoot(r1))
	require.False(t, d.IsRoot(parser.MustParse("O:M:.")))

	root, err := d.RootOf(parser.MustParse("S:.E:A:S:.-"))
	require.NoError(t, err)
	require.Same(t, r1, root)

	for _, m := range []string{"y.", "i.", "M:U:."} {
		root, err = d.RootOf(parser.MustParse(m))
		require.NoError(t, err, m)
		require.Equal(t, r2.String(), root.String(), m)
	}

	_, err = d.RootOf(parser.MustParse("wa."))
	require.ErrorIs(t, err, dictionary.ErrNotFound)

	members, err := d.Members(r1)
	require.NoError(t, err)
	require.Len(t, members, 16)
	for _, m := range members {
		require.True(t, r1.Includes(m), m.String())
	}

	idx, err := d.MemberIndices(r2)
	require.NoError(t, err)
	require.Len(t, idx, 25)
	for _, i := range idx {
		ri, err := d.RootIndexOf(i)
		require.NoError(t, err)
		require.Equal(t, d.RootIndices()[1], ri)
	}

	_, err = d.Members(parser.MustParse("O:M:."))
	require.ErrorIs(t, err, dictionary.ErrNotARootParadigm)
}

func TestLookupErrors(t *testing.T) {
	d, err := dictionary.New(roots("O:M:."))
	require.NoError(t, err)

	_, err = d.Index(parser.MustParse("M:O:."))
	require.ErrorIs(t, err, dictionary.ErrNotFound)
	_, err = d.Index(nil)
	require.ErrorIs(t, err, dictionary.ErrNotFound)
	_, err = d.At(d.Len())
	require.ErrorIs(t, err, dictionary.ErrNotFound)
	_, err = d.RootIndexOf(-1)
	require.ErrorIs(t, err, dictionary.ErrNotFound)
	_, ok := d.Lookup(parser.MustParse("M:O:."))
	require.False(t, ok)
}

func TestInvalidRoots(t *testing.T) {
	_, err := dictionary.New(roots("wo."))
	require.ErrorIs(t, err, dictionary.ErrNotARootParadigm)

	_, err = dictionary.New([]*script.Script{nil})
	require.ErrorIs(t, err, dictionary.ErrNotARootParadigm)

	_, err = dictionary.New(roots("O:M:.", "U:M:."))
	require.ErrorIs(t, err, dictionary.ErrOverlappingRoots)

	d, err := dictionary.New(nil)
	require.NoError(t, err)
	require.Zero(t, d.Len())
}
