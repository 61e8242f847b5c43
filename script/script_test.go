package script_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ieml/parser"
	"github.com/katalvlaran/ieml/script"
)

func letter(t *testing.T, c byte) *script.Script {
	t.Helper()
	s, err := script.NewLetter(c)
	require.NoError(t, err)

	return s
}

func TestLetters(t *testing.T) {
	e := letter(t, 'E')
	require.True(t, e.IsNull())
	require.Equal(t, script.Null, e.Kind())
	require.Same(t, script.NewNull(0), e)

	u := letter(t, 'U')
	require.Equal(t, script.Primitive, u.Kind())
	require.Equal(t, "U:", u.String())
	require.Equal(t, []byte{0x02}, u.Canonical())
	require.Equal(t, byte('U'), u.Letter())

	i := letter(t, 'I')
	require.Equal(t, script.Additive, i.Kind())
	require.Equal(t, 6, i.Cardinal())
	require.Equal(t, "I:", i.String())
	require.Equal(t, []byte{0x3f}, i.Canonical())

	_, err := script.NewLetter('X')
	require.ErrorIs(t, err, script.ErrUnknownSymbol)
}

func TestNulls(t *testing.T) {
	require.Equal(t, "E:", script.NewNull(0).String())
	require.Equal(t, "E:.-", script.NewNull(2).String())
	require.Nil(t, script.NewNull(script.MaxLayer+1))

	// three nulls collapse into the null of the next layer
	n, err := script.NewMultiplicative(script.NewNull(1), nil, nil)
	require.NoError(t, err)
	require.Same(t, script.NewNull(2), n)

	// a null's children are nulls of the layer below
	require.Same(t, script.NewNull(1), script.NewNull(2).Substance())
}

func TestMultiplicative(t *testing.T) {
	u, a, s := letter(t, 'U'), letter(t, 'A'), letter(t, 'S')

	wo, err := script.NewMultiplicative(u, u, nil)
	require.NoError(t, err)
	require.Equal(t, "wo.", wo.String())
	require.Equal(t, 1, wo.Layer())
	require.Equal(t, []byte{0x02, 0x02, 0x01}, wo.Canonical())

	full, err := script.NewMultiplicative(u, a, s)
	require.NoError(t, err)
	require.Equal(t, "U:A:S:.", full.String())
	require.Same(t, s, full.Mode())

	_, err = script.NewMultiplicative(wo, u, nil)
	require.ErrorIs(t, err, script.ErrInvalidStructure)

	_, err = script.NewMultiplicative(nil, u, nil)
	require.ErrorIs(t, err, script.ErrInvalidStructure)

	// trailing nulls are elided, inner ones are not
	x, err := script.NewMultiplicative(script.NewNull(0), a, s)
	require.NoError(t, err)
	require.Equal(t, "E:A:S:.", x.String())
}

func TestAdditive(t *testing.T) {
	u, a, s := letter(t, 'U'), letter(t, 'A'), letter(t, 'S')

	o, err := script.NewAdditive(a, u, a)
	require.NoError(t, err)
	require.Equal(t, "O:", o.String())
	require.Equal(t, 2, o.Cardinal())
	require.Equal(t, []*script.Script{u, a}, o.Children())

	nested, err := script.NewAdditive(o, s)
	require.NoError(t, err)
	require.Len(t, nested.Children(), 3)

	single, err := script.NewAdditive(u, u)
	require.NoError(t, err)
	require.Same(t, u, single)

	_, err = script.NewAdditive(o, u)
	require.ErrorIs(t, err, script.ErrInvalidStructure)

	_, err = script.NewAdditive(u, script.Must(script.NewMultiplicative(u, u, nil)))
	require.ErrorIs(t, err, script.ErrInvalidStructure)

	_, err = script.NewAdditive()
	require.ErrorIs(t, err, script.ErrInvalidStructure)
}

func TestAdditiveRejectsNestedOverlap(t *testing.T) {
	o, i := letter(t, 'O'), letter(t, 'I')
	for _, extra := range []*script.Script{letter(t, 'U'), letter(t, 'A'), i} {
		_, err := script.NewAdditive(o, extra)
		require.ErrorIs(t, err, script.ErrInvalidStructure, extra.String())

		_, err = script.NewAdditive(extra, o)
		require.ErrorIs(t, err, script.ErrInvalidStructure, extra.String())
	}

	same, err := script.NewAdditive(o, letter(t, 'O'))
	require.NoError(t, err)
	require.Equal(t, "O:", same.String())

	_, err = script.NewAdditive(o, letter(t, 'M'), letter(t, 'S'))
	require.ErrorIs(t, err, script.ErrInvalidStructure)
}

func TestAdditiveChildIsParenthesized(t *testing.T) {
	sum := parser.MustParse("O:M:.+M:O:.")
	m, err := script.NewMultiplicative(sum, nil, nil)
	require.NoError(t, err)
	require.Equal(t, "(O:M:.+M:O:.)-", m.String())
	require.Equal(t, 12, m.Cardinal())
}

func TestClass(t *testing.T) {
	for text, want := range map[string]script.Class{
		"E:":          script.Auxiliary,
		"U:":          script.Verb,
		"T:":          script.Noun,
		"wo.":         script.Verb,
		"E:A:S:.":     script.Auxiliary,
		"O:M:.+M:O:.": script.Noun,
	} {
		require.Equal(t, want, parser.MustParse(text).Class(), text)
	}
}

func TestExpandMatchesCardinal(t *testing.T) {
	for _, text := range []string{"I:", "O:.", "M:M:.", "O:M:.+M:O:.", "M:.E:A:M:.-", "(O:M:.+M:O:.)-"} {
		s := parser.MustParse(text)
		seqs := s.Expand()
		require.Len(t, seqs, s.Cardinal(), text)
		for k, q := range seqs {
			require.True(t, q.IsSingular(), text)
			require.True(t, s.Includes(q), text)
			if k > 0 {
				require.True(t, script.Less(seqs[k-1], q), text)
			}
		}
	}

	wo := parser.MustParse("wo.")
	require.Equal(t, []*script.Script{wo}, wo.Expand())
}

func TestIncludes(t *testing.T) {
	root := parser.MustParse("M:.E:A:M:.-")
	require.True(t, root.Includes(root))
	require.True(t, root.Includes(parser.MustParse("S:.E:A:M:.-")))
	require.True(t, root.Includes(parser.MustParse("S:.E:A:S:.-")))
	require.False(t, root.Includes(parser.MustParse("U:.E:A:S:.-")))
	require.False(t, root.Includes(parser.MustParse("M:.")))
}

func TestOrderIsTotal(t *testing.T) {
	texts := []string{
		"E:", "U:", "A:", "S:", "B:", "T:", "O:", "M:", "F:", "I:",
		"E:.", "wo.", "wa.", "U:.", "A:.", "O:.", "M:M:.", "O:M:.", "M:O:.", "O:M:.+M:O:.",
		"E:.-", "S:.E:A:S:.-", "M:.E:A:M:.-",
	}
	ss := make([]*script.Script, len(texts))
	for i, t0 := range texts {
		ss[i] = parser.MustParse(t0)
	}

	for _, a := range ss {
		require.Zero(t, script.Compare(a, a))
		for _, b := range ss {
			ab, ba := script.Compare(a, b), script.Compare(b, a)
			require.Equal(t, -ab, ba, "%s vs %s", a, b)
			if a != b {
				require.NotZero(t, ab, "%s vs %s", a, b)
			}
			for _, c := range ss {
				if ab < 0 && script.Compare(b, c) < 0 {
					require.Negative(t, script.Compare(a, c), "%s < %s < %s", a, b, c)
				}
			}
		}
	}

	require.Negative(t, script.Compare(parser.MustParse("E:"), parser.MustParse("U:")))
	require.Negative(t, script.Compare(parser.MustParse("U:"), parser.MustParse("A:")))
	require.Negative(t, script.Compare(parser.MustParse("T:"), parser.MustParse("O:")))
	require.Negative(t, script.Compare(parser.MustParse("I:"), parser.MustParse("E:.")))
	require.Negative(t, script.Compare(parser.MustParse("E:."), parser.MustParse("wo.")))
	require.True(t, script.Equal(parser.MustParse("O:"), script.Must(script.NewLetter('O'))))
}

func TestValidate(t *testing.T) {
	for _, text := range []string{"E:", "I:", "wo.", "O:M:.+M:O:.", "M:.E:A:M:.-", "(O:M:.+M:O:.)-"} {
		require.NoError(t, parser.MustParse(text).Validate(), text)
	}
	var nilScript *script.Script
	require.ErrorIs(t, nilScript.Validate(), script.ErrInvalidStructure)
}

func TestTextRoundTrip(t *testing.T) {
	for _, text := range []string{
		"E:", "U:", "O:", "I:", "wo.", "O:.", "M:M:.", "E:.", "E:.-",
		"E:A:S:.", "S:.E:A:S:.-", "M:.E:A:M:.-", "O:M:.+M:O:.", "(O:M:.+M:O:.)-",
	} {
		s := parser.MustParse(text)
		require.Equal(t, text, s.String())
		again, err := parser.Parse(s.String())
		require.NoError(t, err)
		require.True(t, script.Equal(s, again), text)
	}
}

func TestShorthandWords(t *testing.T) {
	require.True(t, script.IsShorthandWord("wo"))
	require.False(t, script.IsShorthandWord("zz"))

	s, err := script.NewShorthand("t")
	require.NoError(t, err)
	require.Equal(t, "t.", s.String())
	require.Same(t, script.Must(script.NewLetter('S')), s.Substance())

	_, err = script.NewShorthand("zz")
	require.ErrorIs(t, err, script.ErrUnknownSymbol)
}

func TestPositions(t *testing.T) {
	s := parser.MustParse("S:.E:A:M:.-")
	require.Equal(t, "S:.", s.Child(script.Substance).String())
	require.Equal(t, "E:A:M:.", s.Attribute().String())
	require.True(t, s.Mode().IsNull())
	require.Equal(t, "substance", script.Substance.String())

	children := s.Children()
	children[0] = nil
	require.NotNil(t, s.Substance())
}
