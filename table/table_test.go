package table_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/ieml/parser"
	"github.com/katalvlaran/ieml/script"
	"github.com/katalvlaran/ieml/table"
)

func texts(ss []*script.Script) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = s.String()
	}

	return out
}

type BuildSuite struct {
	suite.Suite
	b *table.Builder
}

func (s *BuildSuite) SetupTest() { s.b = table.NewBuilder() }

func TestBuildSuite(t *testing.T) { suite.Run(t, new(BuildSuite)) }

func (s *BuildSuite) build(text string) []*table.Table {
	ts, err := s.b.Build(parser.MustParse(text))
	s.Require().NoError(err, text)

	return ts
}

func (s *BuildSuite) TestLayerZeroIsOneDimensional() {
	ts := s.build("I:")
	s.Require().Len(ts, 1)
	t := ts[0]
	s.Require().Equal(1, t.Dimension())
	rows, cols, tabs := t.Shape()
	s.Require().Equal([3]int{1, 6, 1}, [3]int{rows, cols, tabs})
	s.Require().Equal([]string{"I:"}, texts(t.RowHeaders()))
	s.Require().Equal([]string{"E:", "U:", "A:", "S:", "B:", "T:"}, texts(t.Cells()))
}

func (s *BuildSuite) TestSinglePluralLayerZeroChild() {
	ts := s.build("E:S:O:.")
	s.Require().Len(ts, 1)
	s.Require().Equal(1, ts[0].Dimension())
	s.Require().Equal([]string{"E:S:O:."}, texts(ts[0].RowHeaders()))
	s.Require().Equal([]string{"E:S:U:.", "E:S:A:."}, texts(ts[0].Cells()))
}

func (s *BuildSuite) TestTwoDimensional() {
	ts := s.build("M:.E:A:M:.-")
	s.Require().Len(ts, 1)
	t := ts[0]
	s.Require().Equal(2, t.Dimension())
	rows, cols, tabs := t.Shape()
	s.Require().Equal([3]int{3, 3, 1}, [3]int{rows, cols, tabs})
	s.Require().Equal([]string{"S:.E:A:M:.-", "B:.E:A:M:.-", "T:.E:A:M:.-"}, texts(t.RowHeaders()))
	s.Require().Equal([]string{"M:.E:A:S:.-", "M:.E:A:B:.-", "M:.E:A:T:.-"}, texts(t.ColHeaders()))
	s.Require().Empty(t.TabHeaders())

	c, err := t.At(1, 2, 0)
	s.Require().NoError(err)
	s.Require().Equal("B:.E:A:T:.-", c.String())

	_, err = t.At(3, 0, 0)
	s.Require().ErrorIs(err, table.ErrOutOfRange)
	_, err = t.At(0, 0, 1)
	s.Require().ErrorIs(err, table.ErrOutOfRange)
}

func (s *BuildSuite) TestThreeDimensional() {
	ts := s.build("O:O:O:.")
	s.Require().Len(ts, 1)
	t := ts[0]
	s.Require().Equal(3, t.Dimension())
	rows, cols, tabs := t.Shape()
	s.Require().Equal([3]int{2, 2, 2}, [3]int{rows, cols, tabs})
	s.Require().Equal([]string{"O:O:U:.", "O:O:A:."}, texts(t.TabHeaders()))

	c, err := t.At(1, 0, 1)
	s.Require().NoError(err)
	s.Require().Equal("A:U:A:.", c.String())
	s.Require().Equal(8, t.Len())
}

func (s *BuildSuite) TestDistributedChildTables() {
	ts := s.build("O:M:.-")
	s.Require().Len(ts, 1)
	t := ts[0]
	s.Require().Equal("O:M:.-", t.Paradigm().String())
	s.Require().Equal(2, t.Dimension())
	s.Require().Equal([]string{"U:M:.-", "A:M:.-"}, texts(t.RowHeaders()))
	s.Require().Equal([]string{"O:S:.-", "O:B:.-", "O:T:.-"}, texts(t.ColHeaders()))

	c, err := t.At(0, 0, 0)
	s.Require().NoError(err)
	s.Require().Equal("y.-", c.String())
}

func (s *BuildSuite) TestAdditive() {
	ts := s.build("O:M:.+M:O:.")
	s.Require().Len(ts, 2)
	s.Require().Equal("O:M:.", ts[0].Paradigm().String())
	s.Require().Equal("M:O:.", ts[1].Paradigm().String())

	ts = s.build("wo.+wa.+O:M:.")
	s.Require().Len(ts, 2)
	s.Require().Equal("O:M:.", ts[0].Paradigm().String())
	s.Require().Equal(1, ts[1].Dimension())
	s.Require().Equal([]string{"wo.", "wa."}, texts(ts[1].Cells()))
}

func (s *BuildSuite) TestEveryCellIsCovered() {
	for _, text := range []string{"I:", "O:M:.", "M:.E:A:M:.-", "O:O:O:.", "O:M:.-", "O:M:.+M:O:.", "O:M:.M:.-"} {
		p := parser.MustParse(text)
		var cells []string
		for _, t := range s.build(text) {
			cells = append(cells, texts(t.Cells())...)
		}
		s.Require().ElementsMatch(texts(p.Expand()), cells, text)
	}
}

func (s *BuildSuite) TestSingularIsNotTabulable() {
	_, err := s.b.Build(parser.MustParse("wo."))
	s.Require().ErrorIs(err, table.ErrNotTabulable)
	_, err = s.b.Build(nil)
	s.Require().ErrorIs(err, table.ErrNotTabulable)
}

func (s *BuildSuite) TestCachedResultIsACopy() {
	p := parser.MustParse("O:M:.+M:O:.")
	first, err := s.b.Build(p)
	s.Require().NoError(err)
	first[0] = nil

	again, err := s.b.Build(p)
	s.Require().NoError(err)
	s.Require().NotNil(again[0])

	uncached, err := table.NewBuilder(table.WithCacheSize(0)).Build(p)
	s.Require().NoError(err)
	s.Require().Equal(texts(again[0].Cells()), texts(uncached[0].Cells()))
}

func TestRank(t *testing.T) {
	b := table.NewBuilder()
	root := parser.MustParse("O:M:.M:.-")

	for text, want := range map[string]int{
		"O:M:.M:.-":      1,
		"O:M:.S:.-":      3,
		"y.M:.-":         3,
		"(y.+o.)M:.-":    2,
		"U:M:.S:.-":      5,
		"O:(S:+B:).S:.-": 4,
	} {
		got, err := b.Rank(parser.MustParse(text), root)
		require.NoError(t, err, text)
		require.Equal(t, want, got, text)
	}

	sum := parser.MustParse("O:M:.+M:O:.")
	got, err := b.Rank(parser.MustParse("M:O:."), sum)
	require.NoError(t, err)
	require.Equal(t, 1, got)

	got, err = b.Rank(parser.MustParse("O:S:."), sum)
	require.NoError(t, err)
	require.Equal(t, 3, got)
}

func TestRankErrors(t *testing.T) {
	b := table.NewBuilder()
	root := parser.MustParse("M:.E:A:M:.-")

	_, err := b.Rank(parser.MustParse("S:.E:A:S:.-"), root)
	require.ErrorIs(t, err, table.ErrNotParadigm)

	_, err = b.Rank(root, parser.MustParse("wo."))
	require.ErrorIs(t, err, table.ErrNotParadigm)

	_, err = b.Rank(parser.MustParse("M:M:.-"), root)
	require.ErrorIs(t, err, table.ErrNotInRoot)
}

func TestRankBounds(t *testing.T) {
	b := table.NewBuilder()
	root := parser.MustParse("O:M:.M:.-")
	tables, err := b.Build(root)
	require.NoError(t, err)
	for _, tb := range tables {
		for _, axis := range []table.Axis{table.Rows, table.Columns, table.Tabs} {
			for _, h := range tb.Headers(axis) {
				r, err := b.Rank(h, root)
				require.NoError(t, err, h.String())
				require.GreaterOrEqual(t, r, 1)
				require.LessOrEqual(t, r, 5)
			}
		}
	}
}
