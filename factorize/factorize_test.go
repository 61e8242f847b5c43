package factorize_test

import (
	"math/rand"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/ieml/factorize"
	"github.com/katalvlaran/ieml/parser"
	"github.com/katalvlaran/ieml/script"
)

type FactorizeSuite struct {
	suite.Suite
}

func TestFactorizeSuite(t *testing.T) {
	suite.Run(t, new(FactorizeSuite))
}

func texts(ss []*script.Script) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = s.String()
	}
	slices.Sort(out)

	return out
}

// requireCovers asserts expand(got) equals want as a set.
func requireCovers(t *testing.T, want []*script.Script, got *script.Script) {
	t.Helper()
	w := slices.Compact(texts(want))
	require.Equal(t, w, texts(got.Expand()), "factorization %s", got)
}

func (s *FactorizeSuite) TestInputErrors() {
	_, err := factorize.Factorize(nil)
	s.Require().ErrorIs(err, factorize.ErrEmpty)

	_, err = factorize.Factorize([]*script.Script{parser.MustParse("O:")})
	s.Require().ErrorIs(err, factorize.ErrNotSingular)

	_, err = factorize.Factorize([]*script.Script{nil})
	s.Require().ErrorIs(err, factorize.ErrNotSingular)

	_, err = factorize.Factorize([]*script.Script{parser.MustParse("U:"), parser.MustParse("wo.")})
	s.Require().ErrorIs(err, factorize.ErrMixedLayers)
}

func (s *FactorizeSuite) TestSingleton() {
	seq := parser.MustParse("S:.E:A:S:.-")
	r, err := factorize.New().FactorizeCost([]*script.Script{seq, seq})
	s.Require().NoError(err)
	s.Require().True(script.Equal(seq, r.Script))
	s.Require().Zero(r.Cost)
}

func (s *FactorizeSuite) TestRoundTripsParadigms() {
	for _, in := range []string{
		"I:",
		"O:",
		"O:.",
		"M:M:.",
		"O:M:.",
		"E:A:M:.",
		"M:.E:A:M:.-",
		"O:M:.+M:O:.",
	} {
		p := parser.MustParse(in)
		got, err := factorize.Factorize(p.Expand())
		s.Require().NoError(err, in)
		s.Require().True(script.Equal(p, got), "%s factorized to %s", in, got)
	}
}

func (s *FactorizeSuite) TestCosts() {
	f := factorize.New()
	for in, cost := range map[string]int{
		"O:":          0,
		"O:M:.":       1,
		"M:.E:A:M:.-": 3,
		"O:M:.+M:O:.": 2,
	} {
		r, err := f.FactorizeCost(parser.MustParse(in).Expand())
		s.Require().NoError(err, in)
		s.Require().Equal(cost, r.Cost, in)
	}
}

// The union of O:(U:+A:+S:). and M:(A:+S:+B:). holds a larger box,
// F:(A:+S:). with ten sequences, that cuts both halves. Taking it first
// leaves two more boxes; the exact search finds the two-member partition.
func (s *FactorizeSuite) TestSearchBeatsLargestBox() {
	want := parser.MustParse("O:(U:+A:+S:).+M:(A:+S:+B:).")
	seqs := want.Expand()
	s.Require().Len(seqs, 15)

	r, err := factorize.New(factorize.WithCacheSize(0)).FactorizeCost(seqs)
	s.Require().NoError(err)
	s.Require().Equal(2, r.Cost)
	s.Require().True(script.Equal(want, r.Script), "got %s", r.Script)

	seeded, err := factorize.New(factorize.WithMaxNodes(1), factorize.WithCacheSize(0)).FactorizeCost(seqs)
	s.Require().NoError(err)
	s.Require().Equal(3, seeded.Cost)
	requireCovers(s.T(), seqs, seeded.Script)
}

func (s *FactorizeSuite) TestIrregularSetIsCovered() {
	seqs := parser.MustParse("M:.E:A:M:.-").Expand()
	seqs = slices.DeleteFunc(seqs, func(x *script.Script) bool {
		return x.String() == "S:.E:A:S:.-"
	})
	got, err := factorize.Factorize(seqs)
	s.Require().NoError(err)
	requireCovers(s.T(), seqs, got)
	s.Require().Equal(script.Additive, got.Kind())
}

func (s *FactorizeSuite) TestShuffledInputIsDeterministic() {
	seqs := parser.MustParse("O:M:.+M:O:.").Expand()
	want, err := factorize.Factorize(seqs)
	s.Require().NoError(err)

	rng := rand.New(rand.NewSource(7))
	for range 20 {
		shuffled := slices.Clone(seqs)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		got, err := factorize.New(factorize.WithCacheSize(0)).Factorize(shuffled)
		s.Require().NoError(err)
		s.Require().Equal(want.String(), got.String())
	}
}

func (s *FactorizeSuite) TestNodeBudgetStillCovers() {
	seqs := parser.MustParse("O:M:.+M:O:.").Expand()
	seqs = seqs[1:]
	f := factorize.New(factorize.WithMaxNodes(1), factorize.WithCacheSize(0))
	got, err := f.Factorize(seqs)
	s.Require().NoError(err)
	requireCovers(s.T(), seqs, got)
}

func (s *FactorizeSuite) TestConcurrentUse() {
	f := factorize.New()
	seqs := parser.MustParse("M:.E:A:M:.-").Expand()

	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := f.Factorize(seqs)
			if err == nil {
				results[i] = got.String()
			}
		}()
	}
	wg.Wait()
	for _, r := range results {
		s.Require().Equal("M:.E:A:M:.-", r)
	}
}
