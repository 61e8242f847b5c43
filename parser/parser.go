package parser

import (
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/ieml/script"
)

// item is one entry of an open group: a parsed script or a '+' separator.
type item struct {
	s      *script.Script
	plus   bool
	offset int
}

// group collects items up to the matching ')' (or the end of input).
type group struct {
	items  []item
	offset int
}

type scanner struct {
	input  string
	groups []*group
}

// Parse reads a script from its text form.
func Parse(text string) (*script.Script, error) {
	sc := &scanner{input: text, groups: []*group{{}}}

	return sc.run()
}

// MustParse is like Parse but panics on error. It simplifies fixed tables.
func MustParse(text string) *script.Script {
	s, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return s
}

func (sc *scanner) fail(offset int, msg string, err error) error {
	return &SyntaxError{Input: sc.input, Offset: offset, Msg: msg, Err: err}
}

func (sc *scanner) top() *group { return sc.groups[len(sc.groups)-1] }

func (sc *scanner) push(s *script.Script, offset int) {
	g := sc.top()
	g.items = append(g.items, item{s: s, offset: offset})
}

func (sc *scanner) run() (*script.Script, error) {
	in := sc.input
	i := 0
	for i < len(in) {
		r, size := utf8.DecodeRuneInString(in[i:])
		switch {
		case unicode.IsSpace(r):
			i += size
		case r >= 'A' && r <= 'Z':
			next, _ := utf8.DecodeRuneInString(in[i+size:])
			if next != ':' {
				return nil, sc.fail(i+size, "expected ':' after letter", nil)
			}
			s, err := script.NewLetter(byte(r))
			if err != nil {
				return nil, sc.fail(i, "unknown letter", err)
			}
			sc.push(s, i)
			i += size + 1
		case r >= 'a' && r <= 'z':
			j := i
			for j < len(in) && in[j] >= 'a' && in[j] <= 'z' {
				j++
			}
			if j >= len(in) || in[j] != '.' {
				return nil, sc.fail(j, "expected '.' after shorthand", nil)
			}
			s, err := script.NewShorthand(in[i:j])
			if err != nil {
				return nil, sc.fail(i, "unknown shorthand", err)
			}
			sc.push(s, i)
			i = j + 1
		case r == '+':
			g := sc.top()
			if n := len(g.items); n == 0 || g.items[n-1].plus {
				return nil, sc.fail(i, "'+' without left operand", nil)
			}
			g.items = append(g.items, item{plus: true, offset: i})
			i += size
		case r == '(':
			sc.groups = append(sc.groups, &group{offset: i})
			i += size
		case r == ')':
			if len(sc.groups) == 1 {
				return nil, sc.fail(i, "unbalanced ')'", nil)
			}
			g := sc.top()
			sc.groups = sc.groups[:len(sc.groups)-1]
			s, err := sc.reduce(g, i)
			if err != nil {
				return nil, err
			}
			sc.push(s, g.offset)
			i += size
		default:
			layer, ok := script.MarkLayer(r)
			if !ok || layer == 0 {
				return nil, sc.fail(i, "unexpected character "+string(r), nil)
			}
			if err := sc.multiply(layer, i); err != nil {
				return nil, err
			}
			i += size
		}
	}
	if len(sc.groups) > 1 {
		return nil, sc.fail(sc.top().offset, "unclosed '('", nil)
	}

	return sc.reduce(sc.top(), len(in))
}

// multiply replaces the trailing one to three scripts of layer-1 by their
// product.
func (sc *scanner) multiply(layer, offset int) error {
	g := sc.top()
	n := len(g.items)
	start := n
	for start > 0 && n-start < 3 {
		it := g.items[start-1]
		if it.plus || it.s.Layer() != layer-1 {
			break
		}
		start--
	}
	if start == n {
		return sc.fail(offset, "layer mark without operand of the layer below", nil)
	}
	children := make([]*script.Script, 3)
	for k, it := range g.items[start:] {
		children[k] = it.s
	}
	s, err := script.NewMultiplicative(children[0], children[1], children[2])
	if err != nil {
		return sc.fail(offset, "invalid multiplication", err)
	}
	at := g.items[start].offset
	g.items = append(g.items[:start], item{s: s, offset: at})

	return nil
}

// reduce turns a closed group into a single script.
func (sc *scanner) reduce(g *group, offset int) (*script.Script, error) {
	if len(g.items) == 0 {
		return nil, sc.fail(offset, "empty script", nil)
	}
	members := make([]*script.Script, 0, (len(g.items)+1)/2)
	for k, it := range g.items {
		wantPlus := k%2 == 1
		switch {
		case wantPlus && !it.plus:
			return nil, sc.fail(it.offset, "expected layer mark or '+'", nil)
		case !wantPlus && it.plus:
			return nil, sc.fail(it.offset, "'+' without right operand", nil)
		case !it.plus:
			members = append(members, it.s)
		}
	}
	if g.items[len(g.items)-1].plus {
		return nil, sc.fail(g.items[len(g.items)-1].offset, "'+' without right operand", nil)
	}
	if len(members) == 1 {
		return members[0], nil
	}
	s, err := script.NewAdditive(members...)
	if err != nil {
		return nil, sc.fail(g.items[0].offset, "invalid addition", err)
	}

	return s, nil
}
