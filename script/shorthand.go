package script

import "fmt"

// remarkableMultiplications maps substance → attribute → shorthand word for
// layer-1 products whose mode is empty.
var remarkableMultiplications = map[byte]map[byte]string{
	'U': {'U': "wo", 'A': "wa", 'S': "y", 'B': "o", 'T': "e"},
	'A': {'U': "wu", 'A': "we", 'S': "u", 'B': "a", 'T': "i"},
	'S': {'U': "j", 'A': "g", 'S': "s", 'B': "b", 'T': "t"},
	'B': {'U': "h", 'A': "c", 'S': "k", 'B': "m", 'T': "n"},
	'T': {'U': "p", 'A': "x", 'S': "d", 'B': "f", 'T': "l"},
}

// shorthandWords is the inverse of remarkableMultiplications.
var shorthandWords = func() map[string][2]byte {
	out := make(map[string][2]byte, 25)
	for sub, row := range remarkableMultiplications {
		for attr, w := range row {
			out[w] = [2]byte{sub, attr}
		}
	}

	return out
}()

// IsShorthandWord reports whether w is a layer-1 shorthand word.
func IsShorthandWord(w string) bool {
	_, ok := shorthandWords[w]

	return ok
}

// NewShorthand expands a layer-1 shorthand word ("wo", "s", …) into its
// multiplicative script.
func NewShorthand(word string) (*Script, error) {
	pair, ok := shorthandWords[word]
	if !ok {
		return nil, fmt.Errorf("shorthand %q: %w", word, ErrUnknownSymbol)
	}
	sub, err := NewLetter(pair[0])
	if err != nil {
		return nil, err
	}
	attr, err := NewLetter(pair[1])
	if err != nil {
		return nil, err
	}

	return NewMultiplicative(sub, attr, nil)
}

// shorthandOf returns the word printing a layer-1 product, if any.
func shorthandOf(sub, attr, mode *Script) (string, bool) {
	if mode.kind != Null || sub.kind != Primitive || attr.kind != Primitive {
		return "", false
	}
	w, ok := remarkableMultiplications[sub.char][attr.char]

	return w, ok
}
