package script

// MaxLayer is the deepest layer a script may reach.
const MaxLayer = 6

// layerMarks[l] terminates the text of a layer-l script.
var layerMarks = [MaxLayer + 1]string{":", ".", "-", "’", ",", "_", ";"}

// LayerMark returns the mark closing a script of the given layer, or "" when
// the layer is out of range.
func LayerMark(layer int) string {
	if layer < 0 || layer > MaxLayer {
		return ""
	}

	return layerMarks[layer]
}

// MarkLayer maps a layer mark back to its layer. The ASCII apostrophe is
// accepted as an alternative spelling of the layer-3 mark.
func MarkLayer(mark rune) (int, bool) {
	switch mark {
	case ':':
		return 0, true
	case '.':
		return 1, true
	case '-':
		return 2, true
	case '’', '\'':
		return 3, true
	case ',':
		return 4, true
	case '_':
		return 5, true
	case ';':
		return 6, true
	default:
		return 0, false
	}
}

// Canonical bit of each layer-0 letter; a layer-0 byte is the OR of the
// letters it denotes.
const (
	bitE byte = 1 << iota
	bitU
	bitA
	bitS
	bitB
	bitT
)

// primitiveLetters lists the six layer-0 letters in canonical order.
var primitiveLetters = [6]byte{'E', 'U', 'A', 'S', 'B', 'T'}

var letterBits = map[byte]byte{
	'E': bitE,
	'U': bitU,
	'A': bitA,
	'S': bitS,
	'B': bitB,
	'T': bitT,
}

// letterWeights orders primitives when every structural key ties.
var letterWeights = map[byte]int{
	'E': 1,
	'U': 2,
	'A': 4,
	'S': 8,
	'B': 16,
	'T': 32,
}

var letterClasses = map[byte]Class{
	'E': Auxiliary,
	'U': Verb,
	'A': Verb,
	'S': Noun,
	'B': Noun,
	'T': Noun,
}

// remarkableAdditions maps the layer-0 shorthand letters to the union they
// stand for.
var remarkableAdditions = map[byte]byte{
	'O': bitU | bitA,
	'M': bitS | bitB | bitT,
	'F': bitU | bitA | bitS | bitB | bitT,
	'I': bitE | bitU | bitA | bitS | bitB | bitT,
}

// additionLetter returns the shorthand letter whose union is mask.
func additionLetter(mask byte) (byte, bool) {
	for _, c := range []byte{'O', 'M', 'F', 'I'} {
		if remarkableAdditions[c] == mask {
			return c, true
		}
	}

	return 0, false
}

// canonicalLen returns 3^layer.
func canonicalLen(layer int) int {
	n := 1
	for i := 0; i < layer; i++ {
		n *= 3
	}

	return n
}
