package script_test

import (
	"fmt"

	"github.com/katalvlaran/ieml/script"
)

// ExampleScript_Expand multiplies two remarkable additions and lists the
// singular sequences, each printed with its shorthand word.
func ExampleScript_Expand() {
	o := script.Must(script.NewLetter('O'))
	m := script.Must(script.NewLetter('M'))
	om := script.Must(script.NewMultiplicative(o, m, nil))

	fmt.Println(om, om.Cardinal(), om.IsParadigm())
	fmt.Println(om.Expand())

	// Output:
	// O:M:. 6 true
	// [y. o. e. u. a. i.]
}
