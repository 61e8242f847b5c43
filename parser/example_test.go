package parser_test

import (
	"fmt"

	"github.com/katalvlaran/ieml/parser"
)

// ExampleParse reads a two-layer script and prints its canonical text.
func ExampleParse() {
	s, err := parser.Parse("M:.E:A:M:.E:.-")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(s, s.Layer(), s.Cardinal())

	_, err = parser.Parse("M:.E:A:M:.")
	fmt.Println(err)

	// Output:
	// M:.E:A:M:.- 2 9
	// parser: expected layer mark or '+' at offset 3 in "M:.E:A:M:."
}
