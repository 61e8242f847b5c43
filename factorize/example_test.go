package factorize_test

import (
	"fmt"

	"github.com/katalvlaran/ieml/factorize"
	"github.com/katalvlaran/ieml/parser"
)

// ExampleFactorize rebuilds a two-dimensional paradigm from its nine
// singular sequences.
func ExampleFactorize() {
	seqs := parser.MustParse("M:.E:A:M:.-").Expand()

	got, err := factorize.Factorize(seqs)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(seqs), got)

	// Output:
	// 9 M:.E:A:M:.-
}
