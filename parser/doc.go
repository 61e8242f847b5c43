// Package parser reads the text form of IEML scripts.
//
// The grammar, informally:
//
//	script   := sum
//	sum      := product ('+' product)*
//	product  := LETTER ':'            // E U A S B T O M F I
//	          | WORD '.'              // layer-1 shorthand: wo wa y o e …
//	          | '(' sum ')'
//	          | product{1,3} MARK     // MARK closes the next layer: . - ’ , _ ;
//
// A layer mark gathers the one to three scripts of the layer below that
// immediately precede it (stopping at '+' or '('), padding missing trailing
// positions with Null. Whitespace is ignored.
//
// Parse is the inverse of (*script.Script).String:
//
//	s, _ := parser.Parse(t.String()) // script.Equal(s, t) == true
package parser
