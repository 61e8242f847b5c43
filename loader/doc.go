// Package loader reads universe documents: the ordered list of root
// paradigms, with their inhibited relation kinds, that seeds a relation
// rebuild.
//
// Document format (YAML):
//
//	roots:
//	  - script: "O:M:.+M:O:."
//	    inhibitions: [siblings, table_3]
//	  - script: "M:.E:A:M:.-"
//
// Inhibition names are relation kind names or the groups father, child,
// siblings and table.
package loader
