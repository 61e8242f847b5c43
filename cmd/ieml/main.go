// Command ieml inspects IEML scripts: expansion, paradigm tables,
// factorization and the relations of a universe.
package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
