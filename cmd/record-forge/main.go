// Package main provides the CLI entrypoint for record-forge.
//
// record-forge is a runtime record-type synthesizer. The CLI inspects Go
// packages and prints the record declarations that derive would hand to
// record.Define, so schema structs can be reviewed before wiring them in.
package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"record-forge/derive"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("record-forge - inspect record schemas derived from Go struct types")
		fmt.Println("Usage: record-forge <package pattern> ...")
		os.Exit(0)
	}

	decls, err := derive.Load(os.Args[1:]...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	for _, decl := range decls {
		fmt.Printf("%s (%s)\n", decl.TypeName, decl.PkgPath)
		spew.Dump(decl.Fields)
	}
}
