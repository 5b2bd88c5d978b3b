// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mdhender/ctok"
)

// debug utility: tokenize each argument and print the tree one node
// per line with positions and nesting depth.
func main() {
	log.SetFlags(log.Lshortfile)

	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: lexer file.c...\n")
		os.Exit(2)
	}

	for _, file := range os.Args[1:] {
		started := time.Now()
		if err := scan(file); err != nil {
			fmt.Printf("%s: failed %v\n", file, err)
			continue
		}
		fmt.Printf("%s: completed in %v\n", file, time.Since(started))
	}
}

func scan(file string) error {
	input, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	ts, err := ctok.Tokenize(input, ctok.WithName(file))
	if err != nil {
		return err
	}
	counter := 0
	dump(file, ts, 0, &counter)
	return nil
}

func dump(file string, ts *ctok.TokenStream, depth int, counter *int) {
	for i := 0; ; i++ {
		cell, ok := ts.At(i)
		if !ok {
			return
		}
		*counter++
		line, col := 0, 0
		if cell.Pos != nil {
			line, col = cell.Pos.Line, cell.Pos.Column
		}
		fmt.Printf("%-35s %5d %*s%-6s %q\n",
			fmt.Sprintf("%s:%d:%d:", file, line, col),
			*counter, depth*2, "", cell.Tree.Kind, cell.Tree.String())
		if cell.Tree.Kind == ctok.KindGroup {
			dump(file, cell.Tree.Group, depth+1, counter)
		}
	}
}
