// Command stempacked is cmd/stem against the packed engine instead of the
// reference trie/editcmd engine, built from the same demo table, showing
// the two engines are interchangeable from the outside.
package main

import (
	"fmt"
	"os"

	"github.com/mattico/rstempel/internal/demotable"
	"github.com/mattico/rstempel/packed"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: stempacked <word>")
		os.Exit(1)
	}
	word := os.Args[1]

	s, err := packed.Build(demotable.Build())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	result := s.Stem(word)

	if _, err := fmt.Printf("%s\t%s\n", word, result.Word); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
