// Command stem takes one word on the command line and prints its stem.
package main

import (
	"fmt"
	"os"

	"github.com/mattico/rstempel"
	"github.com/mattico/rstempel/internal/demotable"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: stem <word>")
		os.Exit(1)
	}
	word := os.Args[1]

	s := rstempel.NewFromMultiTrie2(demotable.Build())
	result := s.Stem(word)

	if _, err := fmt.Printf("%s\t%s\n", word, result.Word); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
