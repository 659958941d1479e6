// Command combwalk prints combinations of an alphabet, one per line, in
// lexicographic order grouped by length.
//
// Usage:
//
//	combwalk --base abcd
//	combwalk --base abcde --start 2 --limit 10
//	combwalk --base abcd --reverse
//
// With --reverse the cursor is first driven to exhaustion, then walked
// back to the origin.
package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/maravek/etudes/combinations"
)

func main() {
	base := flag.StringP("base", "b", "abc", "alphabet of distinct ASCII letters")
	start := flag.IntP("start", "s", 1, "combination length to start from")
	limit := flag.IntP("limit", "n", 0, "stop after this many lines (0 = no limit)")
	reverse := flag.BoolP("reverse", "r", false, "walk from the last combination back to the first")
	flag.Parse()

	if err := run(*base, *start, *limit, *reverse); err != nil {
		fmt.Fprintln(os.Stderr, "combwalk:", err)
		os.Exit(1)
	}
}

func run(base string, start, limit int, reverse bool) error {
	cursor, err := combinations.New(base, combinations.WithStartLength(start))
	if err != nil {
		return err
	}

	if reverse {
		for cursor.HasNext() {
			if _, err := cursor.Next(); err != nil {
				return err
			}
		}

		return walk(limit, cursor.HasPrevious, cursor.Previous)
	}

	return walk(limit, cursor.HasNext, cursor.Next)
}

// walk prints combinations until the cursor runs out or limit is hit.
func walk(limit int, has func() bool, step func() (string, error)) error {
	printed := 0
	for has() {
		if limit > 0 && printed >= limit {
			return nil
		}
		combination, err := step()
		if err != nil {
			return err
		}
		fmt.Println(combination)
		printed++
	}

	return nil
}
