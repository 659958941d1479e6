package combinations_test

import (
	"fmt"

	"github.com/maravek/etudes/combinations"
)

// ExampleNew walks the complete combination space of a three-symbol base,
// arity by arity.
func ExampleNew() {
	c, err := combinations.New("abc")
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for c.HasNext() {
		s, _ := c.Next()
		fmt.Println(s)
	}
	// Output:
	// a
	// b
	// c
	// ab
	// ac
	// bc
	// abc
}

// ExampleCursor_Previous demonstrates reversing direction mid-traversal:
// after three forward steps the same three combinations come back out.
func ExampleCursor_Previous() {
	c, _ := combinations.New("abcd", combinations.WithStartLength(2))

	for i := 0; i < 3; i++ {
		s, _ := c.Next()
		fmt.Println("next:", s)
	}
	for c.HasPrevious() {
		s, _ := c.Previous()
		fmt.Println("previous:", s)
	}
	// Output:
	// next: ab
	// next: ac
	// next: ad
	// previous: ad
	// previous: ac
	// previous: ab
}

// ExampleCursor_String shows the diagnostic form.
func ExampleCursor_String() {
	c, _ := combinations.New("abc", combinations.WithStartLength(2))
	fmt.Println(c)
	// Output:
	// Combinations(base="abc", arity=2)
}
