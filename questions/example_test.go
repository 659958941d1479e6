package questions_test

import (
	"fmt"
	"strings"

	"github.com/maravek/etudes/questions"
)

// ExampleLoadYAML loads a short questionnaire, sorts it into the
// canonical kind order, and grades one answer sheet.
func ExampleLoadYAML() {
	doc := `
questions:
  - type: likert
    text: The exam was fair.
  - type: truefalse
    text: Slices share backing arrays.
    correct: "True"
  - type: multiplechoice
    text: Pick the even number.
    correct: "3"
    options: [one, three, four]
`
	bank, err := questions.LoadYAML(strings.NewReader(doc))
	if err != nil {
		fmt.Println("load:", err)
		return
	}
	bank.Sort()

	results, err := bank.Evaluate([]string{"true", "3", "5"})
	if err != nil {
		fmt.Println("evaluate:", err)
		return
	}
	for i, q := range bank.Questions() {
		fmt.Printf("%s -> %s\n", q.Text(), results[i])
	}
	// Output:
	// Slices share backing arrays. -> Correct
	// Pick the even number. -> Correct
	// The exam was fair. -> Correct
}
