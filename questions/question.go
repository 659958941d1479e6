package questions

import (
	"fmt"
	"strconv"
	"strings"
)

// Answer results. Answer never errors: anything that is not the expected
// answer, malformed input included, is Incorrect.
const (
	Correct   = "Correct"
	Incorrect = "Incorrect"
)

// Option count bounds shared by MultipleChoice and MultipleSelect.
const (
	minOptions = 3
	maxOptions = 8
)

// kind fixes the questionnaire sort order.
type kind int

const (
	kindTrueFalse kind = iota
	kindMultipleChoice
	kindMultipleSelect
	kindLikert
)

// Question is one questionnaire entry. The interface is sealed: only the
// four kinds in this package implement it, which is what pins the fixed
// sort order.
type Question interface {
	// Text returns the question text.
	Text() string
	// Answer grades an answer, returning Correct or Incorrect.
	Answer(answer string) string

	kind() kind
}

// TrueFalse is a question answered "True" or "False".
type TrueFalse struct {
	text    string
	correct string
}

// NewTrueFalse validates that correct is "True" or "False".
func NewTrueFalse(text, correct string) (*TrueFalse, error) {
	if err := checkText(text); err != nil {
		return nil, err
	}
	if correct != "True" && correct != "False" {
		return nil, fmt.Errorf("%w: correct answer must be \"True\" or \"False\", got %q",
			ErrBadQuestion, correct)
	}

	return &TrueFalse{text: text, correct: correct}, nil
}

// Text returns the question text.
func (q *TrueFalse) Text() string { return q.text }

// Answer grades without case sensitivity.
func (q *TrueFalse) Answer(answer string) string {
	return grade(strings.EqualFold(answer, q.correct))
}

func (q *TrueFalse) kind() kind { return kindTrueFalse }

// MultipleChoice is a question with one correct option.
type MultipleChoice struct {
	text    string
	correct int
	options []string
}

// NewMultipleChoice validates the option count and that correct names one
// of the options by its 1-based number.
func NewMultipleChoice(text, correct string, options ...string) (*MultipleChoice, error) {
	if err := checkText(text); err != nil {
		return nil, err
	}
	opts, err := checkOptions(options)
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(correct)
	if err != nil || n < 1 || n > len(opts) {
		return nil, fmt.Errorf("%w: correct answer %q does not select one of %d options",
			ErrBadQuestion, correct, len(opts))
	}

	return &MultipleChoice{text: text, correct: n, options: opts}, nil
}

// Text returns the question text.
func (q *MultipleChoice) Text() string { return q.text }

// Options returns a copy of the option list.
func (q *MultipleChoice) Options() []string {
	return append([]string(nil), q.options...)
}

// Answer grades against the correct option number.
func (q *MultipleChoice) Answer(answer string) string {
	n, err := strconv.Atoi(strings.TrimSpace(answer))

	return grade(err == nil && n == q.correct)
}

func (q *MultipleChoice) kind() kind { return kindMultipleChoice }

// MultipleSelect is a question with a set of correct options.
type MultipleSelect struct {
	text    string
	correct map[string]bool
	options []string
}

// NewMultipleSelect validates the option count and parses correct as a
// space-separated set of option numbers.
func NewMultipleSelect(text, correct string, options ...string) (*MultipleSelect, error) {
	if err := checkText(text); err != nil {
		return nil, err
	}
	opts, err := checkOptions(options)
	if err != nil {
		return nil, err
	}

	set := make(map[string]bool)
	for _, field := range strings.Fields(correct) {
		n, convErr := strconv.Atoi(field)
		if convErr != nil || n < 1 || n > len(opts) {
			return nil, fmt.Errorf("%w: correct answer %q does not select options out of %d",
				ErrBadQuestion, correct, len(opts))
		}
		set[field] = true
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("%w: no correct options given", ErrBadQuestion)
	}

	return &MultipleSelect{text: text, correct: set, options: opts}, nil
}

// Text returns the question text.
func (q *MultipleSelect) Text() string { return q.text }

// Options returns a copy of the option list.
func (q *MultipleSelect) Options() []string {
	return append([]string(nil), q.options...)
}

// Answer grades a space-separated selection; it must name exactly the
// correct set, in any order, without repeats.
func (q *MultipleSelect) Answer(answer string) string {
	fields := strings.Fields(answer)
	if len(fields) != len(q.correct) {
		return Incorrect
	}
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if !q.correct[f] || seen[f] {
			return Incorrect
		}
		seen[f] = true
	}

	return Correct
}

func (q *MultipleSelect) kind() kind { return kindMultipleSelect }

// Likert is a 1–5 agreement scale; every scale value is a correct answer.
type Likert struct {
	text string
}

// NewLikert builds a Likert question.
func NewLikert(text string) (*Likert, error) {
	if err := checkText(text); err != nil {
		return nil, err
	}

	return &Likert{text: text}, nil
}

// Text returns the question text.
func (q *Likert) Text() string { return q.text }

// Answer accepts any value on the 1–5 scale.
func (q *Likert) Answer(answer string) string {
	switch strings.TrimSpace(answer) {
	case "1", "2", "3", "4", "5":
		return Correct
	}

	return Incorrect
}

func (q *Likert) kind() kind { return kindLikert }

func checkText(text string) error {
	if text == "" {
		return fmt.Errorf("%w: question text cannot be empty", ErrBadQuestion)
	}

	return nil
}

// checkOptions accepts either one space-separated string or separate
// arguments, and enforces the 3–8 bound.
func checkOptions(options []string) ([]string, error) {
	opts := options
	if len(options) == 1 {
		opts = strings.Fields(options[0])
	}
	if len(opts) < minOptions || len(opts) > maxOptions {
		return nil, fmt.Errorf("%w: need between %d and %d options, got %d",
			ErrBadQuestion, minOptions, maxOptions, len(opts))
	}

	return append([]string(nil), opts...), nil
}

func grade(ok bool) string {
	if ok {
		return Correct
	}

	return Incorrect
}
