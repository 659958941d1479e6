package questions

import "errors"

var (
	// ErrBadQuestion indicates invalid construction arguments.
	ErrBadQuestion = errors.New("questions: invalid question")

	// ErrAnswerCount indicates an answer slice whose length does not match
	// the questionnaire.
	ErrAnswerCount = errors.New("questions: answer count does not match question count")
)
