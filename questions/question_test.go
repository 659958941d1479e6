package questions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maravek/etudes/questions"
)

// TestTrueFalse_Validation accepts only "True" or "False" as the key.
func TestTrueFalse_Validation(t *testing.T) {
	_, err := questions.NewTrueFalse("", "True")
	assert.ErrorIs(t, err, questions.ErrBadQuestion, "empty text")

	_, err = questions.NewTrueFalse("The sky is blue.", "blue")
	assert.ErrorIs(t, err, questions.ErrBadQuestion, "non-boolean key")
}

// TestTrueFalse_Answer grades case-insensitively.
func TestTrueFalse_Answer(t *testing.T) {
	q, err := questions.NewTrueFalse("The sky is blue.", "True")
	require.NoError(t, err)

	assert.Equal(t, questions.Correct, q.Answer("True"))
	assert.Equal(t, questions.Correct, q.Answer("true"))
	assert.Equal(t, questions.Correct, q.Answer("TRUE"))
	assert.Equal(t, questions.Incorrect, q.Answer("False"))
	assert.Equal(t, questions.Incorrect, q.Answer("yes"))
}

// TestMultipleChoice_Validation enforces the option count and a correct
// answer that selects one of them.
func TestMultipleChoice_Validation(t *testing.T) {
	_, err := questions.NewMultipleChoice("Pick one.", "1", "a", "b")
	assert.ErrorIs(t, err, questions.ErrBadQuestion, "too few options")

	_, err = questions.NewMultipleChoice("Pick one.", "1",
		"a", "b", "c", "d", "e", "f", "g", "h", "i")
	assert.ErrorIs(t, err, questions.ErrBadQuestion, "too many options")

	_, err = questions.NewMultipleChoice("Pick one.", "4", "a", "b", "c")
	assert.ErrorIs(t, err, questions.ErrBadQuestion, "correct answer beyond the options")

	_, err = questions.NewMultipleChoice("Pick one.", "first", "a", "b", "c")
	assert.ErrorIs(t, err, questions.ErrBadQuestion, "non-numeric correct answer")
}

// TestMultipleChoice_SplitsSingleOptionString treats one argument as a
// space-separated option list.
func TestMultipleChoice_SplitsSingleOptionString(t *testing.T) {
	q, err := questions.NewMultipleChoice("Pick the prime.", "2", "four five six")
	require.NoError(t, err)

	assert.Equal(t, []string{"four", "five", "six"}, q.Options())
	assert.Equal(t, questions.Correct, q.Answer("2"))
	assert.Equal(t, questions.Incorrect, q.Answer("1"))
	assert.Equal(t, questions.Incorrect, q.Answer("five"), "answers are option numbers")
}

// TestMultipleSelect_Answer requires exactly the correct set, any order.
func TestMultipleSelect_Answer(t *testing.T) {
	q, err := questions.NewMultipleSelect("Select the even numbers.", "1 3",
		"two", "seven", "eight", "nine")
	require.NoError(t, err)

	assert.Equal(t, questions.Correct, q.Answer("1 3"))
	assert.Equal(t, questions.Correct, q.Answer("3 1"), "order does not matter")
	assert.Equal(t, questions.Incorrect, q.Answer("1"), "subset is not enough")
	assert.Equal(t, questions.Incorrect, q.Answer("1 3 4"), "superset is wrong")
	assert.Equal(t, questions.Incorrect, q.Answer("1 1"), "repeats are wrong")
	assert.Equal(t, questions.Incorrect, q.Answer(""))
}

// TestMultipleSelect_Validation rejects selections outside the options.
func TestMultipleSelect_Validation(t *testing.T) {
	_, err := questions.NewMultipleSelect("Select.", "1 5", "a", "b", "c")
	assert.ErrorIs(t, err, questions.ErrBadQuestion, "selection beyond the options")

	_, err = questions.NewMultipleSelect("Select.", "", "a", "b", "c")
	assert.ErrorIs(t, err, questions.ErrBadQuestion, "empty selection")
}

// TestLikert_Answer accepts every scale value and nothing else.
func TestLikert_Answer(t *testing.T) {
	q, err := questions.NewLikert("I enjoy writing tests.")
	require.NoError(t, err)

	for _, v := range []string{"1", "2", "3", "4", "5"} {
		assert.Equal(t, questions.Correct, q.Answer(v))
	}
	assert.Equal(t, questions.Incorrect, q.Answer("6"))
	assert.Equal(t, questions.Incorrect, q.Answer("agree"))
	assert.Equal(t, questions.Incorrect, q.Answer(""))
}
