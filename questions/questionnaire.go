package questions

import "sort"

// Questionnaire is an ordered list of questions. The zero value is empty
// and ready to use.
type Questionnaire struct {
	questions []Question
}

// Add appends a question.
func (q *Questionnaire) Add(question Question) {
	q.questions = append(q.questions, question)
}

// Len returns the number of questions.
func (q *Questionnaire) Len() int {
	return len(q.questions)
}

// Questions returns a copy of the question list in its current order.
func (q *Questionnaire) Questions() []Question {
	return append([]Question(nil), q.questions...)
}

// Sort orders the questions by kind — TrueFalse, MultipleChoice,
// MultipleSelect, Likert — breaking ties lexicographically by text.
func (q *Questionnaire) Sort() {
	sort.SliceStable(q.questions, func(i, j int) bool {
		a, b := q.questions[i], q.questions[j]
		if a.kind() != b.kind() {
			return a.kind() < b.kind()
		}

		return a.Text() < b.Text()
	})
}

// Evaluate grades one answer per question, in order, returning Correct or
// Incorrect per slot. The answer count must match the question count.
func (q *Questionnaire) Evaluate(answers []string) ([]string, error) {
	if len(answers) != len(q.questions) {
		return nil, ErrAnswerCount
	}

	results := make([]string, len(answers))
	for i, question := range q.questions {
		results[i] = question.Answer(answers[i])
	}

	return results, nil
}
