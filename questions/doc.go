// Package questions models a questionnaire built from four question kinds.
//
// What:
//
//   - TrueFalse: one correct answer, "True" or "False", compared without
//     case sensitivity.
//   - MultipleChoice: 3–8 options, one correct option number.
//   - MultipleSelect: 3–8 options, a set of correct option numbers; the
//     answer must name exactly that set, in any order.
//   - Likert: a 1–5 agreement scale where every scale value is Correct.
//   - Answer always returns the string Correct or Incorrect, never an
//     error: a malformed answer is simply incorrect.
//   - Questionnaires sort into the fixed kind order TrueFalse,
//     MultipleChoice, MultipleSelect, Likert, with ties broken
//     lexicographically by question text.
//   - LoadYAML builds a questionnaire from a YAML document, so question
//     banks can live in files.
//
// Errors:
//
//   - ErrBadQuestion: empty text, a malformed correct answer, or an option
//     count outside 3–8 at construction (or in a YAML document).
//   - ErrAnswerCount: Evaluate given a different number of answers than
//     there are questions.
package questions
