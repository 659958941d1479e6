// Package sentence models a sentence as a linked sequence of word and
// punctuation nodes.
//
// What:
//
//   - Build assembles a Sentence from Word and Punct parts; Empty is the
//     sentence with no nodes.
//   - Words counts word nodes only; LongestWord returns the earliest word
//     of maximal length, or "" for a sentence without words.
//   - Merge concatenates two sentences into a new one; both inputs are
//     deep-copied, so sentences behave as immutable values. Clone is the
//     one-sided deep copy.
//   - String joins words with single spaces and attaches punctuation
//     directly to the preceding text; a word after punctuation starts with
//     a space again.
//   - Equal compares node kinds and texts position by position.
//
// A Sentence holds no resources and the zero-value *Sentence from Empty()
// is fully usable.
package sentence
