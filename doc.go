// Package etudes is a collection of small, self-contained programming
// exercises, each living in its own package with no cross-imports.
//
// The centerpiece is combinations: a bidirectional cursor that walks every
// k-combination of an alphabetic string in lexicographic order, rolling
// across combination lengths without ever materializing the combination
// space.
//
// The remaining packages are independent companion exercises:
//
//	bst/          — generic binary search tree with the classic traversals
//	polynomial/   — sparse integer polynomial: parse, add, evaluate
//	sentence/     — linked word/punctuation sentence model
//	questions/    — questionnaire hierarchy with a fixed question ordering
//	tictactoe/    — game model plus a line-oriented console controller
//	transmission/ — speed-threshold automatic gearbox state machine
//	weather/      — Stevenson-screen reading with derived measures
//
// Every package follows the same conventions: sentinel errors checked with
// errors.Is, functional options where a constructor has optional knobs, and
// runnable Example functions alongside the unit tests.
//
//	go get github.com/maravek/etudes/combinations
package etudes
