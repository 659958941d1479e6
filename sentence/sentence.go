package sentence

import "strings"

// nodeKind tags a node as carrying a word or a punctuation mark.
type nodeKind int

const (
	wordNode nodeKind = iota
	punctNode
)

type node struct {
	kind nodeKind
	text string
	next *node
}

// Part is one building block of a sentence, created by Word or Punct.
type Part struct {
	kind nodeKind
	text string
}

// Word makes a word part.
func Word(text string) Part {
	return Part{kind: wordNode, text: text}
}

// Punct makes a punctuation part, attached without a leading space when
// rendered.
func Punct(mark string) Part {
	return Part{kind: punctNode, text: mark}
}

// Sentence is a linked sequence of words and punctuation marks. Operations
// never mutate a Sentence after construction.
type Sentence struct {
	head *node
}

// Empty returns the sentence with no nodes.
func Empty() *Sentence {
	return &Sentence{}
}

// Build assembles a sentence from parts in order.
func Build(parts ...Part) *Sentence {
	s := Empty()
	tail := &s.head
	for _, p := range parts {
		n := &node{kind: p.kind, text: p.text}
		*tail = n
		tail = &n.next
	}

	return s
}

// Words counts the word nodes; punctuation does not count.
func (s *Sentence) Words() int {
	count := 0
	for n := s.head; n != nil; n = n.next {
		if n.kind == wordNode {
			count++
		}
	}

	return count
}

// LongestWord returns the earliest word of maximal length, or "" when the
// sentence has no words.
func (s *Sentence) LongestWord() string {
	best := ""
	for n := s.head; n != nil; n = n.next {
		if n.kind == wordNode && len(n.text) > len(best) {
			best = n.text
		}
	}

	return best
}

// Clone returns a deep copy.
func (s *Sentence) Clone() *Sentence {
	out := Empty()
	tail := &out.head
	for n := s.head; n != nil; n = n.next {
		cp := &node{kind: n.kind, text: n.text}
		*tail = cp
		tail = &cp.next
	}

	return out
}

// Merge returns a new sentence holding s followed by other. Both inputs
// are deep-copied and remain usable on their own.
func (s *Sentence) Merge(other *Sentence) *Sentence {
	out := s.Clone()
	rest := other.Clone()

	if out.head == nil {
		return rest
	}
	tail := out.head
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = rest.head

	return out
}

// Equal compares node kinds and texts position by position.
func (s *Sentence) Equal(other *Sentence) bool {
	if other == nil {
		return false
	}
	a, b := s.head, other.head
	for a != nil && b != nil {
		if a.kind != b.kind || a.text != b.text {
			return false
		}
		a, b = a.next, b.next
	}

	return a == nil && b == nil
}

// String renders the sentence: words separated by single spaces,
// punctuation attached to the preceding text, and a space again before a
// word that follows punctuation.
func (s *Sentence) String() string {
	var b strings.Builder
	for n := s.head; n != nil; n = n.next {
		if n.kind == wordNode && b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(n.text)
	}

	return b.String()
}
