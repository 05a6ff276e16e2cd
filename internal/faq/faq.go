// Package faq provides the fixed keyword-to-canned-answer table that
// short-circuits retrieval for common legal questions.
package faq

import "strings"

// MatchConfidence is the fixed confidence attached to an FAQ answer.
const MatchConfidence = 0.95

// Suggestion attached to every FAQ answer.
const Suggestion = "本答复基于法律常识，如涉及个案请咨询律师"

// Entry is one keyword-to-answer pair.
type Entry struct {
	Key    string
	Answer string
}

// Table is an immutable ordered mapping of FAQ keys to canned answers.
// Iteration order is the declaration order, so first-match semantics are
// deterministic.
type Table struct {
	entries []Entry
}

// NewTable creates a table over the given entries. The slice is not copied;
// callers must not mutate it afterwards.
func NewTable(entries []Entry) *Table {
	return &Table{entries: entries}
}

// Default returns the built-in FAQ table.
func Default() *Table {
	return NewTable(defaultEntries)
}

// Match returns the first entry whose key the question contains.
// Matching is case-sensitive substring containment in declaration order.
func (t *Table) Match(question string) (Entry, bool) {
	for _, e := range t.entries {
		if strings.Contains(question, e.Key) {
			return e, true
		}
	}
	return Entry{}, false
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}
