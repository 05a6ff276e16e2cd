// Package models defines core data structures for clauses, classification,
// retrieval results, and routing decisions.
package models

import "strings"

// Clause is the atomic retrievable unit: one article of a statute with its
// full lineage. Fields are immutable once the corpus is built; the corpus is
// rebuilt from source documents rather than mutated in place.
type Clause struct {
	LawTitle       string `json:"law_title"`
	PartTitle      string `json:"part_title"`
	SubpartTitle   string `json:"subpart_title"`
	ChapterTitle   string `json:"chapter_title"`
	ArticleNo      string `json:"article_no"`
	ArticleContent string `json:"article_content"`
	// VectorIndex is the clause's position in the embedding index, assigned
	// in document-traversal order at build time. Unique per clause, never reused.
	VectorIndex int `json:"vector_index"`
}

// CompositeText returns the text that is embedded: lineage titles, article
// number, and content joined by spaces. Empty lineage fields are skipped.
// It is used only for embedding and is never shown verbatim as content.
func (c *Clause) CompositeText() string {
	parts := make([]string, 0, 6)
	for _, s := range []string{c.LawTitle, c.PartTitle, c.SubpartTitle, c.ChapterTitle, c.ArticleNo, c.ArticleContent} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// Lineage returns a human-readable "law > part > chapter" path for display.
func (c *Clause) Lineage() string {
	parts := make([]string, 0, 4)
	for _, s := range []string{c.LawTitle, c.PartTitle, c.SubpartTitle, c.ChapterTitle} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " > ")
}
