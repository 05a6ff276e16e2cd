// Package flatten walks nested statute documents (law > part > subpart >
// chapter > article) and emits flat clause records with full lineage.
package flatten

import (
	"encoding/json"
	"fmt"

	"github.com/lawkit/fatiao/internal/models"
	"go.uber.org/zap"
)

// Placeholder titles for partially well-formed documents. Legal source
// documents are scraped and frequently incomplete; a missing title is
// recovered locally rather than rejecting the document.
const (
	PlaceholderLawTitle     = "未知法律"
	PlaceholderPartTitle    = "未知编"
	PlaceholderChapterTitle = "未知章节"
)

// LawDocument is the ingestion format for one statute.
type LawDocument struct {
	Title string `json:"title"`
	Parts []Part `json:"parts"`
}

// Part has either chapters directly or named subparts containing chapters.
type Part struct {
	PartTitle string    `json:"part_title"`
	Chapters  []Chapter `json:"chapters,omitempty"`
	Subparts  []Subpart `json:"subparts,omitempty"`
}

// Subpart is a named division between part and chapter.
type Subpart struct {
	SubpartTitle string    `json:"subpart_title"`
	Chapters     []Chapter `json:"chapters"`
}

// Chapter holds an ordered sequence of articles.
type Chapter struct {
	ChapterTitle string    `json:"chapter_title"`
	Articles     []Article `json:"articles"`
}

// Article is one numbered statute article.
type Article struct {
	ArticleNo      string `json:"article_no"`
	ArticleContent string `json:"article_content"`
}

// ParseDocument decodes a statute document from JSON.
func ParseDocument(data []byte) (*LawDocument, error) {
	var doc LawDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse law document: %w", err)
	}
	return &doc, nil
}

// Flattener converts nested statute documents into flat clause sequences.
type Flattener struct {
	logger *zap.Logger // optional; when set, logs recovered titles and dropped articles
}

// FlattenerOption configures a Flattener.
type FlattenerOption func(*Flattener)

// WithLogger sets a logger for debug output.
func WithLogger(l *zap.Logger) FlattenerOption {
	return func(f *Flattener) { f.logger = l }
}

// NewFlattener creates a flattener.
func NewFlattener(opts ...FlattenerOption) *Flattener {
	f := &Flattener{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Flatten emits one clause per content-bearing article, in document-traversal
// order, with lineage fields populated from whichever ancestors exist.
// SubpartTitle is empty when a part has no subparts. Articles whose content is
// empty after normalization are dropped; empty parts and chapters are skipped
// silently. VectorIndex positions continue from startIndex so multiple
// documents can share one corpus.
func (f *Flattener) Flatten(doc *LawDocument, startIndex int) []*models.Clause {
	lawTitle := f.title(Normalize(doc.Title), PlaceholderLawTitle, "law")
	clauses := make([]*models.Clause, 0)
	next := startIndex

	for _, part := range doc.Parts {
		partTitle := f.title(Normalize(part.PartTitle), PlaceholderPartTitle, "part")

		for _, chapter := range part.Chapters {
			clauses = f.appendChapter(clauses, &next, lawTitle, partTitle, "", chapter)
		}
		for _, subpart := range part.Subparts {
			subpartTitle := Normalize(subpart.SubpartTitle)
			for _, chapter := range subpart.Chapters {
				clauses = f.appendChapter(clauses, &next, lawTitle, partTitle, subpartTitle, chapter)
			}
		}
	}
	return clauses
}

func (f *Flattener) appendChapter(clauses []*models.Clause, next *int, lawTitle, partTitle, subpartTitle string, chapter Chapter) []*models.Clause {
	chapterTitle := f.title(Normalize(chapter.ChapterTitle), PlaceholderChapterTitle, "chapter")
	for _, article := range chapter.Articles {
		content := Normalize(article.ArticleContent)
		if content == "" {
			if f.logger != nil {
				f.logger.Debug("dropping empty article", zap.String("article_no", article.ArticleNo), zap.String("chapter", chapterTitle))
			}
			continue
		}
		clauses = append(clauses, &models.Clause{
			LawTitle:       lawTitle,
			PartTitle:      partTitle,
			SubpartTitle:   subpartTitle,
			ChapterTitle:   chapterTitle,
			ArticleNo:      Normalize(article.ArticleNo),
			ArticleContent: content,
			VectorIndex:    *next,
		})
		*next++
	}
	return clauses
}

// title recovers a missing title with its placeholder. Recovered locally,
// logged, never propagated as an error.
func (f *Flattener) title(s, placeholder, level string) string {
	if s != "" {
		return s
	}
	if f.logger != nil {
		f.logger.Warn("missing title, using placeholder", zap.String("level", level), zap.String("placeholder", placeholder))
	}
	return placeholder
}
