package models

// SearchResult is a single retrieval hit: a clause with its cosine similarity
// score and 1-based rank. Constructed per query, never persisted.
type SearchResult struct {
	Clause *Clause `json:"clause"`
	// Score is the inner product of normalized vectors, i.e. cosine
	// similarity in [-1, 1].
	Score float64 `json:"score"`
	Rank  int     `json:"rank"`
}

// RankedClause is the flattened clause record handed to the answer-generation
// layer. It carries only what that layer needs to cite the clause.
type RankedClause struct {
	ArticleNo      string  `json:"article_no"`
	ArticleContent string  `json:"article_content"`
	ChapterTitle   string  `json:"chapter_title"`
	PartTitle      string  `json:"part_title"`
	Score          float64 `json:"score"`
}
