package models

import "time"

// QueryType is the rule-derived category of a legal question.
type QueryType string

const (
	QueryTypeDefinition  QueryType = "definition"
	QueryTypeFeasibility QueryType = "feasibility"
	QueryTypeLiability   QueryType = "liability"
	QueryTypeProcedure   QueryType = "procedure"
	QueryTypeGeneral     QueryType = "general"
)

// Intent is the coarse user intent: free-form consultation or document drafting.
type Intent string

const (
	IntentChat     Intent = "chat"
	IntentGenerate Intent = "generate"
	IntentFAQ      Intent = "faq"
)

// Strategy is the Dispatcher's terminal decision for a question.
// Exactly one strategy is chosen per question; FAQ match outranks
// generation intent, which outranks the default retrieval path.
type Strategy string

const (
	StrategyFAQAnswer     Strategy = "FAQ_ANSWER"
	StrategyDocument      Strategy = "DOCUMENT_STRATEGY"
	StrategyRetrievalChat Strategy = "RETRIEVAL_CHAT"
)

// ClassificationResult is derived purely from the question string.
type ClassificationResult struct {
	QueryType QueryType `json:"query_type"`
	Intent    Intent    `json:"intent"`
	// MatchedKeywords are legal-vocabulary terms found in the question.
	MatchedKeywords []string `json:"matched_keywords,omitempty"`
}

// RoutingDecision is the externally visible routing artifact: the chosen
// strategy plus everything the excluded generation layer needs.
type RoutingDecision struct {
	Strategy  Strategy  `json:"strategy"`
	QueryType QueryType `json:"query_type"`
	// MatchedFAQ is the FAQ key that short-circuited retrieval, empty otherwise.
	MatchedFAQ string `json:"matched_faq,omitempty"`
	// Answer is the canned FAQ text or a generated document template body.
	// Empty for RETRIEVAL_CHAT, where the generation layer composes the prose.
	Answer string `json:"answer,omitempty"`
	// ContractType names the matched document template (DOCUMENT_STRATEGY only).
	ContractType string          `json:"contract_type,omitempty"`
	Results      []*SearchResult `json:"results,omitempty"`
	Confidence   float64         `json:"confidence"`
	Suggestions  []string        `json:"suggestions,omitempty"`
}

// GenerationPayload is the structured handoff to the answer-generation layer.
type GenerationPayload struct {
	Question      string         `json:"question"`
	QueryType     QueryType      `json:"query_type"`
	MatchedFAQ    string         `json:"matched_faq,omitempty"`
	RankedClauses []RankedClause `json:"ranked_clauses"`
	Confidence    float64        `json:"confidence"`
	Suggestions   []string       `json:"suggestions,omitempty"`
	Strategy      Strategy       `json:"strategy"`
}

// Payload flattens the decision into the generation-layer handoff format.
func (d *RoutingDecision) Payload(question string) *GenerationPayload {
	ranked := make([]RankedClause, 0, len(d.Results))
	for _, r := range d.Results {
		ranked = append(ranked, RankedClause{
			ArticleNo:      r.Clause.ArticleNo,
			ArticleContent: r.Clause.ArticleContent,
			ChapterTitle:   r.Clause.ChapterTitle,
			PartTitle:      r.Clause.PartTitle,
			Score:          r.Score,
		})
	}
	return &GenerationPayload{
		Question:      question,
		QueryType:     d.QueryType,
		MatchedFAQ:    d.MatchedFAQ,
		RankedClauses: ranked,
		Confidence:    d.Confidence,
		Suggestions:   d.Suggestions,
		Strategy:      d.Strategy,
	}
}

// HistoryEntry is one prior question/answer pair in a conversation. The
// retrieval core is stateless; callers own and pass the bounded history.
type HistoryEntry struct {
	SessionID string    `json:"session_id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Strategy  Strategy  `json:"strategy"`
	CreatedAt time.Time `json:"created_at"`
}
