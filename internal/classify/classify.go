// Package classify implements deterministic, rule-based classification of
// legal questions into a query type and an intent. Rules are ordered
// case-sensitive substring checks; the first match wins.
package classify

import (
	"strings"

	"github.com/lawkit/fatiao/internal/faq"
	"github.com/lawkit/fatiao/internal/models"
)

// Marker vocabularies checked in order. Definition markers are checked first,
// so "如何承担责任" classifies as definition, not liability.
var (
	definitionMarkers  = []string{"什么", "如何", "怎么", "怎样"}
	feasibilityMarkers = []string{"能否", "可以", "是否", "能不能"}
	liabilityMarkers   = []string{"责任", "赔偿", "处罚", "后果"}
	procedureMarkers   = []string{"流程", "程序", "步骤", "手续"}
)

// generateMarkers signal a document-drafting request.
var generateMarkers = []string{"制作", "起草", "拟定", "编写", "撰写", "合同模板", "合同范本", "生成", "创建"}

// Classifier derives query type and intent from the question text alone.
// Classification is a total function: it cannot fail.
type Classifier struct {
	faqs *faq.Table
}

// New creates a classifier that consults faqs for the FAQ intent. A nil
// table disables FAQ detection.
func New(faqs *faq.Table) *Classifier {
	return &Classifier{faqs: faqs}
}

// Classify returns the query type, intent, and matched legal keywords for a
// question.
func (c *Classifier) Classify(question string) models.ClassificationResult {
	return models.ClassificationResult{
		QueryType:       c.queryType(question),
		Intent:          c.intent(question),
		MatchedKeywords: ExtractKeywords(question),
	}
}

func (c *Classifier) queryType(question string) models.QueryType {
	switch {
	case containsAny(question, definitionMarkers):
		return models.QueryTypeDefinition
	case containsAny(question, feasibilityMarkers):
		return models.QueryTypeFeasibility
	case containsAny(question, liabilityMarkers):
		return models.QueryTypeLiability
	case containsAny(question, procedureMarkers):
		return models.QueryTypeProcedure
	default:
		return models.QueryTypeGeneral
	}
}

func (c *Classifier) intent(question string) models.Intent {
	if containsAny(question, generateMarkers) {
		return models.IntentGenerate
	}
	if c.faqs != nil {
		if _, ok := c.faqs.Match(question); ok {
			return models.IntentFAQ
		}
	}
	return models.IntentChat
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
