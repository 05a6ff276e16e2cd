// Package confidence maps retrieval results to a discrete confidence band
// and user-facing suggestions. The banding is a design contract: callers and
// tests depend on these exact thresholds.
package confidence

import "github.com/lawkit/fatiao/internal/models"

// Suggestion texts per band and query type.
const (
	suggestHigh      = "找到了高度相关的法条，建议仔细阅读"
	suggestMedium    = "找到了相关的法条，建议结合具体情况分析"
	suggestLow       = "相关度一般，建议咨询专业律师"
	suggestNoResults = "建议重新描述问题或使用更具体的法律术语"
	suggestProcedure = "对于具体程序问题，建议咨询当地相关部门"
	suggestLiability = "具体责任认定需要结合实际案件情况"
)

// Estimate returns the confidence band for a ranked result set, a pure
// function of the top (rank 1) score. An empty result set has confidence 0.
func Estimate(results []*models.SearchResult) float64 {
	if len(results) == 0 {
		return 0.0
	}
	top := results[0].Score
	switch {
	case top > 0.8:
		return 0.9
	case top > 0.6:
		return 0.7
	case top > 0.4:
		return 0.5
	default:
		return 0.3
	}
}

// Suggestions derives the user-facing suggestion list from the confidence
// band and query type.
func Suggestions(conf float64, resultCount int, queryType models.QueryType) []string {
	if resultCount == 0 {
		return []string{suggestNoResults}
	}
	var suggestions []string
	switch {
	case conf >= 0.8:
		suggestions = append(suggestions, suggestHigh)
	case conf >= 0.6:
		suggestions = append(suggestions, suggestMedium)
	default:
		suggestions = append(suggestions, suggestLow)
	}
	switch queryType {
	case models.QueryTypeProcedure:
		suggestions = append(suggestions, suggestProcedure)
	case models.QueryTypeLiability:
		suggestions = append(suggestions, suggestLiability)
	}
	return suggestions
}

// Assess combines Estimate and Suggestions for a result set.
func Assess(results []*models.SearchResult, queryType models.QueryType) (float64, []string) {
	conf := Estimate(results)
	return conf, Suggestions(conf, len(results), queryType)
}
