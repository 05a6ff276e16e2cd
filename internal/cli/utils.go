// Package cli provides CLI output utilities for fatiao.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lawkit/fatiao/internal/models"
	"github.com/lawkit/fatiao/pkg/utils"
)

// OutputFormat is the format for command output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// ParseFormat maps a -output flag value to an OutputFormat.
func ParseFormat(s string) (OutputFormat, error) {
	switch s {
	case "text", "":
		return OutputText, nil
	case "json":
		return OutputJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q; use text or json", s)
	}
}

// WriteDecision writes a routing decision to w in the given format.
func WriteDecision(w io.Writer, decision *models.RoutingDecision, format OutputFormat) error {
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(decision)
	}
	writeDecisionText(w, decision)
	return nil
}

func writeDecisionText(w io.Writer, decision *models.RoutingDecision) {
	fmt.Fprintf(w, "\nStrategy:   %s\n", decision.Strategy)
	fmt.Fprintf(w, "Query type: %s\n", decision.QueryType)
	fmt.Fprintf(w, "Confidence: %.2f\n", decision.Confidence)
	if decision.MatchedFAQ != "" {
		fmt.Fprintf(w, "FAQ key:    %s\n", decision.MatchedFAQ)
	}
	if decision.ContractType != "" {
		fmt.Fprintf(w, "Contract:   %s\n", decision.ContractType)
	}
	if decision.Answer != "" {
		fmt.Fprintf(w, "\n%s\n", decision.Answer)
	}
	if len(decision.Results) > 0 {
		fmt.Fprintln(w)
		WriteResultsText(w, decision.Results)
	}
	if len(decision.Suggestions) > 0 {
		fmt.Fprintln(w)
		for _, s := range decision.Suggestions {
			fmt.Fprintf(w, "提示: %s\n", s)
		}
	}
}

// WriteResults writes retrieval results to w in the given format.
func WriteResults(w io.Writer, results []*models.SearchResult, format OutputFormat) error {
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	WriteResultsText(w, results)
	return nil
}

// WriteResultsText writes retrieval results as human-readable text.
func WriteResultsText(w io.Writer, results []*models.SearchResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No matching clauses.")
		return
	}
	for _, r := range results {
		fmt.Fprintf(w, "─────────────────────────────────────────────────────────\n")
		fmt.Fprintf(w, "Rank: %d | Score: %.4f\n", r.Rank, r.Score)
		fmt.Fprintf(w, "%s\n", r.Clause.Lineage())
		fmt.Fprintf(w, "%s %s\n", r.Clause.ArticleNo, utils.Truncate(r.Clause.ArticleContent, 120))
	}
	fmt.Fprintln(w)
}
