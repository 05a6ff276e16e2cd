package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lawkit/fatiao/internal/models"
)

func sampleDecision() *models.RoutingDecision {
	return &models.RoutingDecision{
		Strategy:   models.StrategyRetrievalChat,
		QueryType:  models.QueryTypeDefinition,
		Confidence: 0.9,
		Results: []*models.SearchResult{
			{
				Clause: &models.Clause{
					LawTitle:       "中华人民共和国民法典",
					PartTitle:      "第二编 物权",
					ChapterTitle:   "第十四章 居住权",
					ArticleNo:      "第三百六十六条",
					ArticleContent: "居住权人有权按照合同约定，对他人的住宅享有占有、使用的用益物权。",
				},
				Score: 0.92,
				Rank:  1,
			},
		},
		Suggestions: []string{"找到了高度相关的法条，建议仔细阅读"},
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("json"); err != nil || f != OutputJSON {
		t.Errorf("ParseFormat(json) = %v, %v", f, err)
	}
	if f, err := ParseFormat(""); err != nil || f != OutputText {
		t.Errorf("ParseFormat(empty) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestWriteDecision_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDecision(&buf, sampleDecision(), OutputText); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"RETRIEVAL_CHAT", "0.90", "第三百六十六条", "Rank: 1", "提示:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteDecision_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDecision(&buf, sampleDecision(), OutputJSON); err != nil {
		t.Fatal(err)
	}
	var decoded models.RoutingDecision
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Strategy != models.StrategyRetrievalChat {
		t.Errorf("strategy = %s", decoded.Strategy)
	}
	if len(decoded.Results) != 1 {
		t.Errorf("results = %d", len(decoded.Results))
	}
}

func TestWriteDecision_FAQText(t *testing.T) {
	d := &models.RoutingDecision{
		Strategy:   models.StrategyFAQAnswer,
		QueryType:  models.QueryTypeGeneral,
		MatchedFAQ: "诉讼时效",
		Answer:     "普通诉讼时效为3年。",
		Confidence: 0.95,
	}
	var buf bytes.Buffer
	if err := WriteDecision(&buf, d, OutputText); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "诉讼时效") || !strings.Contains(out, "普通诉讼时效为3年。") {
		t.Errorf("output = %s", out)
	}
}

func TestWriteResults_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResults(&buf, nil, OutputText); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No matching clauses") {
		t.Errorf("output = %s", buf.String())
	}
}
