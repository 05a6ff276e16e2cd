package dispatch

import (
	"context"
	"strings"
	"testing"

	"github.com/lawkit/fatiao/internal/embedding"
	"github.com/lawkit/fatiao/internal/faq"
	"github.com/lawkit/fatiao/internal/index"
	"github.com/lawkit/fatiao/internal/models"
	"github.com/lawkit/fatiao/internal/retrieval"
)

func buildRetriever(t *testing.T, clauses []*models.Clause) *retrieval.Retriever {
	t.Helper()
	emb := embedding.NewMockEmbedder(64)
	ix, err := index.Build(context.Background(), clauses, emb)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return retrieval.New(index.NewHandle(ix), emb)
}

func testClauses() []*models.Clause {
	return []*models.Clause{
		{LawTitle: "中华人民共和国民法典", PartTitle: "第三编 合同", ChapterTitle: "第十四章 租赁合同", ArticleNo: "第七百零三条", ArticleContent: "租赁合同是出租人将租赁物交付承租人使用、收益，承租人支付租金的合同。"},
		{LawTitle: "中华人民共和国民法典", PartTitle: "第一编 总则", ChapterTitle: "第九章 诉讼时效", ArticleNo: "第一百八十八条", ArticleContent: "向人民法院请求保护民事权利的诉讼时效期间为三年。"},
		{LawTitle: "中华人民共和国民法典", PartTitle: "第七编 侵权责任", ChapterTitle: "第二章 损害赔偿", ArticleNo: "第一千一百七十九条", ArticleContent: "侵害他人造成人身损害的，应当赔偿医疗费、护理费等合理费用。"},
	}
}

func TestRoute_FAQMatch(t *testing.T) {
	// The retriever is nil on purpose: an FAQ hit must never touch retrieval,
	// so a nil dereference here would fail the test loudly.
	d := New(faq.Default(), nil)
	decision, err := d.Route(context.Background(), "诉讼时效是多长时间？")
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if decision.Strategy != models.StrategyFAQAnswer {
		t.Fatalf("strategy = %s, want FAQ_ANSWER", decision.Strategy)
	}
	if decision.MatchedFAQ != "诉讼时效" {
		t.Errorf("matched FAQ = %q", decision.MatchedFAQ)
	}
	if decision.Confidence != faq.MatchConfidence {
		t.Errorf("confidence = %v, want %v", decision.Confidence, faq.MatchConfidence)
	}
	if decision.Answer == "" {
		t.Error("empty canned answer")
	}
	if len(decision.Results) != 0 {
		t.Errorf("FAQ answer carries %d retrieval results", len(decision.Results))
	}
}

func TestRoute_FAQBeatsGeneration(t *testing.T) {
	// A question containing both an FAQ key and generation vocabulary routes
	// to the canned answer, not a document template.
	d := New(faq.Default(), nil)
	decision, err := d.Route(context.Background(), "帮我起草一份关于诉讼时效的合同条款")
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if decision.Strategy != models.StrategyFAQAnswer {
		t.Errorf("strategy = %s, want FAQ_ANSWER", decision.Strategy)
	}
	if decision.MatchedFAQ != "诉讼时效" {
		t.Errorf("matched FAQ = %q", decision.MatchedFAQ)
	}
}

func TestRoute_DocumentStrategy(t *testing.T) {
	d := New(faq.NewTable(nil), nil)
	decision, err := d.Route(context.Background(), "帮我拟定一份房屋租赁合同")
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if decision.Strategy != models.StrategyDocument {
		t.Fatalf("strategy = %s, want DOCUMENT_STRATEGY", decision.Strategy)
	}
	if decision.ContractType != "租赁合同" {
		t.Errorf("contract type = %q", decision.ContractType)
	}
	if !strings.Contains(decision.Answer, "租赁合同") {
		t.Error("template body does not mention the contract type")
	}
	if decision.Confidence != templateConfidence {
		t.Errorf("confidence = %v, want %v", decision.Confidence, templateConfidence)
	}
}

func TestRoute_DocumentUnknownType(t *testing.T) {
	d := New(faq.NewTable(nil), nil)
	decision, err := d.Route(context.Background(), "帮我起草一份股权转让协议")
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if decision.Strategy != models.StrategyDocument {
		t.Fatalf("strategy = %s, want DOCUMENT_STRATEGY", decision.Strategy)
	}
	if decision.ContractType != "" {
		t.Errorf("contract type = %q, want empty", decision.ContractType)
	}
	if decision.Answer != noTemplateAnswer {
		t.Errorf("answer = %q", decision.Answer)
	}
}

func TestRoute_RetrievalChat(t *testing.T) {
	clauses := testClauses()
	d := New(faq.NewTable(nil), buildRetriever(t, clauses), WithRetrievalParams(3, 0.0))
	decision, err := d.Route(context.Background(), clauses[0].CompositeText())
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if decision.Strategy != models.StrategyRetrievalChat {
		t.Fatalf("strategy = %s, want RETRIEVAL_CHAT", decision.Strategy)
	}
	if len(decision.Results) == 0 {
		t.Fatal("no retrieval results")
	}
	if decision.Results[0].Rank != 1 {
		t.Errorf("top rank = %d", decision.Results[0].Rank)
	}
	// An exact composite-text query scores ~1.0, so the band must be 0.9.
	if decision.Confidence != 0.9 {
		t.Errorf("confidence = %v, want 0.9", decision.Confidence)
	}
	if len(decision.Suggestions) == 0 {
		t.Error("no suggestions")
	}
}

func TestRoute_RetrievalChatEmptyIndex(t *testing.T) {
	d := New(faq.NewTable(nil), buildRetriever(t, nil))
	decision, err := d.Route(context.Background(), "民法典关于居住权的规定")
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if decision.Strategy != models.StrategyRetrievalChat {
		t.Fatalf("strategy = %s", decision.Strategy)
	}
	if decision.Confidence != 0.0 {
		t.Errorf("confidence = %v, want 0", decision.Confidence)
	}
	if len(decision.Suggestions) != 1 {
		t.Fatalf("suggestions = %v", decision.Suggestions)
	}
}

func TestTemplateRegistry_Match(t *testing.T) {
	r := NewTemplateRegistry()
	for _, typ := range []string{"租赁合同", "买卖合同", "借款合同", "劳动合同", "服务合同"} {
		tpl, ok := r.Match("请生成" + typ)
		if !ok {
			t.Errorf("no template for %s", typ)
			continue
		}
		if tpl.ContractType != typ {
			t.Errorf("matched %q for %s", tpl.ContractType, typ)
		}
		if tpl.Body == "" {
			t.Errorf("empty body for %s", typ)
		}
	}
	if _, ok := r.Match("保密协议"); ok {
		t.Error("unexpected template match")
	}
}

func TestRoutingDecision_Payload(t *testing.T) {
	clauses := testClauses()
	d := New(faq.NewTable(nil), buildRetriever(t, clauses), WithRetrievalParams(3, 0.0))
	question := clauses[1].CompositeText()
	decision, err := d.Route(context.Background(), question)
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	payload := decision.Payload(question)
	if payload.Question != question {
		t.Errorf("payload question = %q", payload.Question)
	}
	if len(payload.RankedClauses) != len(decision.Results) {
		t.Errorf("ranked clauses = %d, results = %d", len(payload.RankedClauses), len(decision.Results))
	}
	if payload.Strategy != models.StrategyRetrievalChat {
		t.Errorf("payload strategy = %s", payload.Strategy)
	}
}
