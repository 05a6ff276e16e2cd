package flatten

import (
	"reflect"
	"testing"
)

func simpleDoc() *LawDocument {
	return &LawDocument{
		Title: "中华人民共和国民法典",
		Parts: []Part{{
			PartTitle: "第一编 总则",
			Chapters: []Chapter{{
				ChapterTitle: "第一章 基本规定",
				Articles: []Article{
					{ArticleNo: "第一条", ArticleContent: "内容一"},
					{ArticleNo: "第二条", ArticleContent: "内容二"},
				},
			}},
		}},
	}
}

func TestFlatten_SinglePartNoSubparts(t *testing.T) {
	clauses := NewFlattener().Flatten(simpleDoc(), 0)
	if len(clauses) != 2 {
		t.Fatalf("expected 2 clauses, got %d", len(clauses))
	}
	for i, c := range clauses {
		if c.SubpartTitle != "" {
			t.Errorf("clause %d: subpart_title = %q, want empty", i, c.SubpartTitle)
		}
		if c.VectorIndex != i {
			t.Errorf("clause %d: vector_index = %d", i, c.VectorIndex)
		}
	}
	if clauses[0].ArticleNo != "第一条" || clauses[0].ArticleContent != "内容一" {
		t.Errorf("first clause = %+v", clauses[0])
	}
	if clauses[1].ArticleNo != "第二条" || clauses[1].ArticleContent != "内容二" {
		t.Errorf("second clause = %+v", clauses[1])
	}
}

func TestFlatten_Subparts(t *testing.T) {
	doc := &LawDocument{
		Title: "某法",
		Parts: []Part{{
			PartTitle: "第二编 物权",
			Subparts: []Subpart{{
				SubpartTitle: "第一分编 通则",
				Chapters: []Chapter{{
					ChapterTitle: "第一章 一般规定",
					Articles:     []Article{{ArticleNo: "第二百零五条", ArticleContent: "本编调整因物的归属和利用产生的民事关系。"}},
				}},
			}},
		}},
	}
	clauses := NewFlattener().Flatten(doc, 0)
	if len(clauses) != 1 {
		t.Fatalf("expected 1 clause, got %d", len(clauses))
	}
	if clauses[0].SubpartTitle != "第一分编 通则" {
		t.Errorf("subpart_title = %q", clauses[0].SubpartTitle)
	}
}

func TestFlatten_DropsEmptyArticles(t *testing.T) {
	doc := &LawDocument{
		Title: "某法",
		Parts: []Part{{
			PartTitle: "第一编",
			Chapters: []Chapter{{
				ChapterTitle: "第一章",
				Articles: []Article{
					{ArticleNo: "第一条", ArticleContent: "   "},
					{ArticleNo: "第二条", ArticleContent: " 　"},
					{ArticleNo: "第三条", ArticleContent: "有效内容"},
				},
			}},
		}},
	}
	clauses := NewFlattener().Flatten(doc, 0)
	if len(clauses) != 1 {
		t.Fatalf("expected 1 clause, got %d", len(clauses))
	}
	if clauses[0].ArticleNo != "第三条" || clauses[0].VectorIndex != 0 {
		t.Errorf("clause = %+v", clauses[0])
	}
}

func TestFlatten_EmptyChapterSkippedSilently(t *testing.T) {
	doc := &LawDocument{
		Title: "某法",
		Parts: []Part{{
			PartTitle: "第一编",
			Chapters: []Chapter{
				{ChapterTitle: "第一章", Articles: nil},
				{ChapterTitle: "第二章", Articles: []Article{{ArticleNo: "第一条", ArticleContent: "内容"}}},
			},
		}},
	}
	clauses := NewFlattener().Flatten(doc, 0)
	if len(clauses) != 1 || clauses[0].ChapterTitle != "第二章" {
		t.Fatalf("clauses = %+v", clauses)
	}
}

func TestFlatten_MissingTitlesRecovered(t *testing.T) {
	doc := &LawDocument{
		Parts: []Part{{
			Chapters: []Chapter{{
				Articles: []Article{{ArticleNo: "第一条", ArticleContent: "内容"}},
			}},
		}},
	}
	clauses := NewFlattener().Flatten(doc, 0)
	if len(clauses) != 1 {
		t.Fatalf("expected 1 clause, got %d", len(clauses))
	}
	c := clauses[0]
	if c.LawTitle != PlaceholderLawTitle || c.PartTitle != PlaceholderPartTitle || c.ChapterTitle != PlaceholderChapterTitle {
		t.Errorf("placeholders not applied: %+v", c)
	}
}

func TestFlatten_Idempotent(t *testing.T) {
	f := NewFlattener()
	first := f.Flatten(simpleDoc(), 0)
	second := f.Flatten(simpleDoc(), 0)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("flattening is not idempotent:\n%+v\n%+v", first, second)
	}
}

func TestFlatten_StartIndexContinues(t *testing.T) {
	clauses := NewFlattener().Flatten(simpleDoc(), 10)
	if clauses[0].VectorIndex != 10 || clauses[1].VectorIndex != 11 {
		t.Errorf("vector indices = %d, %d", clauses[0].VectorIndex, clauses[1].VectorIndex)
	}
}

func TestParseDocument(t *testing.T) {
	data := []byte(`{"title":"某法","parts":[{"part_title":"第一编","chapters":[{"chapter_title":"第一章","articles":[{"article_no":"第一条","article_content":"内容"}]}]}]}`)
	doc, err := ParseDocument(data)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Title != "某法" || len(doc.Parts) != 1 {
		t.Errorf("doc = %+v", doc)
	}
}

func TestParseDocument_Invalid(t *testing.T) {
	if _, err := ParseDocument([]byte("{not json")); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  第一条   内容 ", "第一条 内容"},
		{"第 一　条", "第一条"},
		{"a\n\t b", "a b"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
