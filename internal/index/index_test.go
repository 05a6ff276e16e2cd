package index

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lawkit/fatiao/internal/embedding"
	"github.com/lawkit/fatiao/internal/models"
)

func testClauses() []*models.Clause {
	return []*models.Clause{
		{LawTitle: "民法典", PartTitle: "第三编 合同", ChapterTitle: "第八章 违约责任", ArticleNo: "第五百七十七条", ArticleContent: "当事人一方不履行合同义务的，应当承担违约责任。"},
		{LawTitle: "民法典", PartTitle: "第一编 总则", ChapterTitle: "第一章 基本规定", ArticleNo: "第一条", ArticleContent: "为了保护民事主体的合法权益，制定本法。"},
		{LawTitle: "民法典", PartTitle: "第五编 婚姻家庭", ChapterTitle: "第四章 离婚", ArticleNo: "第一千零七十六条", ArticleContent: "夫妻双方自愿离婚的，应当签订书面离婚协议。"},
	}
}

func TestBuild_AssignsVectorIndexInOrder(t *testing.T) {
	emb := embedding.NewMockEmbedder(32)
	ix, err := Build(context.Background(), testClauses(), emb)
	if err != nil {
		t.Fatal(err)
	}
	if ix.Size() != 3 {
		t.Fatalf("size = %d", ix.Size())
	}
	for i := 0; i < 3; i++ {
		c, err := ix.Clause(i)
		if err != nil {
			t.Fatal(err)
		}
		if c.VectorIndex != i {
			t.Errorf("clause %d has vector index %d", i, c.VectorIndex)
		}
	}
}

func TestBuild_EmptyCorpus(t *testing.T) {
	emb := embedding.NewMockEmbedder(32)
	ix, err := Build(context.Background(), nil, emb)
	if err != nil {
		t.Fatal(err)
	}
	if ix.Size() != 0 {
		t.Errorf("size = %d, want 0", ix.Size())
	}
	results, err := ix.Search(make([]float32, 32), 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results from empty index, got %d", len(results))
	}
}

func TestIndex_SearchFindsExactText(t *testing.T) {
	emb := embedding.NewMockEmbedder(64)
	ctx := context.Background()
	clauses := testClauses()
	ix, err := Build(ctx, clauses, emb)
	if err != nil {
		t.Fatal(err)
	}
	// Query with the exact composite text of clause 2: cosine similarity 1.
	qv, _ := emb.Embed(ctx, clauses[2].CompositeText())
	results, err := ix.Search(qv, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results", len(results))
	}
	if results[0].Clause.VectorIndex != 2 {
		t.Errorf("top result vector index = %d, want 2", results[0].Clause.VectorIndex)
	}
	if results[0].Score < 0.999 {
		t.Errorf("exact match score = %f", results[0].Score)
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Errorf("results not sorted by descending score")
		}
	}
}

func TestIndex_VerifyModel(t *testing.T) {
	emb := embedding.NewMockEmbedder(32)
	ix, _ := Build(context.Background(), testClauses(), emb)
	if err := ix.VerifyModel("mock-32"); err != nil {
		t.Errorf("matching model rejected: %v", err)
	}
	err := ix.VerifyModel("mock-384")
	if !errors.Is(err, ErrConfigMismatch) {
		t.Errorf("expected ErrConfigMismatch, got %v", err)
	}
}

func TestPersistLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	emb := embedding.NewMockEmbedder(32)
	ctx := context.Background()
	built, err := Build(ctx, testClauses(), emb)
	if err != nil {
		t.Fatal(err)
	}
	if err := built.Persist(dir); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Size() != built.Size() || loaded.Dimensions() != built.Dimensions() {
		t.Fatalf("loaded size=%d dims=%d", loaded.Size(), loaded.Dimensions())
	}
	if loaded.ModelIdentifier() != "mock-32" {
		t.Errorf("model identifier = %q", loaded.ModelIdentifier())
	}
	for i := 0; i < built.Size(); i++ {
		want, _ := built.Clause(i)
		got, _ := loaded.Clause(i)
		if *got != *want {
			t.Errorf("clause %d mismatch:\ngot  %+v\nwant %+v", i, got, want)
		}
	}

	// Search behaves identically on the loaded index.
	qv, _ := emb.Embed(ctx, "合同违约责任")
	wantResults, _ := built.Search(qv, 3)
	gotResults, err := loaded.Search(qv, 3)
	if err != nil {
		t.Fatal(err)
	}
	for i := range wantResults {
		if gotResults[i].Score != wantResults[i].Score || gotResults[i].Clause.VectorIndex != wantResults[i].Clause.VectorIndex {
			t.Errorf("result %d differs after round trip", i)
		}
	}
}

func TestLoad_MissingArtifact(t *testing.T) {
	dir := t.TempDir()
	emb := embedding.NewMockEmbedder(16)
	built, _ := Build(context.Background(), testClauses(), emb)
	if err := built.Persist(dir); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(filepath.Join(dir, MetaFile)); err != nil {
		t.Fatal(err)
	}
	_, err := Load(dir)
	if !errors.Is(err, ErrMissingArtifact) {
		t.Errorf("expected ErrMissingArtifact, got %v", err)
	}
}

func TestLoad_EmptyDir(t *testing.T) {
	_, err := Load(t.TempDir())
	if !errors.Is(err, ErrMissingArtifact) {
		t.Errorf("expected ErrMissingArtifact, got %v", err)
	}
}

func TestHandle_SwapPublishesNewSnapshot(t *testing.T) {
	emb := embedding.NewMockEmbedder(16)
	ctx := context.Background()
	first, _ := Build(ctx, testClauses()[:1], emb)
	h := NewHandle(first)
	if h.Current().Size() != 1 {
		t.Fatalf("current size = %d", h.Current().Size())
	}

	// A reader that grabbed the old snapshot keeps it across a swap.
	snap := h.Current()
	second, _ := Build(ctx, testClauses(), emb)
	h.Swap(second)
	if snap.Size() != 1 {
		t.Errorf("old snapshot mutated: size = %d", snap.Size())
	}
	if h.Current().Size() != 3 {
		t.Errorf("new snapshot size = %d", h.Current().Size())
	}
}

func TestHandle_NilUntilFirstBuild(t *testing.T) {
	h := NewHandle(nil)
	if h.Current() != nil {
		t.Error("expected nil before first build")
	}
}
