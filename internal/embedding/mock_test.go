package embedding

import (
	"context"
	"math"
	"testing"
)

func TestMockEmbedder_Deterministic(t *testing.T) {
	e := NewMockEmbedder(64)
	ctx := context.Background()
	a, err := e.Embed(ctx, "合同违约怎么办")
	if err != nil {
		t.Fatal(err)
	}
	b, _ := e.Embed(ctx, "合同违约怎么办")
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("embedding not deterministic at %d", i)
		}
	}
	c, _ := e.Embed(ctx, "离婚财产分割")
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different texts produced identical embeddings")
	}
}

func TestMockEmbedder_UnitNorm(t *testing.T) {
	e := NewMockEmbedder(384)
	emb, err := e.Embed(context.Background(), "测试")
	if err != nil {
		t.Fatal(err)
	}
	if len(emb) != 384 {
		t.Fatalf("dimension = %d", len(emb))
	}
	var norm float64
	for _, v := range emb {
		norm += float64(v * v)
	}
	if math.Abs(norm-1.0) > 1e-5 {
		t.Errorf("norm^2 = %f, want 1.0", norm)
	}
}

func TestMockEmbedder_ModelID(t *testing.T) {
	if got := NewMockEmbedder(128).ModelID(); got != "mock-128" {
		t.Errorf("ModelID = %q", got)
	}
}

func TestMockEmbedder_EmbedBatch(t *testing.T) {
	e := NewMockEmbedder(16)
	embs, err := e.EmbedBatch(context.Background(), []string{"a", "b", "c"})
	if err != nil {
		t.Fatal(err)
	}
	if len(embs) != 3 {
		t.Fatalf("got %d embeddings", len(embs))
	}
}

func TestNew_UnknownProvider(t *testing.T) {
	if _, err := New(Options{Provider: "sbert"}); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestNew_Mock(t *testing.T) {
	e, err := New(Options{Provider: "mock", Dimensions: 32})
	if err != nil {
		t.Fatal(err)
	}
	if e.Dimensions() != 32 {
		t.Errorf("dimensions = %d", e.Dimensions())
	}
}
