package embedding

import "testing"

func TestCharTokenizer(t *testing.T) {
	tok := &CharTokenizer{}
	inputIDs, attentionMask, tokenTypeIDs := tok.Tokenize("民法典", 16)
	if len(inputIDs) != 16 || len(attentionMask) != 16 || len(tokenTypeIDs) != 16 {
		t.Fatalf("lengths = %d %d %d", len(inputIDs), len(attentionMask), len(tokenTypeIDs))
	}
	if inputIDs[0] != 101 {
		t.Errorf("missing [CLS], got %d", inputIDs[0])
	}
	// 3 characters then [SEP]
	if inputIDs[4] != 102 {
		t.Errorf("expected [SEP] at 4, got %d", inputIDs[4])
	}
	for i := 0; i < 5; i++ {
		if attentionMask[i] != 1 {
			t.Errorf("attention mask %d = %d", i, attentionMask[i])
		}
	}
	if attentionMask[5] != 0 {
		t.Errorf("padding should be masked out")
	}
}

func TestCharTokenizer_Truncates(t *testing.T) {
	tok := &CharTokenizer{}
	long := ""
	for i := 0; i < 100; i++ {
		long += "条"
	}
	inputIDs, _, _ := tok.Tokenize(long, 8)
	if len(inputIDs) != 8 {
		t.Fatalf("len = %d", len(inputIDs))
	}
}

func TestHashString(t *testing.T) {
	if HashString("合同") != HashString("合同") {
		t.Error("hash not deterministic")
	}
	if HashString("") != 0 {
		t.Errorf("empty hash = %d", HashString(""))
	}
	if HashString("abc") < 0 {
		t.Error("hash must be non-negative")
	}
}
