package faq

import "testing"

func TestDefault_Size(t *testing.T) {
	if n := Default().Len(); n < 90 {
		t.Errorf("default table has %d entries, expected the full corpus", n)
	}
}

func TestMatch_Containment(t *testing.T) {
	table := Default()
	entry, ok := table.Match("请问诉讼时效是多久？")
	if !ok {
		t.Fatal("expected a match")
	}
	if entry.Key != "诉讼时效" {
		t.Errorf("matched key = %q", entry.Key)
	}
	if entry.Answer == "" {
		t.Error("empty canned answer")
	}
}

func TestMatch_NoMatch(t *testing.T) {
	if _, ok := Default().Match("今天天气怎么样"); ok {
		t.Error("expected no match")
	}
}

func TestMatch_FirstDeclaredWins(t *testing.T) {
	table := NewTable([]Entry{
		{Key: "离婚", Answer: "first"},
		{Key: "离婚冷静期", Answer: "second"},
	})
	entry, ok := table.Match("离婚冷静期多久")
	if !ok || entry.Answer != "first" {
		t.Errorf("expected declaration-order first match, got %+v ok=%v", entry, ok)
	}
}

func TestMatch_CaseSensitive(t *testing.T) {
	table := NewTable([]Entry{{Key: "LPR", Answer: "rate"}})
	if _, ok := table.Match("什么是lpr"); ok {
		t.Error("matching must be case-sensitive")
	}
	if _, ok := table.Match("什么是LPR"); !ok {
		t.Error("exact-case key should match")
	}
}
