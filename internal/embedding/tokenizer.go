package embedding

// Tokenizer produces token IDs for BERT-style models
// (input_ids, attention_mask, token_type_ids).
type Tokenizer interface {
	Tokenize(text string, maxTokens int) (inputIDs, attentionMask, tokenTypeIDs []int64)
}

// CharTokenizer tokenizes per rune with hash-based token IDs. Statute text is
// mostly CJK, where whitespace word-splitting produces one giant token, so a
// character-level fallback is used when no real vocabulary is wired in.
type CharTokenizer struct{}

// Tokenize produces padded token IDs up to maxTokens with [CLS]/[SEP] markers.
func (t *CharTokenizer) Tokenize(text string, maxTokens int) (inputIDs, attentionMask, tokenTypeIDs []int64) {
	if maxTokens <= 0 {
		maxTokens = 256
	}
	inputIDs = make([]int64, maxTokens)
	attentionMask = make([]int64, maxTokens)
	tokenTypeIDs = make([]int64, maxTokens)

	inputIDs[0] = 101 // [CLS]
	attentionMask[0] = 1

	pos := 1
	for _, r := range text {
		if pos >= maxTokens-1 {
			break
		}
		if r == ' ' || r == '\n' || r == '\t' {
			continue
		}
		inputIDs[pos] = int64(HashString(string(r)) % 30000)
		attentionMask[pos] = 1
		pos++
	}
	if pos < maxTokens {
		inputIDs[pos] = 102 // [SEP]
		attentionMask[pos] = 1
	}
	return inputIDs, attentionMask, tokenTypeIDs
}
