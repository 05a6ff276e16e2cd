package flatten

import (
	"strings"
	"unicode"
)

// Normalize cleans statute text once at ingestion: removes NBSP and
// ideographic-space artifacts common in scraped legal text, collapses runs of
// whitespace, and trims. Stored text is the single source of truth; this is
// never applied at query time.
func Normalize(text string) string {
	text = strings.NewReplacer(" ", "", "　", "", "\r", "").Replace(text)
	text = strings.TrimSpace(text)
	var b strings.Builder
	wasSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if !wasSpace {
				b.WriteRune(' ')
				wasSpace = true
			}
		} else {
			b.WriteRune(r)
			wasSpace = false
		}
	}
	return b.String()
}
