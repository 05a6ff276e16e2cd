package classify

import "strings"

// legalKeywords is the fixed legal vocabulary scanned for in questions. The
// matched terms are reported to the generation layer to tune its narrative.
var legalKeywords = []string{
	"合同", "违约", "赔偿", "责任", "权利", "义务", "婚姻", "离婚",
	"继承", "财产", "侵权", "损害", "物权", "债权", "担保", "抵押",
	"租赁", "买卖", "借贷", "劳动", "工伤", "保险", "诉讼", "仲裁",
}

// ExtractKeywords returns the legal-vocabulary terms contained in the
// question, in vocabulary order.
func ExtractKeywords(question string) []string {
	var matched []string
	for _, kw := range legalKeywords {
		if strings.Contains(question, kw) {
			matched = append(matched, kw)
		}
	}
	return matched
}
