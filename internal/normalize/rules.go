// Package normalize cleans captured input before segmentation: the OCR
// normalizer repairs line-break and word-splitting noise in recognized
// text, the query normalizer fixes known dictation mis-transcriptions.
// The correction tables are exported as ordered rule lists so they can be
// audited and extended without touching pipeline code.
package normalize

import "regexp"

// Rule is one ordered rewrite. Replace may use capture group references.
type Rule struct {
	Pattern *regexp.Regexp
	Replace string
}

func applyRules(text string, rules []Rule) string {
	for _, r := range rules {
		text = r.Pattern.ReplaceAllString(text, r.Replace)
	}
	return text
}
