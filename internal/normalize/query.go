package normalize

import (
	"regexp"
	"strings"
	"unicode"
)

// MisTranscriptions corrects phrases the dictation frontend is known to
// mis-hear, in order. Earlier rules may feed later ones.
var MisTranscriptions = []Rule{
	{regexp.MustCompile(`(?i)\b(can\s+)roll(\s+it)\b`), "${1}scroll${2}"},
	{regexp.MustCompile(`(?i)\broll(\s+it)\b`), "scroll${1}"},
	{regexp.MustCompile(`(?i)\byou can roll\b`), "you can scroll"},
	{regexp.MustCompile(`(?i)what'?s\s+the\s+big\s+deal\s+with\s+your\s+f1\s+and\s+f2\s+translation`), "why are your F1 and F2 translation boxes so big"},
	{regexp.MustCompile(`(?i)\bthe\s+return\s+identified\s+after\s+pressing\s+f3\b`), "the recognition result after pressing F3"},
	{regexp.MustCompile(`(?i)\bthe document that was packed\b`), "the packaged document"},
}

var (
	reSpaceBeforePunct = regexp.MustCompile(`\s+([,.;:!?])`)
	rePunctLetter      = regexp.MustCompile(`([,.;:!?])([A-Za-z])`)
)

// QueryText cleans a dictated or typed English query: whitespace is
// unified, the mis-transcription table applied, immediately repeated
// sentences dropped (case-insensitive), and punctuation spacing
// normalized.
func QueryText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = reHSpaceRun.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	text = applyRules(text, MisTranscriptions)
	text = dedupeSentences(text)
	text = reSpaceBeforePunct.ReplaceAllString(text, "$1")
	text = rePunctLetter.ReplaceAllString(text, "$1 $2")
	text = reMultiSpace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// dedupeSentences drops a sentence that repeats the previous one exactly,
// ignoring case. Dictation frontends frequently emit the same sentence
// twice back to back.
func dedupeSentences(text string) string {
	var deduped []string
	for _, s := range splitSentences(text) {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if len(deduped) > 0 && strings.EqualFold(deduped[len(deduped)-1], s) {
			continue
		}
		deduped = append(deduped, s)
	}
	return strings.Join(deduped, " ")
}

// splitSentences cuts at whitespace that follows terminal punctuation.
func splitSentences(text string) []string {
	var parts []string
	var cur strings.Builder
	prevTerm := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevTerm {
				parts = append(parts, cur.String())
				cur.Reset()
				prevTerm = false
				continue
			}
			if cur.Len() == 0 {
				continue
			}
		}
		cur.WriteRune(r)
		prevTerm = r == '.' || r == '!' || r == '?'
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return parts
}
