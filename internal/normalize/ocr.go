package normalize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/snipglot/snipglot/internal/script"
)

var (
	reHSpaceRun  = regexp.MustCompile(`[ \t]+`)
	reBackslashN = regexp.MustCompile(`\\\s*[nN]\b`)
	reManyBreaks = regexp.MustCompile(`\n{3,}`)
	reMultiSpace = regexp.MustCompile(` {2,}`)
)

// OCRConfusions corrects known character-confusion pairs in recognized
// CJK text, in order.
var OCRConfusions = []Rule{
	{regexp.MustCompile(`义件`), "文件"},
	{regexp.MustCompile(`工试`), "重试"},
}

// OCRText cleans recognized text before segmentation: line endings are
// unified, whitespace collapsed, literal "\n" artifacts removed, runs of
// three or more line breaks reduced to one blank line, and single line
// breaks inside a paragraph joined into spaces. CJK text then gets the
// confusion corrections; Latin text gets the split-letter repair.
func OCRText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = reHSpaceRun.ReplaceAllString(text, " ")
	text = reBackslashN.ReplaceAllString(text, " ")
	text = reManyBreaks.ReplaceAllString(text, "\n\n")
	text = joinSingleBreaks(text)
	text = reMultiSpace.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	if script.ContainsHan(text) {
		text = applyRules(text, OCRConfusions)
	}
	if strings.ContainsFunc(text, isASCIILetter) {
		text = mergeSplitLetters(text)
		text = reMultiSpace.ReplaceAllString(text, " ")
		text = strings.TrimSpace(text)
	}
	return text
}

// joinSingleBreaks turns lone line breaks within a paragraph into spaces
// while keeping blank-line paragraph boundaries intact.
func joinSingleBreaks(text string) string {
	paras := strings.Split(text, "\n\n")
	for i := range paras {
		paras[i] = strings.ReplaceAll(paras[i], "\n", " ")
	}
	return strings.Join(paras, "\n\n")
}

// mergeSplitLetters re-attaches a lone lowercase letter to the preceding
// token when that token ends in a letter and the following token does not
// start with a lowercase letter. OCR tends to shear the last letter off a
// word ("worl d"); a lowercase continuation right after usually means the
// lone letter is a real word ("a", "I"-style) and is left alone.
func mergeSplitLetters(text string) string {
	tokens := strings.Split(text, " ")
	merged := make([]string, 0, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if isLoneLower(tok) && len(merged) > 0 && endsWithLetter(merged[len(merged)-1]) && !nextStartsLower(tokens, i) {
			merged[len(merged)-1] += tok
			continue
		}
		merged = append(merged, tok)
	}
	return strings.Join(merged, " ")
}

func isLoneLower(tok string) bool {
	r, size := utf8.DecodeRuneInString(tok)
	return size == len(tok) && unicode.IsLower(r) && unicode.IsLetter(r)
}

func endsWithLetter(tok string) bool {
	r, _ := utf8.DecodeLastRuneInString(tok)
	return isASCIILetter(r)
}

func nextStartsLower(tokens []string, i int) bool {
	if i+1 >= len(tokens) || tokens[i+1] == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(tokens[i+1])
	return unicode.IsLower(r)
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
