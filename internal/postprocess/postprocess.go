// Package postprocess normalizes decoded translation output per chunk:
// tokenizer artifacts are removed, punctuation is converted to the glyphs
// of the output script, terminology is corrected, and whitespace is made
// script-correct. Apply is idempotent on already-normalized text.
package postprocess

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"

	"github.com/snipglot/snipglot/internal/script"
)

var (
	// artifacts are tokenizer leftovers: non-breaking space, the subword
	// boundary marker, and doubled-unknown-token glyphs.
	artifacts = strings.NewReplacer("\u00a0", " ", "▁", " ", "⁇", "", "??", "")

	reHSpace = regexp.MustCompile(`[ \t]{2,}`)

	reSpaceBeforeCJKPunct = regexp.MustCompile(`\s+([，。！？；：、])`)
	reSpaceAfterCJKPunct  = regexp.MustCompile(`([，。！？；：、])\s+`)

	reSpaceBeforeLatinPunct = regexp.MustCompile(`\s+([,.;:!?])`)
	reLatinPunctLetter      = regexp.MustCompile(`([,.;:!?])([A-Za-z])`)
)

// fullwidth maps ASCII clause punctuation to its full-width counterpart.
// The full stop is absent on purpose: "." maps to the ideographic "。",
// not the full-width ".", and only when it is not part of an ellipsis.
var fullwidth = func() map[rune]rune {
	m := make(map[rune]rune, 5)
	for _, r := range ",?!;:" {
		w, _ := utf8.DecodeRuneInString(width.Widen.String(string(r)))
		m[r] = w
	}
	return m
}()

// Postprocessor applies the script-aware cleanup rules. The terminology
// table is fixed at construction; build one per engine and reuse it.
type Postprocessor struct {
	terms *strings.Replacer
}

// New builds a Postprocessor whose terminology table merges the built-in
// domain corrections with extra user glossary entries. Substitution is a
// single pass with longest key winning at each position, so overlapping
// entries cannot re-overwrite each other's output.
func New(extra map[string]string) *Postprocessor {
	merged := make(map[string]string, len(DefaultTerms)+len(extra))
	for k, v := range DefaultTerms {
		merged[k] = v
	}
	for k, v := range extra {
		if k != "" {
			merged[k] = v
		}
	}
	return &Postprocessor{terms: newLongestMatchReplacer(merged)}
}

// Apply normalizes one chunk of decoded text.
func (p *Postprocessor) Apply(text string) string {
	text = artifacts.Replace(text)
	text = reHSpace.ReplaceAllString(text, " ")
	if script.ContainsHan(text) {
		text = widenPunct(text)
		text = convertLonePeriods(text)
		text = p.terms.Replace(text)
	}
	text = removeSpaceBetweenHan(text)
	text = reSpaceBeforeCJKPunct.ReplaceAllString(text, "$1")
	text = reSpaceAfterCJKPunct.ReplaceAllString(text, "$1")
	text = reSpaceBeforeLatinPunct.ReplaceAllString(text, "$1")
	text = reLatinPunctLetter.ReplaceAllString(text, "$1 $2")
	return strings.TrimSpace(text)
}

func widenPunct(s string) string {
	return strings.Map(func(r rune) rune {
		if w, ok := fullwidth[r]; ok {
			return w
		}
		return r
	}, s)
}

// convertLonePeriods turns a "." that is not part of an ellipsis run into
// the CJK full stop.
func convertLonePeriods(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r != '.' {
			continue
		}
		if i > 0 && runes[i-1] == '.' {
			continue
		}
		if i+1 < len(runes) && runes[i+1] == '.' {
			continue
		}
		runes[i] = '。'
	}
	return string(runes)
}

// removeSpaceBetweenHan drops whitespace runs strictly between two CJK
// ideographs; CJK text carries no inter-character spaces.
func removeSpaceBetweenHan(s string) string {
	runes := []rune(s)
	out := make([]rune, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != ' ' && r != '\t' {
			out = append(out, r)
			continue
		}
		j := i
		for j < len(runes) && (runes[j] == ' ' || runes[j] == '\t') {
			j++
		}
		between := len(out) > 0 && script.IsHan(out[len(out)-1]) &&
			j < len(runes) && script.IsHan(runes[j])
		if !between {
			out = append(out, runes[i:j]...)
		}
		i = j - 1
	}
	return string(out)
}

// newLongestMatchReplacer orders the table's keys longest first so the
// replacer's in-order matching becomes longest-match.
func newLongestMatchReplacer(table map[string]string) *strings.Replacer {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, k, table[k])
	}
	return strings.NewReplacer(pairs...)
}
