// Package script classifies runes and strings by writing system. The
// segmenter, postprocessor and reassembler all key their spacing and
// punctuation rules off the same classification so the rules cannot drift
// apart between pipeline stages.
package script

import (
	"strings"
	"unicode"
)

const (
	// cjkPunct are the full-width punctuation marks that carry no
	// surrounding whitespace in CJK text.
	cjkPunct = "，。！？；：、"

	// latinPunct are the ASCII clause marks the postprocessor widens when
	// they appear inside CJK text.
	latinPunct = ",.!?;:"
)

// IsHan reports whether r is a CJK ideograph.
func IsHan(r rune) bool {
	return unicode.Is(unicode.Han, r)
}

// ContainsHan reports whether s contains at least one CJK ideograph.
func ContainsHan(s string) bool {
	return strings.ContainsFunc(s, IsHan)
}

// IsCJKPunct reports whether r is a full-width CJK punctuation mark.
func IsCJKPunct(r rune) bool {
	return strings.ContainsRune(cjkPunct, r)
}

// IsClausePunct reports whether r is terminal or clause punctuation in
// either script. The reassembler never inserts a space after such a rune.
func IsClausePunct(r rune) bool {
	return strings.ContainsRune(cjkPunct, r) || strings.ContainsRune(latinPunct, r)
}

// IsTerminator reports whether r ends a sentence-like unit for
// segmentation purposes.
func IsTerminator(r rune) bool {
	return strings.ContainsRune("。！？!?；;.…", r)
}
