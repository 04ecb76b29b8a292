// Package assemble merges per-chunk translation output back into one
// string. Slots are walked strictly in original chunk order; the package
// never reorders, it only decides where a joining space belongs.
package assemble

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/snipglot/snipglot/internal/script"
	"github.com/snipglot/snipglot/internal/segment"
)

var (
	reHSpace      = regexp.MustCompile(`[ \t]{2,}`)
	reSpaceBreak  = regexp.MustCompile(`[ ]+\n`)
	reBreakSpace  = regexp.MustCompile(`\n[ ]+`)
)

// Join merges the output slots of one translate call. slots must be
// indexed identically to chunks. Break chunks emit a literal line break,
// empty text slots are skipped, and a single space is inserted between
// adjacent fragments unless the previous fragment ends in clause
// punctuation or the boundary is ideograph-to-ideograph.
func Join(slots []string, chunks []segment.Chunk) string {
	var parts []string
	for _, ch := range chunks {
		if ch.Break {
			parts = append(parts, "\n")
			continue
		}
		part := slots[ch.Index]
		if part == "" {
			continue
		}
		if len(parts) > 0 && parts[len(parts)-1] != "\n" && needsSpace(parts[len(parts)-1], part) {
			parts = append(parts, " ")
		}
		parts = append(parts, part)
	}

	merged := strings.Join(parts, "")
	merged = reHSpace.ReplaceAllString(merged, " ")
	merged = reSpaceBreak.ReplaceAllString(merged, "\n")
	merged = reBreakSpace.ReplaceAllString(merged, "\n")
	return strings.TrimSpace(merged)
}

func needsSpace(prev, cur string) bool {
	last, _ := utf8.DecodeLastRuneInString(prev)
	first, _ := utf8.DecodeRuneInString(cur)
	if script.IsClausePunct(last) {
		return false
	}
	if script.IsHan(last) && script.IsHan(first) {
		return false
	}
	return true
}
