// Package segment splits captured text into translation-sized chunks while
// preserving paragraph structure. Every literal line break becomes its own
// Break chunk, so a run of k newlines survives translation as exactly k
// breaks and the reassembler can restore blank-line layout without keeping
// counts on the side.
package segment

import (
	"strings"
	"unicode/utf8"

	"github.com/snipglot/snipglot/internal/script"
)

// Oversized-chunk thresholds, in runes. Long sequences degrade both beam
// decode quality and latency, so sentences past these bounds are split
// again at comma boundaries.
const (
	cjkMaxLen      = 80
	cjkCommaMinLen = 40
	cjkMinCommas   = 2
	latinMaxLen    = 180
)

// Chunk is one unit of the segmented input: either a single literal line
// break or a sentence-like span of text. Index is the chunk's position in
// the original order and is the sole correlation key between segmentation
// and the hypotheses coming back from the translator.
type Chunk struct {
	Index int
	Break bool
	Text  string
}

// Segment splits text into an ordered, never-empty chunk list. Line
// endings are normalized first; each newline of a newline run yields one
// Break chunk, and content spans are cut after sentence terminators with
// oversized sentences split again at commas. If nothing survives the
// whole normalized text is returned as a single chunk.
func Segment(text string) []Chunk {
	normalized := normalizeBreaks(text)

	var chunks []Chunk
	for _, span := range splitSpans(normalized) {
		if span[0] == '\n' {
			for range span {
				chunks = append(chunks, Chunk{Break: true})
			}
			continue
		}
		for _, sentence := range splitAfter(span, script.IsTerminator) {
			sentence = strings.TrimSpace(sentence)
			if sentence == "" {
				continue
			}
			for _, piece := range splitOversized(sentence) {
				piece = strings.TrimSpace(piece)
				if piece == "" {
					continue
				}
				chunks = append(chunks, Chunk{Text: piece})
			}
		}
	}

	if len(chunks) == 0 {
		chunks = append(chunks, Chunk{Text: normalized})
	}
	for i := range chunks {
		chunks[i].Index = i
	}
	return chunks
}

func normalizeBreaks(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// splitSpans cuts text into alternating newline-run and content spans.
func splitSpans(text string) []string {
	var spans []string
	for i := 0; i < len(text); {
		j := i
		if text[i] == '\n' {
			for j < len(text) && text[j] == '\n' {
				j++
			}
		} else {
			for j < len(text) && text[j] != '\n' {
				j++
			}
		}
		spans = append(spans, text[i:j])
		i = j
	}
	return spans
}

// splitAfter cuts s after every rune matching boundary, keeping the
// boundary rune attached to the preceding piece.
func splitAfter(s string, boundary func(rune) bool) []string {
	var parts []string
	start := 0
	for i, r := range s {
		if boundary(r) {
			end := i + utf8.RuneLen(r)
			parts = append(parts, s[start:end])
			start = end
		}
	}
	if start < len(s) {
		parts = append(parts, s[start:])
	}
	return parts
}

// splitOversized applies the comma-boundary split to sentences that exceed
// the per-script length thresholds.
func splitOversized(sentence string) []string {
	n := utf8.RuneCountInString(sentence)
	if script.ContainsHan(sentence) {
		commas := strings.Count(sentence, "，") + strings.Count(sentence, ",")
		if n > cjkMaxLen || (commas >= cjkMinCommas && n > cjkCommaMinLen) {
			return splitAfter(sentence, func(r rune) bool { return r == '，' || r == ',' })
		}
		return []string{sentence}
	}
	if n > latinMaxLen {
		return splitAfter(sentence, func(r rune) bool { return r == ',' })
	}
	return []string{sentence}
}
