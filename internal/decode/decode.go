// Package decode turns raw translator hypotheses back into text: injected
// language-tag tokens are stripped, multilingual sentinels dropped, and
// the surviving subword pieces joined through the target vocabulary.
package decode

import (
	"strings"

	"github.com/snipglot/snipglot/internal/vocab"
)

// Strip removes the decoding artifacts of multilingual tagging from a
// hypothesis: tokens from dropLeading are removed while they remain first
// (in any order), and __...__ sentinel tokens are dropped wherever they
// appear. The result may be empty.
func Strip(hyp []string, dropLeading []string) []string {
	if len(hyp) == 0 {
		return nil
	}
	drop := make(map[string]struct{}, len(dropLeading))
	for _, t := range dropLeading {
		if t != "" {
			drop[t] = struct{}{}
		}
	}
	for len(hyp) > 0 {
		if _, ok := drop[hyp[0]]; !ok {
			break
		}
		hyp = hyp[1:]
	}
	out := make([]string, 0, len(hyp))
	for _, t := range hyp {
		if isSentinel(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func isSentinel(t string) bool {
	return strings.HasPrefix(t, "__") && strings.HasSuffix(t, "__")
}

// Text converts surviving hypothesis pieces to surface text, excluding
// end-of-sequence and padding tokens. With no target vocabulary it falls
// back to the naive detokenizer.
func Text(pieces []string, tgt vocab.Codec) string {
	kept := make([]string, 0, len(pieces))
	for _, p := range pieces {
		if p == vocab.EOS || p == vocab.Pad {
			continue
		}
		kept = append(kept, p)
	}
	if tgt != nil {
		return strings.TrimSpace(tgt.DecodePieces(kept))
	}
	return vocab.JoinPieces(kept)
}
