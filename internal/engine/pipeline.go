package engine

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/snipglot/snipglot/internal/assemble"
	"github.com/snipglot/snipglot/internal/decode"
	"github.com/snipglot/snipglot/internal/segment"
	"github.com/snipglot/snipglot/internal/translator"
	"github.com/snipglot/snipglot/internal/vocab"
)

// quickCallMaxRunes bounds the "short simple call" fast path that uses
// the narrow-beam decode preset.
const quickCallMaxRunes = 40

// translateChunked is the per-call pipeline: segment, encode, one batched
// backend call, decode, postprocess, reassemble. All per-call state lives
// on the stack of this function; nothing survives the call.
func (e *Engine) translateChunked(ctx context.Context, res *resources, text string) (string, error) {
	chunks := segment.Segment(text)
	slots := make([]string, len(chunks))

	var seqs [][]string
	var seqChunk []int
	for _, ch := range chunks {
		if ch.Break {
			continue
		}
		t := strings.TrimSpace(ch.Text)
		if t == "" {
			continue
		}
		pieces, err := res.src.EncodePieces(t)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrEncode, err)
		}
		if len(pieces) == 0 {
			continue
		}
		if len(res.srcTags) > 0 {
			pieces = append(append(make([]string, 0, len(res.srcTags)+len(pieces)), res.srcTags...), pieces...)
		}
		if pieces[len(pieces)-1] != vocab.EOS {
			pieces = append(pieces, vocab.EOS)
		}
		seqChunk = append(seqChunk, ch.Index)
		seqs = append(seqs, pieces)
	}

	if len(seqs) > 0 {
		opts := translator.DefaultOptions()
		if quickCall(chunks) {
			opts = translator.QuickOptions()
		}
		if res.tgtTag != "" {
			prefix := make([][]string, len(seqs))
			for i := range prefix {
				prefix[i] = []string{res.tgtTag}
			}
			opts.TargetPrefix = prefix
		}

		hyps, err := e.batch.TranslateBatch(ctx, seqs, opts)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrBatchCall, err)
		}
		if len(hyps) != len(seqs) {
			return "", fmt.Errorf("%w: got %d hypotheses for %d sequences", ErrBatchCall, len(hyps), len(seqs))
		}

		dropLeading := res.srcTags
		if res.tgtTag != "" {
			dropLeading = append(append([]string(nil), res.srcTags...), res.tgtTag)
		}
		for i, chunkIdx := range seqChunk {
			hyp := decode.Strip(hyps[i], dropLeading)
			if len(hyp) == 0 {
				// Empty after tag stripping: the slot stays empty rather
				// than leaking untranslated source into the output.
				continue
			}
			slots[chunkIdx] = e.post.Apply(decode.Text(hyp, res.tgt))
		}
	}

	return assemble.Join(slots, chunks), nil
}

// quickCall reports whether the whole input collapsed to one short text
// chunk, in which case the narrow-beam preset is enough.
func quickCall(chunks []segment.Chunk) bool {
	if len(chunks) != 1 || chunks[0].Break {
		return false
	}
	return utf8.RuneCountInString(chunks[0].Text) <= quickCallMaxRunes
}
