// Package translator defines the batched sequence-to-sequence boundary of
// the pipeline and its implementations: an HTTP client for a local
// CTranslate2-style serving process, and an in-process mock for tests.
package translator

import "context"

// Options carries the decode parameters of one translate_batch call.
type Options struct {
	BeamSize          int        `json:"beam_size"`
	RepetitionPenalty float64    `json:"repetition_penalty"`
	NoRepeatNgramSize int        `json:"no_repeat_ngram_size"`
	MaxDecodingLength int        `json:"max_decoding_length"`
	ReturnScores      bool       `json:"return_scores"`
	TargetPrefix      [][]string `json:"target_prefix,omitempty"`
}

// DefaultOptions is the general chunked-translation preset.
func DefaultOptions() Options {
	return Options{
		BeamSize:          7,
		RepetitionPenalty: 1.5,
		NoRepeatNgramSize: 5,
		MaxDecodingLength: 1024,
	}
}

// QuickOptions is the preset for short single-chunk calls, trading beam
// width for latency.
func QuickOptions() Options {
	return Options{
		BeamSize:          2,
		RepetitionPenalty: 1.2,
		NoRepeatNgramSize: 5,
		MaxDecodingLength: 256,
	}
}

// Batch translates a batch of token-piece sequences and returns the best
// hypothesis per sequence, index-aligned with the input. Implementations
// must return exactly one hypothesis slice per input sequence on success.
type Batch interface {
	TranslateBatch(ctx context.Context, seqs [][]string, opts Options) ([][]string, error)
	IsAvailable(ctx context.Context) error
}
