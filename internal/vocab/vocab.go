// Package vocab loads per-direction SentencePiece vocabulary models and
// exposes the subword encode/decode surface the pipeline needs. Model
// files are resolved by probing a fixed candidate list inside the model
// directory, matching the layout of converted opus-mt and NLLB models.
package vocab

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sentencepiece "github.com/eliben/go-sentencepiece"
)

// Control tokens shared between the token adapter and the decoder.
const (
	EOS = "</s>"
	Pad = "<pad>"

	// Marker is the SentencePiece word-boundary glyph.
	Marker = "▁"
)

// ErrModelMissing reports that no candidate vocabulary file exists in the
// probed model directory.
var ErrModelMissing = errors.New("no sentencepiece model file found")

var sourceCandidates = []string{"sentencepiece.model", "source.spm", "sentencepiece.bpe.model"}

const targetCandidate = "target.spm"

// Codec encodes text into subword pieces and decodes pieces back to text.
// The engine depends on this interface so tests can substitute their own
// tokenizer.
type Codec interface {
	EncodePieces(text string) ([]string, error)
	DecodePieces(pieces []string) string
}

// Model is a Codec backed by a loaded SentencePiece processor.
type Model struct {
	path string
	proc *sentencepiece.Processor
}

// Probe resolves the source and target model files inside dir without
// loading them. The source candidates are tried in order, first match
// wins; the target model is target.spm, falling back to the resolved
// source file when absent.
func Probe(dir string) (srcPath, tgtPath string, err error) {
	if _, err := os.Stat(dir); err != nil {
		return "", "", fmt.Errorf("model directory not found: %s", dir)
	}
	for _, name := range sourceCandidates {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			srcPath = p
			break
		}
	}
	if srcPath == "" {
		return "", "", fmt.Errorf("%w: expected one of %s in %s",
			ErrModelMissing, strings.Join(sourceCandidates, ", "), dir)
	}
	tgtPath = filepath.Join(dir, targetCandidate)
	if _, err := os.Stat(tgtPath); err != nil {
		tgtPath = srcPath
	}
	return srcPath, tgtPath, nil
}

// Load probes dir and loads the source and target vocabulary models. When
// the directory carries a single shared model file, the returned models
// share it.
func Load(dir string) (src, tgt *Model, err error) {
	srcPath, tgtPath, err := Probe(dir)
	if err != nil {
		return nil, nil, err
	}
	src, err = open(srcPath)
	if err != nil {
		return nil, nil, err
	}
	if tgtPath == srcPath {
		return src, src, nil
	}
	tgt, err = open(tgtPath)
	if err != nil {
		return nil, nil, err
	}
	return src, tgt, nil
}

func open(path string) (*Model, error) {
	proc, err := sentencepiece.NewProcessorFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("load sentencepiece model %s: %w", path, err)
	}
	return &Model{path: path, proc: proc}, nil
}

// Path returns the model file the codec was loaded from.
func (m *Model) Path() string {
	return m.path
}

// EncodePieces tokenizes text into subword piece strings.
func (m *Model) EncodePieces(text string) ([]string, error) {
	tokens := m.proc.Encode(text)
	pieces := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		pieces = append(pieces, tok.Text)
	}
	return pieces, nil
}

// DecodePieces converts piece strings back to surface text. Piece-level
// decoding is the word-boundary-marker join; token IDs never cross the
// batch boundary, so the id-based decode path is not used.
func (m *Model) DecodePieces(pieces []string) string {
	return JoinPieces(pieces)
}

// JoinPieces concatenates subword pieces, turning boundary markers into
// spaces. Control tokens are skipped.
func JoinPieces(pieces []string) string {
	var b strings.Builder
	for _, p := range pieces {
		if p == "" || p == EOS || p == Pad {
			continue
		}
		b.WriteString(p)
	}
	return strings.TrimSpace(strings.ReplaceAll(b.String(), Marker, " "))
}
