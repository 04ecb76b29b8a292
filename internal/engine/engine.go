// Package engine owns the translate pipeline: input normalization,
// segmentation, subword encoding, the single batched backend call per
// invocation, hypothesis decoding, postprocessing and reassembly.
//
// A call either returns translated text or an empty string plus an error
// message in its Result; nothing partial ever surfaces. The engine is
// synchronous and must not be invoked reentrantly for the same direction;
// the dispatcher that serializes calls and owns timeouts lives outside
// this package.
package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/snipglot/snipglot/internal"
	"github.com/snipglot/snipglot/internal/normalize"
	"github.com/snipglot/snipglot/internal/postprocess"
	"github.com/snipglot/snipglot/internal/script"
	"github.com/snipglot/snipglot/internal/translator"
	"github.com/snipglot/snipglot/internal/vocab"
)

// Backend modes.
const (
	BackendOpus = "opus" // one model directory per direction
	BackendNLLB = "nllb" // one multilingual model with language tags
	BackendNone = "none" // translation disabled, OCR-only deployments
)

// Config selects the backend mode and locates its vocabulary models.
type Config struct {
	Backend string

	// Per-direction model directories (opus mode).
	ModelDirEnZh string
	ModelDirZhEn string

	// Multilingual model directory and its language tag tokens (nllb
	// mode). The tags double as decode prefixes.
	NLLBModelDir string
	NLLBTagEn    string
	NLLBTagZh    string

	// ExtraTerms extends the postprocessor's terminology table, typically
	// from the user glossary.
	ExtraTerms map[string]string
}

func (c Config) backend() string {
	b := strings.ToLower(strings.TrimSpace(c.Backend))
	if b == "" {
		return BackendOpus
	}
	return b
}

func (c Config) tagEn() string {
	if c.NLLBTagEn == "" {
		return "eng_Latn"
	}
	return c.NLLBTagEn
}

func (c Config) tagZh() string {
	if c.NLLBTagZh == "" {
		return "zho_Hans"
	}
	return c.NLLBTagZh
}

// resources is everything one direction needs: its codecs and, in
// multilingual mode, the tag tokens injected around the batch call.
type resources struct {
	src     vocab.Codec
	tgt     vocab.Codec
	srcTags []string
	tgtTag  string

	ready   bool
	initErr string
}

// Status reports per-direction readiness. It is fixed at initialization;
// per-call failures are returned in each call's Result instead of being
// accumulated here.
type Status struct {
	Backend   string
	EnZhReady bool
	ZhEnReady bool
	EnZhError string
	ZhEnError string

	// OCR readiness is reported by the host application that owns the
	// recognizer; the pipeline only relays it.
	OCRReady bool
	OCRError string
}

// Engine is the pipeline facade. Not safe for concurrent calls in the
// same direction.
type Engine struct {
	cfg   Config
	batch translator.Batch
	post  *postprocess.Postprocessor
	dirs  map[internal.Direction]*resources

	ocrReady bool
	ocrError string
}

// New builds an engine, loading vocabulary models from the configured
// directories. Construction never fails: a direction whose model cannot
// be loaded is marked not ready and every call in that direction returns
// the recorded message.
func New(cfg Config, batch translator.Batch) *Engine {
	e := &Engine{
		cfg:   cfg,
		batch: batch,
		post:  postprocess.New(cfg.ExtraTerms),
		dirs:  make(map[internal.Direction]*resources),
	}
	switch e.cfg.backend() {
	case BackendNone:
		msg := ErrBackendDisabled.Error()
		e.dirs[internal.DirectionEnZh] = &resources{initErr: msg}
		e.dirs[internal.DirectionZhEn] = &resources{initErr: msg}
	case BackendNLLB:
		e.initNLLB()
	default:
		e.dirs[internal.DirectionEnZh] = loadDirection(cfg.ModelDirEnZh, nil, "")
		e.dirs[internal.DirectionZhEn] = loadDirection(cfg.ModelDirZhEn, nil, "")
	}
	return e
}

// NewWithCodec builds an engine using the given codecs for both
// directions instead of loading model files, for embedders and tests that
// bring their own tokenizer.
func NewWithCodec(cfg Config, batch translator.Batch, src, tgt vocab.Codec) *Engine {
	e := &Engine{
		cfg:   cfg,
		batch: batch,
		post:  postprocess.New(cfg.ExtraTerms),
		dirs:  make(map[internal.Direction]*resources),
	}
	enzh := &resources{src: src, tgt: tgt, ready: true}
	zhen := &resources{src: src, tgt: tgt, ready: true}
	if e.cfg.backend() == BackendNLLB {
		enzh.srcTags, enzh.tgtTag = []string{cfg.tagEn()}, cfg.tagZh()
		zhen.srcTags, zhen.tgtTag = []string{cfg.tagZh()}, cfg.tagEn()
	}
	if e.cfg.backend() == BackendNone {
		msg := ErrBackendDisabled.Error()
		enzh = &resources{initErr: msg}
		zhen = &resources{initErr: msg}
	}
	e.dirs[internal.DirectionEnZh] = enzh
	e.dirs[internal.DirectionZhEn] = zhen
	return e
}

func (e *Engine) initNLLB() {
	if e.cfg.NLLBModelDir == "" {
		msg := "nllb model directory not set"
		e.dirs[internal.DirectionEnZh] = &resources{initErr: msg}
		e.dirs[internal.DirectionZhEn] = &resources{initErr: msg}
		return
	}
	src, tgt, err := vocab.Load(e.cfg.NLLBModelDir)
	if err != nil {
		msg := err.Error()
		e.dirs[internal.DirectionEnZh] = &resources{initErr: msg}
		e.dirs[internal.DirectionZhEn] = &resources{initErr: msg}
		return
	}
	e.dirs[internal.DirectionEnZh] = &resources{
		src: src, tgt: tgt, ready: true,
		srcTags: []string{e.cfg.tagEn()}, tgtTag: e.cfg.tagZh(),
	}
	e.dirs[internal.DirectionZhEn] = &resources{
		src: src, tgt: tgt, ready: true,
		srcTags: []string{e.cfg.tagZh()}, tgtTag: e.cfg.tagEn(),
	}
}

func loadDirection(dir string, srcTags []string, tgtTag string) *resources {
	src, tgt, err := vocab.Load(dir)
	if err != nil {
		return &resources{initErr: err.Error()}
	}
	return &resources{src: src, tgt: tgt, srcTags: srcTags, tgtTag: tgtTag, ready: true}
}

// Status reports per-direction readiness as recorded at initialization.
func (e *Engine) Status() Status {
	enzh := e.dirs[internal.DirectionEnZh]
	zhen := e.dirs[internal.DirectionZhEn]
	return Status{
		Backend:   e.cfg.backend(),
		EnZhReady: enzh.ready,
		ZhEnReady: zhen.ready,
		EnZhError: enzh.initErr,
		ZhEnError: zhen.initErr,
		OCRReady:  e.ocrReady,
		OCRError:  e.ocrError,
	}
}

// SetOCRStatus records the host application's recognizer state so Status
// can report it alongside the translation directions.
func (e *Engine) SetOCRStatus(ready bool, msg string) {
	e.ocrReady = ready
	e.ocrError = msg
}

// Translate runs the full pipeline for one direction. English input gets
// the dictation-query normalizer; Chinese input is only trimmed. The
// result is empty-or-correct: any failure is flattened into Result.Err.
func (e *Engine) Translate(ctx context.Context, dir internal.Direction, text string) internal.Result {
	if dir == internal.DirectionEnZh {
		text = normalize.QueryText(text)
	} else {
		text = strings.TrimSpace(text)
	}
	if text == "" {
		return internal.Result{}
	}
	if e.cfg.backend() == BackendNone {
		return internal.Result{Err: ErrBackendDisabled.Error()}
	}

	res, ok := e.dirs[dir]
	if !ok {
		return internal.Result{Err: fmt.Sprintf("unknown direction %q", dir)}
	}
	if !res.ready {
		msg := res.initErr
		if msg == "" {
			msg = ErrBackendNotReady.Error()
		}
		return internal.Result{Err: msg}
	}

	out, err := e.translateChunked(ctx, res, text)
	if err != nil {
		return internal.Result{Err: fmt.Sprintf("%s translation failed: %v", dir, err)}
	}
	return internal.Result{Text: out}
}

// TranslateAuto picks the direction from the input script: the presence
// of CJK ideographs selects zh2en, anything else en2zh.
func (e *Engine) TranslateAuto(ctx context.Context, text string) (internal.Result, internal.Direction) {
	dir := internal.DirectionEnZh
	if script.ContainsHan(text) {
		dir = internal.DirectionZhEn
	}
	return e.Translate(ctx, dir, text), dir
}

// ProcessRecognized cleans recognized OCR text and translates it in the
// auto-detected direction. It returns the normalized source text along
// with the translation result, so callers can show both.
func (e *Engine) ProcessRecognized(ctx context.Context, raw string) (string, internal.Result) {
	source := normalize.OCRText(raw)
	if source == "" {
		return "", internal.Result{Err: "no text detected"}
	}
	if e.cfg.backend() == BackendNone {
		return source, internal.Result{}
	}
	res, _ := e.TranslateAuto(ctx, source)
	if res.Text == "" && res.Err == "" {
		res.Err = "no translation result"
	}
	return source, res
}

// TranslateTagged translates with explicit multilingual language tags.
// Unlike Translate it is a developer-facing API and returns an error when
// the multilingual backend is not enabled or not ready.
func (e *Engine) TranslateTagged(ctx context.Context, text, srcTag, tgtTag string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", nil
	}
	if e.cfg.backend() != BackendNLLB {
		return "", fmt.Errorf("%w: tagged translation requires the nllb backend", ErrBackendNotReady)
	}
	srcTag = strings.TrimSpace(srcTag)
	tgtTag = strings.TrimSpace(tgtTag)
	if srcTag == "" || tgtTag == "" {
		return "", fmt.Errorf("missing language tags")
	}

	shared := e.dirs[internal.DirectionEnZh]
	if !shared.ready {
		return "", fmt.Errorf("%w: %s", ErrBackendNotReady, shared.initErr)
	}
	tagged := &resources{
		src: shared.src, tgt: shared.tgt, ready: true,
		srcTags: []string{srcTag}, tgtTag: tgtTag,
	}
	return e.translateChunked(ctx, tagged, text)
}
