// Package detector decides which translation direction fits a piece of
// text. The statistical detector is restricted to the two languages the
// backend serves; script-level CJK checks stay in package script.
package detector

import (
	lingua "github.com/pemistahl/lingua-go"

	"github.com/snipglot/snipglot/internal"
)

type Detector struct {
	detector lingua.LanguageDetector
}

// New builds a detector. The underlying model is expensive to construct;
// reuse the instance.
func New() *Detector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.English, lingua.Chinese).
		Build()

	return &Detector{detector: detector}
}

func (d *Detector) Detect(text string) (lingua.Language, bool) {
	if text == "" {
		return lingua.Unknown, false
	}
	return d.detector.DetectLanguageOf(text)
}

func (d *Detector) DetectISO(text string) (string, bool) {
	lang, ok := d.Detect(text)
	if !ok {
		return "", false
	}
	return lang.IsoCode639_1().String(), true
}

// Direction maps detected input language to the translation direction
// serving it. The boolean is false when detection was inconclusive and
// the caller should fall back to script-level classification.
func (d *Detector) Direction(text string) (internal.Direction, bool) {
	lang, ok := d.Detect(text)
	if !ok {
		return "", false
	}
	switch lang {
	case lingua.Chinese:
		return internal.DirectionZhEn, true
	case lingua.English:
		return internal.DirectionEnZh, true
	}
	return "", false
}
