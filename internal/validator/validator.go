// Package validator checks that a translation result is written in the
// direction's target language.
package validator

import (
	"fmt"
	"strings"

	"github.com/snipglot/snipglot/internal"
	"github.com/snipglot/snipglot/internal/detector"
)

// minValidationLength is the minimum rune count required to attempt
// language detection. Shorter texts produce unreliable results and are
// accepted without validation.
const minValidationLength = 20

// Validator checks translation output against the expected direction.
// The underlying language detector is expensive to build; reuse the
// instance.
type Validator struct {
	det *detector.Detector
}

func New() *Validator {
	return &Validator{det: detector.New()}
}

// IsValid returns true when translatedText appears to be written in the
// target language of dir.
//
// Short texts and texts whose language cannot be determined pass without
// error. When the detected language differs the returned error names both
// codes.
func (v *Validator) IsValid(translatedText string, dir internal.Direction) (bool, error) {
	text := strings.TrimSpace(translatedText)
	if text == "" {
		return false, fmt.Errorf("translation is empty")
	}

	// Detector is unreliable for very short texts; skip validation.
	if len([]rune(text)) < minValidationLength {
		return true, nil
	}

	detected, ok := v.det.DetectISO(text)
	if !ok {
		// Ambiguous language, cannot validate; pass through.
		return true, nil
	}

	if !strings.EqualFold(detected, dir.TargetISO()) {
		return false, fmt.Errorf("expected %s but detected %s", dir.TargetISO(), strings.ToLower(detected))
	}

	return true, nil
}
