package internal_test

import (
	"testing"

	"github.com/snipglot/snipglot/internal"
)

func TestParseDirection(t *testing.T) {
	for _, s := range []string{"en2zh", "zh2en"} {
		d, err := internal.ParseDirection(s)
		if err != nil {
			t.Errorf("ParseDirection(%q) failed: %v", s, err)
		}
		if d.String() != s {
			t.Errorf("String() = %q, want %q", d.String(), s)
		}
	}
	if _, err := internal.ParseDirection("auto"); err == nil {
		t.Error("ParseDirection(\"auto\") should fail")
	}
}

func TestDirection_ISOCodes(t *testing.T) {
	if got := internal.DirectionEnZh.TargetISO(); got != "zh" {
		t.Errorf("en2zh target = %q", got)
	}
	if got := internal.DirectionEnZh.SourceISO(); got != "en" {
		t.Errorf("en2zh source = %q", got)
	}
	if got := internal.DirectionZhEn.TargetISO(); got != "en" {
		t.Errorf("zh2en target = %q", got)
	}
	if got := internal.DirectionZhEn.SourceISO(); got != "zh" {
		t.Errorf("zh2en source = %q", got)
	}
}

func TestResult_OK(t *testing.T) {
	if !(internal.Result{Text: "x"}).OK() {
		t.Error("result with text should be ok")
	}
	if !(internal.Result{}).OK() {
		t.Error("empty result should be ok")
	}
	if (internal.Result{Err: "boom"}).OK() {
		t.Error("result with error should not be ok")
	}
}
