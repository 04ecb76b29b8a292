package decode_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/snipglot/snipglot/internal/decode"
)

func TestStrip_LeadingTags(t *testing.T) {
	hyp := []string{"zho_Hans", "▁你", "好"}
	got := decode.Strip(hyp, []string{"eng_Latn", "zho_Hans"})
	want := []string{"▁你", "好"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Strip = %v, want %v", got, want)
	}
}

func TestStrip_TagsAnyOrder(t *testing.T) {
	hyp := []string{"zho_Hans", "eng_Latn", "▁x"}
	got := decode.Strip(hyp, []string{"eng_Latn", "zho_Hans"})
	if !reflect.DeepEqual(got, []string{"▁x"}) {
		t.Errorf("Strip = %v, want [▁x]", got)
	}
}

func TestStrip_TagInsideKept(t *testing.T) {
	// Only the leading run is stripped; a tag token later in the
	// hypothesis is ordinary content.
	hyp := []string{"▁a", "eng_Latn", "▁b"}
	got := decode.Strip(hyp, []string{"eng_Latn"})
	if !reflect.DeepEqual(got, hyp) {
		t.Errorf("Strip = %v, want %v", got, hyp)
	}
}

func TestStrip_Sentinels(t *testing.T) {
	hyp := []string{"__tag__", "▁a", "__other__", "▁b"}
	got := decode.Strip(hyp, nil)
	want := []string{"▁a", "▁b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Strip = %v, want %v", got, want)
	}
}

func TestStrip_Empty(t *testing.T) {
	if got := decode.Strip(nil, []string{"eng_Latn"}); got != nil {
		t.Errorf("Strip(nil) = %v, want nil", got)
	}
	if got := decode.Strip([]string{"eng_Latn"}, []string{"eng_Latn"}); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestText_NaiveFallback(t *testing.T) {
	got := decode.Text([]string{"▁Hello", "▁world", "</s>", "<pad>"}, nil)
	if got != "Hello world" {
		t.Errorf("Text = %q, want %q", got, "Hello world")
	}
}

type upperCodec struct{}

func (upperCodec) EncodePieces(text string) ([]string, error) { return []string{text}, nil }
func (upperCodec) DecodePieces(pieces []string) string {
	return strings.ToUpper(strings.Join(pieces, ""))
}

func TestText_UsesTargetCodec(t *testing.T) {
	got := decode.Text([]string{"ab", "</s>"}, upperCodec{})
	if got != "AB" {
		t.Errorf("Text = %q, want %q", got, "AB")
	}
}
