package corpus

import (
	"errors"
	"reflect"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		code  Code
		field string
	}{
		{CodeEgy, "source"},
		{CodeTnt, "transliteration"},
		{CodeEn, "target"},
		{CodeDe, "target"},
		{CodeLKey, "lKey"},
		{CodeWordClass, "wordClass"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			field, err := Resolve(tt.code)
			if err != nil {
				t.Fatalf("Resolve(%q) failed: %v", tt.code, err)
			}
			if field != tt.field {
				t.Errorf("Resolve(%q) = %q, want %q", tt.code, field, tt.field)
			}
		})
	}
}

func TestResolve_Stable(t *testing.T) {
	first, err := Resolve(CodeTnt)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	second, err := Resolve(CodeTnt)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if first != second {
		t.Errorf("Resolve not stable: %q then %q", first, second)
	}
}

func TestResolve_UnknownCode(t *testing.T) {
	for _, code := range []Code{"", "fr", "hieroglyphs", "wordClass"} {
		_, err := Resolve(code)
		if err == nil {
			t.Errorf("Resolve(%q) succeeded, want error", code)
			continue
		}
		if !errors.Is(err, ErrUnknownCode) {
			t.Errorf("Resolve(%q) error = %v, want ErrUnknownCode", code, err)
		}
	}
}

func TestLangFilter(t *testing.T) {
	tests := []struct {
		code     Code
		tag      string
		filtered bool
	}{
		{CodeEn, "en", true},
		{CodeDe, "de", true},
		{CodeEgy, "", false},
		{CodeTnt, "", false},
		{CodeLKey, "", false},
		{CodeWordClass, "", false},
	}

	for _, tt := range tests {
		tag, ok := LangFilter(tt.code)
		if ok != tt.filtered {
			t.Errorf("LangFilter(%q) ok = %v, want %v", tt.code, ok, tt.filtered)
		}
		if tag != tt.tag {
			t.Errorf("LangFilter(%q) = %q, want %q", tt.code, tag, tt.tag)
		}
	}
}

func TestValidCodes(t *testing.T) {
	want := []string{"de", "egy", "en", "lkey", "tnt", "worldClass"}
	if got := ValidCodes(); !reflect.DeepEqual(got, want) {
		t.Errorf("ValidCodes() = %v, want %v", got, want)
	}
}
