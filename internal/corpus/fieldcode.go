package corpus

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Code selects which canonical Record field a conversion reads or writes.
type Code string

const (
	// CodeEgy selects the hieroglyph graphics codes.
	CodeEgy Code = "egy"
	// CodeTnt selects the Egyptological transliteration.
	CodeTnt Code = "tnt"
	// CodeEn selects the English translation.
	CodeEn Code = "en"
	// CodeDe selects the German translation.
	CodeDe Code = "de"
	// CodeLKey selects the lemma key.
	CodeLKey Code = "lkey"
	// CodeWordClass selects the word class. The token spells "world"
	// in existing corpus tooling; keep it for compatibility.
	CodeWordClass Code = "worldClass"
)

// ErrUnknownCode reports a field code outside the closed enumeration.
var ErrUnknownCode = errors.New("unknown field code")

// fieldByCode maps each code to the Record field it selects. Built once,
// never mutated.
var fieldByCode = map[Code]string{
	CodeEgy:       FieldSource,
	CodeTnt:       FieldTransliteration,
	CodeEn:        FieldTarget,
	CodeDe:        FieldTarget,
	CodeLKey:      FieldLKey,
	CodeWordClass: FieldWordClass,
}

// langFilterByCode restricts en/de targets to records whose metadata
// declares the matching target language.
var langFilterByCode = map[Code]string{
	CodeEn: "en",
	CodeDe: "de",
}

// Resolve returns the canonical Record field name for code.
func Resolve(code Code) (string, error) {
	field, ok := fieldByCode[code]
	if !ok {
		return "", fmt.Errorf("%w: %q (valid options: %s)",
			ErrUnknownCode, code, strings.Join(ValidCodes(), ", "))
	}
	return field, nil
}

// LangFilter returns the metadata.target_lang value required by code,
// and whether code carries such a constraint at all.
func LangFilter(code Code) (string, bool) {
	tag, ok := langFilterByCode[code]
	return tag, ok
}

// ValidCodes returns the closed code enumeration in sorted order.
func ValidCodes() []string {
	codes := make([]string, 0, len(fieldByCode))
	for c := range fieldByCode {
		codes = append(codes, string(c))
	}
	sort.Strings(codes)
	return codes
}
