package format

import (
	"strings"

	"codeberg.org/kmateva/hieroconv/internal/corpus"
)

const (
	// wordBoundary marks the position of an original space in
	// character-separated text.
	wordBoundary = "_"
	// separator is inserted between every character of
	// character-separated text.
	separator = " "
)

// FormatGraphics formats hieroglyph graphics codes. The codes are
// already token-separated, so only surrounding whitespace is trimmed.
func FormatGraphics(text string) string {
	return strings.TrimSpace(text)
}

// FormatTransliteration formats transliteration for character-level
// tokenization: word spaces become underscores, then every remaining
// character is separated by a single space.
//
// The transform is lossy for input that already contains underscores or
// the separator character; round-trip fidelity is only guaranteed for
// text containing neither. Existing corpus files depend on this exact
// output, so the assumption is documented rather than validated.
func FormatTransliteration(text string) string {
	return Separate(strings.TrimSpace(text))
}

// UnformatGraphics reverses FormatGraphics.
func UnformatGraphics(text string) string {
	return strings.TrimSpace(text)
}

// UnformatTransliteration reverses FormatTransliteration: separators
// are removed, underscores become spaces again.
func UnformatTransliteration(text string) string {
	text = strings.ReplaceAll(strings.TrimSpace(text), separator, "")
	text = strings.ReplaceAll(text, wordBoundary, " ")
	return strings.TrimSpace(text)
}

// Format applies the forward transform for code. Codes without a
// dedicated transform are trimmed only.
func Format(text string, code corpus.Code) string {
	switch code {
	case corpus.CodeEgy:
		return FormatGraphics(text)
	case corpus.CodeTnt:
		return FormatTransliteration(text)
	default:
		return strings.TrimSpace(text)
	}
}

// Unformat reverses Format for code.
func Unformat(text string, code corpus.Code) string {
	switch code {
	case corpus.CodeEgy:
		return UnformatGraphics(text)
	case corpus.CodeTnt:
		return UnformatTransliteration(text)
	default:
		return strings.TrimSpace(text)
	}
}

// Separate replaces spaces with word-boundary underscores and inserts
// the separator between every remaining character. Unlike
// FormatTransliteration it does not trim, matching the standalone
// character-separation pass over raw lines.
func Separate(text string) string {
	text = strings.ReplaceAll(text, " ", wordBoundary)
	runes := []rune(text)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, separator)
}
