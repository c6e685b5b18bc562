package cleaner

import (
	"regexp"
	"strings"

	"codeberg.org/kmateva/hieroconv/internal/corpus"
)

// Cleaner normalizes raw corpus text for one field code.
type Cleaner interface {
	Clean(text string) string
}

// Func adapts a plain function to the Cleaner interface.
type Func func(string) string

// Clean implements Cleaner.
func (f Func) Clean(text string) string { return f(text) }

var (
	multiSpaceRe = regexp.MustCompile(`\s{2,}`)

	// Destroyed passages in graphics transcriptions: the bracketed
	// content is unreadable and carries no signs.
	damageRe = regexp.MustCompile(`\[[^\]]*\]`)

	// Editorial markers in transliteration and translation: the marks
	// are dropped, the restored content inside them is kept.
	editorialMarkRe = regexp.MustCompile(`[\[\]{}⸢⸣⟨⟩⸮]`)
)

// CleanGraphics normalizes hieroglyph graphics codes: destroyed
// passages are dropped and whitespace runs collapse to a single space.
func CleanGraphics(text string) string {
	text = damageRe.ReplaceAllString(text, " ")
	return collapse(text)
}

// CleanWordChar normalizes transliteration text: editorial marks are
// removed while their restored content is kept, then whitespace is
// collapsed.
func CleanWordChar(text string) string {
	text = editorialMarkRe.ReplaceAllString(text, "")
	return collapse(text)
}

// CleanTranslation normalizes translation text the same way as
// transliteration; translator bracketing is editorial, not content.
func CleanTranslation(text string) string {
	text = editorialMarkRe.ReplaceAllString(text, "")
	return collapse(text)
}

func collapse(text string) string {
	return strings.TrimSpace(multiSpaceRe.ReplaceAllString(text, " "))
}

// cleanerByCode mirrors the field-code enumeration. Codes without an
// entry have no cleaning rules.
var cleanerByCode = map[corpus.Code]Cleaner{
	corpus.CodeEgy: Func(CleanGraphics),
	corpus.CodeTnt: Func(CleanWordChar),
	corpus.CodeEn:  Func(CleanTranslation),
	corpus.CodeDe:  Func(CleanTranslation),
}

// ForCode returns the cleaner for code. Codes with no cleaning rules
// (lkey, worldClass) get the identity cleaner.
func ForCode(code corpus.Code) Cleaner {
	if c, ok := cleanerByCode[code]; ok {
		return c
	}
	return Func(func(s string) string { return s })
}
