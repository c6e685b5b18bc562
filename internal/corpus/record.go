package corpus

// Canonical Record field names, as they appear in the JSON schema.
const (
	FieldSource          = "source"
	FieldTransliteration = "transliteration"
	FieldTarget          = "target"
	FieldLKey            = "lKey"
	FieldWordClass       = "wordClass"
	FieldFlexCode        = "flexCode"
)

// Metadata carries provenance for one datapoint. All values are
// free-form strings; empty means unknown.
type Metadata struct {
	SourceLang  string `json:"source_lang"`
	TargetLang  string `json:"target_lang"`
	IDDatapoint string `json:"id_datapoint"`
	IDSentence  string `json:"id_sentence"`
	Language    string `json:"language"`
	Date        string `json:"date"`
	Script      string `json:"script"`
	IDTree      string `json:"id_tree"`
}

// Record is one hiero-transformer datapoint: hieroglyph graphics codes,
// transliteration and translation for a sentence or lemma, plus
// provenance metadata. The zero value is the all-empty default record.
type Record struct {
	Source          string   `json:"source"`
	Transliteration string   `json:"transliteration"`
	Target          string   `json:"target"`
	LKey            string   `json:"lKey"`
	WordClass       string   `json:"wordClass"`
	FlexCode        string   `json:"flexCode"`
	Metadata        Metadata `json:"metadata"`
}

// Field returns the value of the canonical field named by name.
// Unknown names read as empty, the same as an absent JSON key.
func (r *Record) Field(name string) string {
	switch name {
	case FieldSource:
		return r.Source
	case FieldTransliteration:
		return r.Transliteration
	case FieldTarget:
		return r.Target
	case FieldLKey:
		return r.LKey
	case FieldWordClass:
		return r.WordClass
	case FieldFlexCode:
		return r.FlexCode
	}
	return ""
}

// SetField sets the canonical field named by name. Unknown names are
// ignored; Resolve is the only producer of field names.
func (r *Record) SetField(name, value string) {
	switch name {
	case FieldSource:
		r.Source = value
	case FieldTransliteration:
		r.Transliteration = value
	case FieldTarget:
		r.Target = value
	case FieldLKey:
		r.LKey = value
	case FieldWordClass:
		r.WordClass = value
	case FieldFlexCode:
		r.FlexCode = value
	}
}
