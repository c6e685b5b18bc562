// Package format implements the paired per-field-code line transforms
// between cleaned corpus text and the text-file representation used for
// sequence-to-sequence training. For the egy and tnt codes, Format and
// Unformat are exact inverses on text containing neither underscores
// nor the separator character.
package format
