// Package separate implements the standalone character-separation pass
// over a line-oriented text file, producing the same representation the
// transliteration formatter emits but without any cleaning or trimming.
package separate
