// Package convert implements the bidirectional conversion between
// hiero-transformer JSON corpora and paired source/target text files.
//
// The forward direction applies field mapping, language filtering,
// cleaning and formatting per record and keeps the two output files
// positionally aligned: line i of the source file and line i of the
// target file always describe the same original record. Records missing
// either side are counted as skips, never errors. The reverse direction
// is a partial inverse: it rebuilds records from aligned line pairs,
// populating only the two selected fields and leaving everything the
// forward conversion discarded at its empty default.
package convert
