// Package corpus defines the hiero-transformer record schema and the
// closed set of field codes that select record fields for conversion.
// Both conversion directions resolve codes through the same table, so a
// code always maps to the same field whether reading or writing.
package corpus
