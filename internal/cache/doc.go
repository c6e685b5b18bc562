// Package cache persists model predictions between evaluation runs so
// an interrupted batch resumes without re-querying the model for pairs
// it has already seen.
package cache
