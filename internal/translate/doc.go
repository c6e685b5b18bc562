// Package translate provides model providers for generating the target
// side of a language pair from held-out corpus text. A Provider wraps
// one hosted model API; evaluation selects a provider by configuration
// and treats it as an opaque text-in, text-out collaborator.
package translate
