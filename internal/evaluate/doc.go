// Package evaluate runs a pretrained model over held-out corpus data
// and scores the predictions. Pairs are extracted from corpus JSON
// files wherever both sides of the language pair are present, one
// prediction is generated per pair, and accuracy is reported as exact
// match, corpus BLEU and ROUGE-L over normalized tokens.
package evaluate
