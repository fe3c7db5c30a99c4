// Package normalisers groups the text normalisation stages of the
// pipeline. Each subpackage cleans one class of raw input into plain
// text that the classifier and segmenter stages can work on.
package normalisers
