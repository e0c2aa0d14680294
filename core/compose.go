package core

import "strings"

// composeEmbeddingText builds the single text blob an embedding is generated
// from: the summary, then every keyword, mood and theme value, joined by
// single spaces in that exact order. The order is load-bearing: the embedding
// service only ever sees this text, so changing the composition invalidates
// comparability with previously stored vectors. Absent lists contribute
// nothing.
func composeEmbeddingText(summary string, keywords, moods, themes []string) string {
	parts := make([]string, 0, 1+len(keywords)+len(moods)+len(themes))
	parts = append(parts, summary)
	parts = append(parts, keywords...)
	parts = append(parts, moods...)
	parts = append(parts, themes...)
	return strings.Join(parts, " ")
}
