package search

import (
	"fmt"
	"math"
	"sort"

	"github.com/poiesic/melodex/core"
)

// DefaultTopK is the number of results returned when the caller does not
// specify one at the command surface. Rank itself always takes k explicitly.
const DefaultTopK = 5

// CosineSimilarity computes the cosine similarity of two vectors:
// dot(a,b) / (|a|*|b|). Accumulation is done in float64 to keep scores
// stable for long vectors. Vectors of different lengths are an
// ErrDimensionMismatch, never a silent partial comparison. If either vector
// has zero magnitude the similarity is 0 by policy, so NaN can never reach
// a ranked result.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		av := float64(a[i])
		bv := float64(b[i])
		dot += av * bv
		normA += av * av
		normB += bv * bv
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// Rank scores every corpus record against the query embedding and returns
// the top k by descending cosine similarity. Ties keep corpus order (stable
// sort), so results are deterministic. The result length is min(k, len(corpus));
// k <= 0 yields an empty result. Complexity is O(N*D) over N records - a
// deliberate linear scan, no index structures.
func Rank(query []float32, corpus []*core.MediaRecord, k int) ([]*core.SearchResult, error) {
	results := make([]*core.SearchResult, 0, len(corpus))
	for _, record := range corpus {
		score, err := CosineSimilarity(query, record.Embedding)
		if err != nil {
			return nil, fmt.Errorf("record %q: %w", record.SourceKey, err)
		}
		results = append(results, &core.SearchResult{
			Record: record,
			Score:  score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if k < 0 {
		k = 0
	}
	if len(results) > k {
		results = results[:k]
	}
	return results, nil
}
