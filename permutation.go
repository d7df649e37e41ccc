package chachagen

import (
	"slices"
)

// fisherYates runs "steps" iterations of the Fisher-Yates shuffle from
// the end of seq towards its beginning, in place.
func fisherYates[T any](g *Generator, seq []T, steps int) {
	j := len(seq)
	for selection := 0; selection < steps; selection++ {
		k := int(g.RandUint(uint64(j - 1)))
		seq[k], seq[j-1] = seq[j-1], seq[k]
		j--
	}
}

// PartialShuffle runs the first "steps" iterations of the Fisher-Yates
// shuffle on seq (in place) and returns the selected elements, which
// are the last "steps" elements of seq, ordered from the first chosen to
// the last chosen.
//
// steps must be within [1, len(seq)-1].
func PartialShuffle[T any](g *Generator, seq []T, steps int) ([]T, error) {
	n := len(seq)
	if steps <= 0 || steps > n-1 {
		return nil, newErrInvalidSteps(steps, n)
	}
	fisherYates(g, seq, steps)
	result := make([]T, steps)
	for i := range result {
		result[i] = seq[n-1-i]
	}
	return result, nil
}

// Shuffle permutes seq in place and returns it.
func Shuffle[T any](g *Generator, seq []T) []T {
	fisherYates(g, seq, len(seq)-1)
	return seq
}

// Sample returns sampleSize distinct elements of seq (seq itself is not
// modified).
//
// If orderMatters is true the result is in the order of selection, so
// it may be used to sequentially pick elements. Otherwise, for samples
// larger than half of seq the complement is drawn instead (less
// randomness is used) and the elements keep their original order.
//
// sampleSize must be within [1, len(seq)].
func Sample[T any](g *Generator, seq []T, sampleSize int, orderMatters bool) ([]T, error) {
	n := len(seq)
	if sampleSize <= 0 || sampleSize > n {
		return nil, newErrInvalidSampleSize(sampleSize, n)
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	var indicesSample []int
	switch {
	case sampleSize == n:
		if orderMatters {
			Shuffle(g, indices)
			slices.Reverse(indices)
		}
		indicesSample = indices
	case sampleSize*2 <= n || orderMatters:
		// 1 <= sampleSize <= n-1 here
		fisherYates(g, indices, sampleSize)
		indicesSample = indices[n-sampleSize:]
		slices.Reverse(indicesSample)
	default:
		antiSize := n - sampleSize
		fisherYates(g, indices, antiSize)
		excluded := make(map[int]struct{}, antiSize)
		for _, idx := range indices[n-antiSize:] {
			excluded[idx] = struct{}{}
		}
		indicesSample = make([]int, 0, sampleSize)
		for idx := 0; idx < n; idx++ {
			if _, ok := excluded[idx]; ok {
				continue
			}
			indicesSample = append(indicesSample, idx)
		}
	}

	result := make([]T, len(indicesSample))
	for i, idx := range indicesSample {
		result[i] = seq[idx]
	}
	return result, nil
}

// Choice returns a uniformly chosen element of seq.
func Choice[T any](g *Generator, seq []T) (result T, err error) {
	if len(seq) == 0 {
		return result, newErrEmptySequence()
	}
	return seq[g.RandUint(uint64(len(seq)-1))], nil
}

// Choices returns "count" elements of seq chosen independently (with
// replacement), so the result may contain duplicates.
//
// count must be within [1, len(seq)-1].
func Choices[T any](g *Generator, seq []T, count int) ([]T, error) {
	n := len(seq)
	if count <= 0 || count > n-1 {
		return nil, newErrInvalidChoicesCount(count, n)
	}
	result := make([]T, count)
	for i := range result {
		result[i] = seq[g.RandUint(uint64(n-1))]
	}
	return result, nil
}

// WeightedChoice returns an element of seq chosen with probability
// weights[i]/sum(weights). Elements with a zero weight are never chosen.
func WeightedChoice[T any](g *Generator, seq []T, weights []uint64) (result T, err error) {
	if len(seq) == 0 {
		return result, newErrEmptySequence()
	}
	if len(weights) != len(seq) {
		return result, newErrInvalidWeights("the amount of weights does not match the amount of elements")
	}
	var total uint64
	for _, weight := range weights {
		if total+weight < total {
			return result, newErrInvalidWeights("the sum of weights overflows uint64")
		}
		total += weight
	}
	if total == 0 {
		return result, newErrInvalidWeights("the sum of weights is zero")
	}

	r := g.RandUint(total - 1)
	for i, weight := range weights {
		if r < weight {
			return seq[i], nil
		}
		r -= weight
	}
	panic("should not happen")
}
