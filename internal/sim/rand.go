package sim

import "math/rand/v2"

// Rand is the random source the engine draws from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns a deterministic PCG-backed source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// pick draws an index with probability proportional to weights. Non-positive
// totals fall back to a uniform draw.
func pick(rng Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return rng.IntN(len(weights))
	}
	target := rng.Float64() * total
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		target -= w
		if target < 0 {
			return i
		}
	}
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return len(weights) - 1
}

// chance reports a Bernoulli draw with probability p.
func chance(rng Rand, p float64) bool {
	return rng.Float64() < p
}

// binomial counts successes in n Bernoulli(p) trials.
func binomial(rng Rand, n int, p float64) int {
	if n <= 0 || p <= 0 {
		return 0
	}
	if p >= 1 {
		return n
	}
	k := 0
	for i := 0; i < n; i++ {
		if rng.Float64() < p {
			k++
		}
	}
	return k
}

// multinomial splits n trials across weights by conditional binomials.
func multinomial(rng Rand, n int, weights []float64) []int {
	out := make([]int, len(weights))
	if n <= 0 || len(weights) == 0 {
		return out
	}
	remaining := 0.0
	for _, w := range weights {
		if w > 0 {
			remaining += w
		}
	}
	if remaining <= 0 {
		for i := 0; i < n; i++ {
			out[rng.IntN(len(weights))]++
		}
		return out
	}
	left := n
	last := -1
	for i, w := range weights {
		if w > 0 {
			last = i
		}
	}
	for i, w := range weights {
		if left == 0 {
			break
		}
		if w <= 0 {
			continue
		}
		if i == last {
			out[i] = left
			break
		}
		k := binomial(rng, left, w/remaining)
		out[i] = k
		left -= k
		remaining -= w
	}
	return out
}
