package defgraph

import (
	"math"
	"math/rand/v2"
	"slices"
)

// AnnealParams configures Anneal.
type AnnealParams struct {
	T0      float64 // starting temperature
	Cooling float64 // temperature drop per step
	Bias    int     // removal moves are Bias times as likely as additions
	Seed    uint64
}

// AnnealResult is the outcome of an annealing run.
type AnnealResult struct {
	Core     []string // smallest verified core seen
	Steps    int
	Accepted int
}

// Anneal searches for a smaller core by simulated annealing, starting from
// a verified core. Each step proposes a neighbour: with probability
// Bias/(Bias+1) one random core word is removed (redrawn until the result
// verifies), otherwise a random non-core, non-free word is added. Smaller
// neighbours are always accepted, larger ones with probability exp(-1/T).
// The temperature T = T0 - step*Cooling ends the run at zero.
func (g *Graph) Anneal(core, free []string, p AnnealParams) AnnealResult {
	rng := rand.New(rand.NewPCG(p.Seed, p.Seed^0x9e3779b97f4a7c15))

	current := slices.Clone(core)
	best := slices.Clone(core)

	excluded := g.mask(core, free)
	var complement []string
	for _, k := range g.Keys() {
		if !excluded[g.index[k]] {
			complement = append(complement, k)
		}
	}

	var result AnnealResult
	for step := 1; ; step++ {
		t := p.T0 - float64(step)*p.Cooling
		if t <= 0 {
			break
		}
		result.Steps++

		next, moved, removal, ok := g.propose(rng, current, complement, free, p.Bias)
		if !ok {
			break
		}

		delta := float64(len(current) - len(next))
		if delta <= 0 && rng.Float64() > math.Exp(delta/t) {
			continue
		}

		result.Accepted++
		current = next
		if removal {
			complement = append(complement, moved)
		} else {
			complement = removeValue(complement, moved)
		}
		if len(current) < len(best) {
			best = slices.Clone(current)
		}
	}

	result.Core = best
	return result
}

// propose draws a neighbour of current. ok is false when neither move is
// possible. With an empty complement every vertex outside free is in the
// core, so any single removal verifies.
func (g *Graph) propose(rng *rand.Rand, current, complement, free []string, bias int) (next []string, moved string, removal, ok bool) {
	if len(current) == 0 && len(complement) == 0 {
		return nil, "", false, false
	}
	for {
		remove := len(complement) == 0 || (len(current) > 0 && rng.IntN(bias+1) < bias)
		if !remove {
			k := complement[rng.IntN(len(complement))]
			return append(slices.Clone(current), k), k, false, true
		}
		i := rng.IntN(len(current))
		candidate := slices.Delete(slices.Clone(current), i, i+1)
		if g.Verify(candidate, free) {
			return candidate, current[i], true, true
		}
	}
}

func removeValue(s []string, v string) []string {
	if i := slices.Index(s, v); i >= 0 {
		return slices.Delete(s, i, i+1)
	}
	return s
}
