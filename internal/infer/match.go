package infer

import "github.com/strictnum/floatgen/internal/ir"

// findMatching selects the configured constraint that will hold every
// value of the computed shape. Candidates must contain the shape's set;
// the first pass additionally requires the zero exclusion to match
// exactly, the second admits targets that merely tolerate zero. With
// preferExact, a candidate whose interval equals the computed one wins
// outright (the bounded multiplication/division case). Among the rest
// the smallest admissible set wins, earliest declared on ties.
//
// The returned exact flag reports an interval-equal match; ok is false
// when no configured constraint can hold the shape at all.
func findMatching(cfg *ir.Config, s shape, preferExact bool) (name string, exact, ok bool) {
	s = s.normalize()
	if name, exact, ok = scanPool(cfg, s, preferExact, true); ok {
		return name, exact, true
	}
	return scanPool(cfg, s, preferExact, false)
}

func scanPool(cfg *ir.Config, s shape, preferExact, zExact bool) (string, bool, bool) {
	var candidates []*ir.Constraint
	for i := range cfg.Constraints {
		c := &cfg.Constraints[i]
		if zExact && c.ExcludesZero != s.excludesZero {
			continue
		}
		if !setContains(c, s) {
			continue
		}
		candidates = append(candidates, c)
	}
	if len(candidates) == 0 {
		return "", false, false
	}

	if preferExact {
		for _, c := range candidates {
			if c.ExcludesZero == s.excludesZero && boundsMatch(c, s) {
				return c.Name, true, true
			}
		}
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if strictSubsetOf(c, best) {
			best = c
		}
	}
	return best.Name, false, true
}
