package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/strictnum/floatgen/internal/ir"
)

// toCanonicalMap converts a Result to map[string]any for canonical JSON
// serialization. Passing checks omit their detail so golden files stay
// stable across error-message wording changes.
func (r *Result) toCanonicalMap() map[string]any {
	checks := make([]any, len(r.Checks))
	for i, ck := range r.Checks {
		status := "pass"
		if !ck.Pass {
			status = "fail"
		}
		m := map[string]any{
			"index":  ck.Index,
			"kind":   ck.Kind,
			"status": status,
		}
		if !ck.Pass {
			m["detail"] = ck.Detail
		}
		checks[i] = m
	}
	return map[string]any{
		"scenario": r.Scenario,
		"checks":   checks,
	}
}

// AssertGolden compares a scenario result against the golden file
// testdata/golden/{name}.golden. Regenerate with:
//
//	go test ./internal/harness -update
func AssertGolden(t *testing.T, name string, result *Result) {
	t.Helper()

	data, err := ir.MarshalCanonical(result.toCanonicalMap())
	if err != nil {
		t.Fatalf("marshal result: %v", err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
}
