package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DomainConfig is the domain prefix for configuration fingerprints.
// The version suffix enables future algorithm migration.
const DomainConfig = "floatgen/config/v1"

// hashWithDomain computes SHA-256 with domain separation.
// Format: SHA256(domain + 0x00 + data). The null byte prevents
// domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// ConfigFingerprint computes a content-addressed fingerprint of a
// compiled configuration. Two configurations fingerprint equal iff they
// generate identical packages: constraint order, bounds, signs, negation
// targets, families, aliases, and features all participate.
func ConfigFingerprint(cfg *Config) (string, error) {
	obj := map[string]any{
		"version":     ConfigVersion,
		"package":     cfg.Package,
		"constraints": canonicalConstraints(cfg.Constraints),
		"types":       canonicalTypes(cfg.Types),
		"aliases":     canonicalAliases(cfg.Aliases),
		"features": map[string]any{
			"impl_traits":           canonicalStrings(cfg.Features.ImplTraits),
			"generate_option_types": cfg.Features.GenerateOptionTypes,
			"generate_new_const":    cfg.Features.GenerateNewConst,
		},
	}

	canonical, err := MarshalCanonical(obj)
	if err != nil {
		return "", fmt.Errorf("ConfigFingerprint: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainConfig, canonical), nil
}

// MustConfigFingerprint is like ConfigFingerprint but panics on error.
// Use only in tests or when the config is known to be valid.
func MustConfigFingerprint(cfg *Config) string {
	fp, err := ConfigFingerprint(cfg)
	if err != nil {
		panic(err)
	}
	return fp
}

func canonicalConstraints(cs []Constraint) []any {
	out := make([]any, 0, len(cs))
	for i := range cs {
		c := &cs[i]
		m := map[string]any{
			"name":          c.Name,
			"excludes_zero": c.ExcludesZero,
			"sign":          string(c.Sign),
		}
		if c.Lower != nil {
			m["lower"] = *c.Lower
		}
		if c.Upper != nil {
			m["upper"] = *c.Upper
		}
		if c.NegateTo != "" {
			m["negate_to"] = c.NegateTo
		}
		out = append(out, m)
	}
	return out
}

func canonicalTypes(ts []TypeDef) []any {
	out := make([]any, 0, len(ts))
	for _, t := range ts {
		widths := make([]any, 0, len(t.Widths))
		for _, w := range t.Widths {
			widths = append(widths, int(w))
		}
		out = append(out, map[string]any{
			"name":        t.Name,
			"widths":      widths,
			"constraints": canonicalStrings(t.Constraints),
		})
	}
	return out
}

func canonicalAliases(as []AliasDef) []any {
	out := make([]any, 0, len(as))
	for _, a := range as {
		out = append(out, map[string]any{
			"canonical": a.Canonical,
			"alias":     a.Alias,
		})
	}
	return out
}

func canonicalStrings(ss []string) []any {
	out := make([]any, 0, len(ss))
	for _, s := range ss {
		out = append(out, s)
	}
	return out
}
