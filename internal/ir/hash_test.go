package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fingerprintConfig() *Config {
	return &Config{
		Package: "strictfloat",
		Constraints: []Constraint{
			{Name: "Fin", Sign: SignAny, NegateTo: "Fin"},
			{Name: "Positive", Lower: Bound(0), Sign: SignPositive, NegateTo: "Negative"},
			{Name: "Negative", Upper: Bound(0), Sign: SignNegative, NegateTo: "Positive"},
		},
		Types: []TypeDef{
			{Name: "Fin", Widths: []Width{Width32, Width64}, Constraints: []string{"Fin"}},
			{Name: "Positive", Widths: []Width{Width32, Width64}, Constraints: []string{"Positive"}},
			{Name: "Negative", Widths: []Width{Width32, Width64}, Constraints: []string{"Negative"}},
		},
		Features: Features{
			ImplTraits:       AllTraits(),
			GenerateNewConst: true,
		},
	}
}

func TestConfigFingerprintStable(t *testing.T) {
	cfg := fingerprintConfig()

	first, err := ConfigFingerprint(cfg)
	require.NoError(t, err)
	assert.Len(t, first, 64) // hex SHA-256

	for i := 0; i < 8; i++ {
		again, err := ConfigFingerprint(cfg)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestConfigFingerprintSensitivity(t *testing.T) {
	base := MustConfigFingerprint(fingerprintConfig())

	t.Run("bound change", func(t *testing.T) {
		cfg := fingerprintConfig()
		cfg.Constraints[1].Lower = Bound(0.5)
		assert.NotEqual(t, base, MustConfigFingerprint(cfg))
	})

	t.Run("constraint order change", func(t *testing.T) {
		cfg := fingerprintConfig()
		cfg.Constraints[1], cfg.Constraints[2] = cfg.Constraints[2], cfg.Constraints[1]
		assert.NotEqual(t, base, MustConfigFingerprint(cfg))
	})

	t.Run("feature change", func(t *testing.T) {
		cfg := fingerprintConfig()
		cfg.Features.GenerateOptionTypes = true
		assert.NotEqual(t, base, MustConfigFingerprint(cfg))
	})

	t.Run("package change", func(t *testing.T) {
		cfg := fingerprintConfig()
		cfg.Package = "other"
		assert.NotEqual(t, base, MustConfigFingerprint(cfg))
	})

	t.Run("width change", func(t *testing.T) {
		cfg := fingerprintConfig()
		cfg.Types[0].Widths = []Width{Width64}
		assert.NotEqual(t, base, MustConfigFingerprint(cfg))
	})
}
