package gen

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strictnum/floatgen/internal/compiler"
	"github.com/strictnum/floatgen/internal/infer"
	"github.com/strictnum/floatgen/internal/ir"
)

// tinyConfig is a two-family configuration kept small enough to golden
// its full generated output.
func tinyConfig(t *testing.T) *ir.Config {
	t.Helper()
	raw := &compiler.RawConfig{
		Package: "tinyfloat",
		Constraints: []compiler.RawConstraint{
			{Name: "Fin", Doc: "a finite value: NaN and infinities are rejected"},
			{Name: "Unit", Lower: ir.Bound(0), Upper: ir.Bound(1), Doc: "a finite value in [0, 1]"},
		},
		Types: []compiler.RawTypeDef{
			{Name: "Fin", Widths: []ir.Width{ir.Width64}},
			{Name: "Unit", Widths: []ir.Width{ir.Width64}},
		},
	}
	cfg, errs := compiler.Resolve(raw)
	require.Empty(t, errs)
	return cfg
}

func TestSnake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Fin", "fin"},
		{"Positive", "positive"},
		{"NonZeroPositive", "non_zero_positive"},
		{"NegativeNormalized", "negative_normalized"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, snake(tt.in), tt.in)
	}
}

func TestWrapperFileName(t *testing.T) {
	wt := WrapperTuple{Width: ir.Width32, Constraint: "NonZero", TypeName: "NonZeroF32"}
	assert.Equal(t, "non_zero_f32_gen.go", wrapperFileName(wt))

	wt = WrapperTuple{Width: ir.Width64, Constraint: "Symmetric", TypeName: "SymmetricF64"}
	assert.Equal(t, "symmetric_f64_gen.go", wrapperFileName(wt))
}

func TestAssembleFileImports(t *testing.T) {
	one := assembleFile("strictfloat", "sha256:abc", "func f() { _ = math.Pi }\n")
	assert.Contains(t, one, "import \"math\"")
	assert.NotContains(t, one, "import (")

	two := assembleFile("strictfloat", "sha256:abc", "func f() error { _ = math.Pi; return errors.New(\"x\") }\n")
	assert.Contains(t, two, "import (")
	assert.Contains(t, two, "\t\"errors\"")
	assert.Contains(t, two, "\t\"math\"")

	none := assembleFile("strictfloat", "sha256:abc", "type T struct{ v float64 }\n")
	assert.NotContains(t, none, "import")
	assert.Contains(t, none, "// Code generated by floatgen. DO NOT EDIT.")
	assert.Contains(t, none, "// Config fingerprint: sha256:abc")
}

func TestPairTuplesDefault(t *testing.T) {
	tables := infer.Build(compiler.DefaultConfig())
	pairs := PairTuples(tables)

	// 2 widths, 9 lhs, 4 ops, 9 rhs; the default pool always has an
	// enclosing result, so no pair is skipped.
	require.Len(t, pairs, 648)

	assert.Equal(t, ir.Width32, pairs[0].Width)
	assert.Equal(t, "Fin", pairs[0].Lhs)
	assert.Equal(t, "Fin", pairs[0].Rhs)
	assert.Equal(t, ir.OpAdd, pairs[0].Op)
	assert.Equal(t, "Add", pairs[0].Method)

	byKey := map[string]PairTuple{}
	for _, p := range pairs {
		if p.Width == ir.Width64 {
			byKey[p.Lhs+" "+string(p.Op)+" "+p.Rhs] = p
		}
	}

	tests := []struct {
		key    string
		method string
		output string
		safe   bool
	}{
		{"Normalized add Normalized", "Add", "Positive", false},
		{"Positive add Negative", "AddNegative", "Fin", true},
		{"Normalized sub Normalized", "Sub", "Symmetric", true},
		{"Normalized mul Normalized", "Mul", "Normalized", true},
		{"NegativeNormalized mul NegativeNormalized", "Mul", "Normalized", true},
		{"Symmetric mul Symmetric", "Mul", "Symmetric", true},
		{"NonZero mul NonZero", "Mul", "NonZero", false},
		{"NonZero add NonZero", "Add", "Fin", false},
		{"Fin div Fin", "Div", "Fin", false},
		{"NonZeroPositive div NonZeroPositive", "Div", "NonZeroPositive", false},
	}
	for _, tt := range tests {
		p, ok := byKey[tt.key]
		require.True(t, ok, tt.key)
		assert.Equal(t, tt.method, p.Method, tt.key)
		assert.Equal(t, tt.output, p.Result.Output, tt.key)
		assert.Equal(t, tt.safe, p.Result.Safe, tt.key)
	}
}

func TestPrimTuplesDefault(t *testing.T) {
	tables := infer.Build(compiler.DefaultConfig())
	prims := PrimTuples(tables)

	// 2 widths, 9 wrappers, 4 ops, both operand orders.
	require.Len(t, prims, 144)

	for _, p := range prims {
		assert.Equal(t, "Fin", p.Result.Output, p.Name)
		assert.False(t, p.Result.Safe, p.Name)
	}

	assert.Equal(t, "AddFloat32", prims[0].Name)
	assert.False(t, prims[0].PrimitiveLeft)
	assert.Equal(t, "Float32AddFinF32", prims[1].Name)
	assert.True(t, prims[1].PrimitiveLeft)
}

func TestWrapperTuplesDefault(t *testing.T) {
	wts := WrapperTuples(compiler.DefaultConfig())
	require.Len(t, wts, 18)
	assert.Equal(t, WrapperTuple{Width: ir.Width32, Constraint: "Fin", TypeName: "FinF32"}, wts[0])
	assert.Equal(t, WrapperTuple{Width: ir.Width64, Constraint: "Fin", TypeName: "FinF64"}, wts[9])
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := compiler.DefaultConfig()

	g1, err := New(cfg)
	require.NoError(t, err)
	first, err := g1.Generate()
	require.NoError(t, err)

	g2, err := New(cfg)
	require.NoError(t, err)
	second, err := g2.Generate()
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Name, second[i].Name)
		assert.Equal(t, string(first[i].Content), string(second[i].Content), first[i].Name)
	}
}

func TestGenerateDefaultFileSet(t *testing.T) {
	g, err := New(compiler.DefaultConfig())
	require.NoError(t, err)
	files, err := g.Generate()
	require.NoError(t, err)

	// doc, errors, 18 wrappers; no aliases configured.
	require.Len(t, files, 20)
	assert.Equal(t, "doc_gen.go", files[0].Name)
	assert.Equal(t, "errors_gen.go", files[1].Name)
	assert.Equal(t, "fin_f32_gen.go", files[2].Name)
	assert.Equal(t, "symmetric_f64_gen.go", files[19].Name)

	fp := g.Fingerprint()
	for _, f := range files {
		content := string(f.Content)
		assert.True(t, strings.HasPrefix(content, "// Code generated by floatgen. DO NOT EDIT.\n"), f.Name)
		assert.Contains(t, content, "// Config fingerprint: "+fp, f.Name)
	}
}

func TestGenerateGoldenTiny(t *testing.T) {
	g, err := New(tinyConfig(t))
	require.NoError(t, err)
	files, err := g.Generate()
	require.NoError(t, err)

	require.Len(t, files, 4)

	gold := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	for _, f := range files {
		gold.Assert(t, "tiny_"+f.Name, f.Content)
	}
}

func TestGenerateTraitSubsetSelfContained(t *testing.T) {
	raw := &compiler.RawConfig{
		Package: "tinyfloat",
		Constraints: []compiler.RawConstraint{
			{Name: "Fin", Doc: "a finite value: NaN and infinities are rejected"},
		},
		Types: []compiler.RawTypeDef{
			{Name: "Fin", Widths: []ir.Width{ir.Width64}},
		},
		ImplTraits:         []string{ir.TraitEquality, ir.TraitAdd},
		ImplTraitsDeclared: true,
	}
	cfg, errs := compiler.Resolve(raw)
	require.Empty(t, errs)

	g, err := New(cfg)
	require.NoError(t, err)
	files, err := g.Generate()
	require.NoError(t, err)
	require.Len(t, files, 3)

	var wrapper string
	for _, f := range files {
		if f.Name == "fin_f64_gen.go" {
			wrapper = string(f.Content)
		}
	}
	require.NotEmpty(t, wrapper)

	// Without the display trait the marshal surface formats inline
	// instead of calling a String method that was never emitted.
	assert.Contains(t, wrapper, "func (x FinF64) MarshalJSON()")
	assert.Contains(t, wrapper, "return []byte(strconv.FormatFloat(x.v, 'g', -1, 64)), nil")
	assert.NotContains(t, wrapper, "func (x FinF64) String()")
	assert.NotContains(t, wrapper, ".String()")

	// Without the ordering traits no comparison method is referenced.
	assert.NotContains(t, wrapper, "Cmp")
	assert.Contains(t, wrapper, "func (x FinF64) Equal(o FinF64) bool")
}

func TestGenerateDisplaySubsetKeepsStringDelegation(t *testing.T) {
	raw := &compiler.RawConfig{
		Package: "tinyfloat",
		Constraints: []compiler.RawConstraint{
			{Name: "Fin", Doc: "a finite value: NaN and infinities are rejected"},
		},
		Types: []compiler.RawTypeDef{
			{Name: "Fin", Widths: []ir.Width{ir.Width64}},
		},
		ImplTraits:         []string{ir.TraitDisplay, ir.TraitAdd},
		ImplTraitsDeclared: true,
	}
	cfg, errs := compiler.Resolve(raw)
	require.Empty(t, errs)

	g, err := New(cfg)
	require.NoError(t, err)
	files, err := g.Generate()
	require.NoError(t, err)

	var wrapper string
	for _, f := range files {
		if f.Name == "fin_f64_gen.go" {
			wrapper = string(f.Content)
		}
	}
	require.NotEmpty(t, wrapper)
	assert.Contains(t, wrapper, "func (x FinF64) String() string")
	assert.Contains(t, wrapper, "return []byte(x.String()), nil")
}
