package gen

import (
	"fmt"

	"golang.org/x/tools/imports"

	"github.com/strictnum/floatgen/internal/infer"
	"github.com/strictnum/floatgen/internal/ir"
)

// Generator renders a resolved configuration and its inference tables
// into Go source files. Output is a pure function of the configuration:
// the same input produces byte-identical files.
type Generator struct {
	cfg         *ir.Config
	tables      *infer.Tables
	fingerprint string
	pairs       []PairTuple
	prims       []PrimTuple
}

// New builds a Generator. The configuration must already be resolved
// and validated.
func New(cfg *ir.Config) (*Generator, error) {
	fp, err := ir.ConfigFingerprint(cfg)
	if err != nil {
		return nil, fmt.Errorf("fingerprint config: %w", err)
	}
	t := infer.Build(cfg)
	return &Generator{
		cfg:         cfg,
		tables:      t,
		fingerprint: fp,
		pairs:       PairTuples(t),
		prims:       PrimTuples(t),
	}, nil
}

// Tables exposes the inference tables backing the emission.
func (g *Generator) Tables() *infer.Tables {
	return g.tables
}

// Fingerprint returns the configuration fingerprint stamped into every
// generated file.
func (g *Generator) Fingerprint() string {
	return g.fingerprint
}

// Generate renders the full file set in a fixed order: package doc,
// sentinel errors, one file per wrapper, then aliases when configured.
// Each file is passed through the goimports formatter as a gate; an
// error there means an emitter produced malformed source.
func (g *Generator) Generate() ([]File, error) {
	var files []File
	add := func(name, content string) error {
		formatted, err := imports.Process(name, []byte(content), nil)
		if err != nil {
			return fmt.Errorf("format %s: %w", name, err)
		}
		files = append(files, File{Name: name, Content: formatted})
		return nil
	}

	if err := add("doc_gen.go", assembleDocFile(g.cfg.Package, g.fingerprint, g.docBody())); err != nil {
		return nil, err
	}
	if err := add("errors_gen.go", assembleFile(g.cfg.Package, g.fingerprint, g.errorsBody())); err != nil {
		return nil, err
	}
	for _, wt := range WrapperTuples(g.cfg) {
		name := wrapperFileName(wt)
		if err := add(name, assembleFile(g.cfg.Package, g.fingerprint, g.wrapperFileBody(wt))); err != nil {
			return nil, err
		}
	}
	if body := g.aliasesBody(); body != "" {
		if err := add("aliases_gen.go", assembleFile(g.cfg.Package, g.fingerprint, body)); err != nil {
			return nil, err
		}
	}
	return files, nil
}
