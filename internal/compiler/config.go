// Package compiler turns CUE configuration values into resolved IR
// configurations, reporting structural problems with source positions.
package compiler

import (
	"fmt"

	"cuelang.org/go/cue"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/strictnum/floatgen/internal/ir"
)

// CompileError describes a structural problem in a configuration value.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s: %s", e.Pos, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// RawConfig is a configuration exactly as declared, before resolution.
// Optional scalar fields distinguish "absent" from a declared zero value
// so that Resolve can apply defaults.
type RawConfig struct {
	Package     string
	Constraints []RawConstraint
	Types       []RawTypeDef
	Aliases     []ir.AliasDef

	ImplTraits          []string
	ImplTraitsDeclared  bool
	GenerateOptionTypes *bool
	GenerateNewConst    *bool
}

// RawConstraint is a constraint declaration prior to sign derivation and
// negation-target computation.
type RawConstraint struct {
	Name         string
	Lower        *float64
	Upper        *float64
	ExcludesZero bool
	Sign         string
	NegateTo     string
	Doc          string
}

// RawTypeDef is a wrapper-family declaration. An empty Constraints slice
// means the family is backed by the constraint sharing its name.
type RawTypeDef struct {
	Name        string
	Widths      []ir.Width
	Constraints []string
}

// CompileConfig extracts a RawConfig from a CUE value. It reports the
// first structural error encountered; semantic checks happen in Resolve.
func CompileConfig(v cue.Value) (*RawConfig, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError("config", err)
	}

	raw := &RawConfig{}

	pkg, ok, err := optionalString(v, "package")
	if err != nil {
		return nil, err
	}
	if ok {
		raw.Package = pkg
	}

	constraints := v.LookupPath(cue.ParsePath("constraints"))
	if !constraints.Exists() {
		return nil, &CompileError{
			Field:   "constraints",
			Message: "missing required field",
			Pos:     v.Pos(),
		}
	}
	iter, err := constraints.List()
	if err != nil {
		return nil, &CompileError{
			Field:   "constraints",
			Message: "must be a list",
			Pos:     constraints.Pos(),
		}
	}
	for iter.Next() {
		rc, cerr := compileConstraint(iter.Value())
		if cerr != nil {
			return nil, cerr
		}
		raw.Constraints = append(raw.Constraints, *rc)
	}

	types := v.LookupPath(cue.ParsePath("constraint_types"))
	if types.Exists() {
		iter, err := types.List()
		if err != nil {
			return nil, &CompileError{
				Field:   "constraint_types",
				Message: "must be a list",
				Pos:     types.Pos(),
			}
		}
		for iter.Next() {
			td, terr := compileTypeDef(iter.Value())
			if terr != nil {
				return nil, terr
			}
			raw.Types = append(raw.Types, *td)
		}
	}

	aliases := v.LookupPath(cue.ParsePath("type_aliases"))
	if aliases.Exists() {
		iter, err := aliases.List()
		if err != nil {
			return nil, &CompileError{
				Field:   "type_aliases",
				Message: "must be a list",
				Pos:     aliases.Pos(),
			}
		}
		for iter.Next() {
			ad, aerr := compileAlias(iter.Value())
			if aerr != nil {
				return nil, aerr
			}
			raw.Aliases = append(raw.Aliases, *ad)
		}
	}

	if err := compileFeatures(v, raw); err != nil {
		return nil, err
	}

	return raw, nil
}

func compileConstraint(v cue.Value) (*RawConstraint, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError("constraints", err)
	}

	rc := &RawConstraint{}

	name, ok, err := optionalString(v, "name")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &CompileError{
			Field:   "constraints.name",
			Message: "missing required field",
			Pos:     v.Pos(),
		}
	}
	rc.Name = name

	if rc.Lower, err = optionalFloat(v, "lower"); err != nil {
		return nil, err
	}
	if rc.Upper, err = optionalFloat(v, "upper"); err != nil {
		return nil, err
	}

	excl, _, err := optionalBool(v, "excludes_zero")
	if err != nil {
		return nil, err
	}
	rc.ExcludesZero = excl

	if rc.Sign, _, err = optionalString(v, "sign"); err != nil {
		return nil, err
	}
	if rc.NegateTo, _, err = optionalString(v, "negate_to"); err != nil {
		return nil, err
	}
	if rc.Doc, _, err = optionalString(v, "doc"); err != nil {
		return nil, err
	}

	return rc, nil
}

func compileTypeDef(v cue.Value) (*RawTypeDef, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError("constraint_types", err)
	}

	td := &RawTypeDef{}

	name, ok, err := optionalString(v, "name")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &CompileError{
			Field:   "constraint_types.name",
			Message: "missing required field",
			Pos:     v.Pos(),
		}
	}
	td.Name = name

	widths := v.LookupPath(cue.ParsePath("widths"))
	if !widths.Exists() {
		return nil, &CompileError{
			Field:   "constraint_types.widths",
			Message: "missing required field",
			Pos:     v.Pos(),
		}
	}
	witer, err := widths.List()
	if err != nil {
		return nil, &CompileError{
			Field:   "constraint_types.widths",
			Message: "must be a list",
			Pos:     widths.Pos(),
		}
	}
	for witer.Next() {
		n, err := witer.Value().Int64()
		if err != nil {
			return nil, &CompileError{
				Field:   "constraint_types.widths",
				Message: "entries must be integers",
				Pos:     witer.Value().Pos(),
			}
		}
		td.Widths = append(td.Widths, ir.Width(n))
	}

	comps := v.LookupPath(cue.ParsePath("constraints"))
	if comps.Exists() {
		citer, err := comps.List()
		if err != nil {
			return nil, &CompileError{
				Field:   "constraint_types.constraints",
				Message: "must be a list",
				Pos:     comps.Pos(),
			}
		}
		for citer.Next() {
			s, err := citer.Value().String()
			if err != nil {
				return nil, &CompileError{
					Field:   "constraint_types.constraints",
					Message: "entries must be strings",
					Pos:     citer.Value().Pos(),
				}
			}
			td.Constraints = append(td.Constraints, s)
		}
	}

	return td, nil
}

func compileAlias(v cue.Value) (*ir.AliasDef, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError("type_aliases", err)
	}

	canonical, ok, err := optionalString(v, "canonical")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &CompileError{
			Field:   "type_aliases.canonical",
			Message: "missing required field",
			Pos:     v.Pos(),
		}
	}
	alias, ok, err := optionalString(v, "alias")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &CompileError{
			Field:   "type_aliases.alias",
			Message: "missing required field",
			Pos:     v.Pos(),
		}
	}

	return &ir.AliasDef{Canonical: canonical, Alias: alias}, nil
}

func compileFeatures(v cue.Value, raw *RawConfig) error {
	features := v.LookupPath(cue.ParsePath("features"))
	if !features.Exists() {
		return nil
	}
	if err := features.Err(); err != nil {
		return formatCUEError("features", err)
	}

	traits := features.LookupPath(cue.ParsePath("impl_traits"))
	if traits.Exists() {
		raw.ImplTraitsDeclared = true
		titer, err := traits.List()
		if err != nil {
			return &CompileError{
				Field:   "features.impl_traits",
				Message: "must be a list",
				Pos:     traits.Pos(),
			}
		}
		for titer.Next() {
			s, err := titer.Value().String()
			if err != nil {
				return &CompileError{
					Field:   "features.impl_traits",
					Message: "entries must be strings",
					Pos:     titer.Value().Pos(),
				}
			}
			raw.ImplTraits = append(raw.ImplTraits, s)
		}
	}

	opt, ok, err := optionalBool(features, "generate_option_types")
	if err != nil {
		return err
	}
	if ok {
		raw.GenerateOptionTypes = &opt
	}
	nc, ok, err := optionalBool(features, "generate_new_const")
	if err != nil {
		return err
	}
	if ok {
		raw.GenerateNewConst = &nc
	}

	return nil
}

func optionalString(v cue.Value, field string) (string, bool, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return "", false, nil
	}
	s, err := fv.String()
	if err != nil {
		return "", false, &CompileError{
			Field:   field,
			Message: "must be a string",
			Pos:     fv.Pos(),
		}
	}
	return s, true, nil
}

func optionalFloat(v cue.Value, field string) (*float64, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return nil, nil
	}
	f, err := fv.Float64()
	if err != nil {
		return nil, &CompileError{
			Field:   field,
			Message: "must be a number",
			Pos:     fv.Pos(),
		}
	}
	return &f, nil
}

func optionalBool(v cue.Value, field string) (bool, bool, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return false, false, nil
	}
	b, err := fv.Bool()
	if err != nil {
		return false, false, &CompileError{
			Field:   field,
			Message: "must be a boolean",
			Pos:     fv.Pos(),
		}
	}
	return b, true, nil
}

func formatCUEError(field string, err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return &CompileError{Field: field, Message: err.Error()}
	}
	first := errs[0]
	ce := &CompileError{Field: field, Message: first.Error()}
	if positions := cueerrors.Positions(first); len(positions) > 0 {
		ce.Pos = positions[0]
	}
	return ce
}
