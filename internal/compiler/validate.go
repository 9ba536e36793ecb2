package compiler

import (
	"fmt"
	"regexp"

	"github.com/strictnum/floatgen/internal/ir"
)

// Validation error codes (E100-E199)
const (
	// General validation errors (E100)
	ErrUnsupportedConfigType = "E100" // unsupported type for validation

	// Constraint errors (E101-E109)
	ErrNoConstraints     = "E101" // at least one constraint required
	ErrInvalidName       = "E102" // not an exported Go identifier
	ErrDuplicateName     = "E103" // duplicate constraint/type/alias name
	ErrInvalidBound      = "E104" // non-finite or inverted bounds
	ErrSignMismatch      = "E105" // declared sign contradicts bounds
	ErrUnknownConstraint = "E106" // reference to an undeclared constraint
	ErrNegationMismatch  = "E107" // negation target is not the mirrored set

	// Type, alias and feature errors (E110-E119)
	ErrInvalidWidth      = "E110" // width must be 32 or 64
	ErrEmptyIntersection = "E111" // component constraints admit no value
	ErrInvalidAlias      = "E112" // alias targets an unknown type
	ErrUnknownTrait      = "E113" // unrecognised impl_traits entry
	ErrInvalidPackage    = "E114" // package is not a valid Go package name
	ErrTraitDependency   = "E115" // trait listed without the trait it builds on
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Line    int    `json:"line,omitempty"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[%s] line %d: %s: %s", e.Code, e.Line, e.Field, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// Validate validates a configuration against schema rules.
// Returns all errors found (does not fail-fast).
// Supports RawConfig (resolving it as a side effect) and ir.Config.
func Validate(v any) []ValidationError {
	switch cfg := v.(type) {
	case *RawConfig:
		_, errs := Resolve(cfg)
		return errs
	case RawConfig:
		_, errs := Resolve(&cfg)
		return errs
	case *ir.Config:
		return validateResolved(cfg)
	case ir.Config:
		return validateResolved(&cfg)
	default:
		return []ValidationError{{
			Field:   "type",
			Message: fmt.Sprintf("unsupported configuration type: %T", v),
			Code:    ErrUnsupportedConfigType,
		}}
	}
}

// validateResolved checks a configuration that has already been through
// resolution, for example one rebuilt from a store export or assembled
// by hand in tests.
func validateResolved(cfg *ir.Config) []ValidationError {
	var errs []ValidationError

	if !isValidPackageName(cfg.Package) {
		errs = append(errs, ValidationError{
			Field:   "package",
			Message: fmt.Sprintf("invalid package name %q", cfg.Package),
			Code:    ErrInvalidPackage,
		})
	}

	if len(cfg.Constraints) == 0 {
		errs = append(errs, ValidationError{
			Field:   "constraints",
			Message: "at least one constraint is required",
			Code:    ErrNoConstraints,
		})
	}

	seen := make(map[string]bool)
	for i := range cfg.Constraints {
		con := &cfg.Constraints[i]
		field := fmt.Sprintf("constraints[%d]", i)

		if !isValidTypeName(con.Name) {
			errs = append(errs, ValidationError{
				Field:   field + ".name",
				Message: fmt.Sprintf("constraint name %q must be an exported Go identifier", con.Name),
				Code:    ErrInvalidName,
			})
		}
		if seen[con.Name] {
			errs = append(errs, ValidationError{
				Field:   field + ".name",
				Message: fmt.Sprintf("duplicate constraint name: %q", con.Name),
				Code:    ErrDuplicateName,
			})
		}
		seen[con.Name] = true

		errs = append(errs, validateBounds(con.Lower, con.Upper, field)...)

		if !con.Sign.Valid() {
			errs = append(errs, ValidationError{
				Field:   field + ".sign",
				Message: fmt.Sprintf("invalid sign %q, must be \"positive\", \"negative\", or \"any\"", con.Sign),
				Code:    ErrSignMismatch,
			})
		} else if derived := deriveSign(con.Lower, con.Upper); con.Sign != derived {
			errs = append(errs, ValidationError{
				Field:   field + ".sign",
				Message: fmt.Sprintf("sign %q contradicts bounds, which imply %q", con.Sign, derived),
				Code:    ErrSignMismatch,
			})
		}

		if con.NegateTo != "" {
			target := cfg.Constraint(con.NegateTo)
			if target == nil {
				errs = append(errs, ValidationError{
					Field:   field + ".negate_to",
					Message: fmt.Sprintf("negation target %q is not a configured constraint", con.NegateTo),
					Code:    ErrUnknownConstraint,
				})
			} else if !mirrorsOnto(con, target) {
				errs = append(errs, ValidationError{
					Field:   field + ".negate_to",
					Message: fmt.Sprintf("constraint %q does not describe the negated set of %q", con.NegateTo, con.Name),
					Code:    ErrNegationMismatch,
				})
			}
		}
	}

	for i, td := range cfg.Types {
		field := fmt.Sprintf("types[%d]", i)
		if cfg.Constraint(td.Name) == nil {
			errs = append(errs, ValidationError{
				Field:   field + ".name",
				Message: fmt.Sprintf("type %q has no resolved constraint", td.Name),
				Code:    ErrUnknownConstraint,
			})
		}
		errs = append(errs, validateWidths(td.Widths, field)...)
	}

	errs = append(errs, validateAliases(cfg.Aliases, func(name string) bool {
		return cfg.TypeDefFor(name) != nil
	})...)

	errs = append(errs, validateTraits(cfg.Features.ImplTraits, "features.impl_traits")...)

	return errs
}

// validateBounds checks finiteness and ordering of an interval.
func validateBounds(lower, upper *float64, field string) []ValidationError {
	var errs []ValidationError
	if lower != nil && !isFiniteBound(*lower) {
		errs = append(errs, ValidationError{
			Field:   field + ".lower",
			Message: "bound must be finite",
			Code:    ErrInvalidBound,
		})
	}
	if upper != nil && !isFiniteBound(*upper) {
		errs = append(errs, ValidationError{
			Field:   field + ".upper",
			Message: "bound must be finite",
			Code:    ErrInvalidBound,
		})
	}
	if lower != nil && upper != nil && isFiniteBound(*lower) && isFiniteBound(*upper) && *lower > *upper {
		errs = append(errs, ValidationError{
			Field:   field,
			Message: fmt.Sprintf("lower bound %v exceeds upper bound %v", *lower, *upper),
			Code:    ErrInvalidBound,
		})
	}
	return errs
}

// validateWidths checks a family's width list.
func validateWidths(widths []ir.Width, field string) []ValidationError {
	var errs []ValidationError
	if len(widths) == 0 {
		errs = append(errs, ValidationError{
			Field:   field + ".widths",
			Message: "at least one width is required",
			Code:    ErrInvalidWidth,
		})
	}
	seen := make(map[ir.Width]bool, len(widths))
	for j, w := range widths {
		wf := fmt.Sprintf("%s.widths[%d]", field, j)
		if !w.Valid() {
			errs = append(errs, ValidationError{
				Field:   wf,
				Message: fmt.Sprintf("invalid width %d, must be 32 or 64", w),
				Code:    ErrInvalidWidth,
			})
		}
		if seen[w] {
			errs = append(errs, ValidationError{
				Field:   wf,
				Message: fmt.Sprintf("duplicate width %d", w),
				Code:    ErrInvalidWidth,
			})
		}
		seen[w] = true
	}
	return errs
}

// validateAliases checks alias declarations against a type-existence
// predicate shared between raw and resolved validation.
func validateAliases(aliases []ir.AliasDef, typeExists func(string) bool) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]bool)
	for i, a := range aliases {
		field := fmt.Sprintf("type_aliases[%d]", i)
		if !isValidTypeName(a.Alias) {
			errs = append(errs, ValidationError{
				Field:   field + ".alias",
				Message: fmt.Sprintf("alias %q must be an exported Go identifier", a.Alias),
				Code:    ErrInvalidName,
			})
		}
		if seen[a.Alias] || typeExists(a.Alias) {
			errs = append(errs, ValidationError{
				Field:   field + ".alias",
				Message: fmt.Sprintf("duplicate type name: %q", a.Alias),
				Code:    ErrDuplicateName,
			})
		}
		seen[a.Alias] = true
		if !typeExists(a.Canonical) {
			errs = append(errs, ValidationError{
				Field:   field + ".canonical",
				Message: fmt.Sprintf("alias %q targets unknown type %q", a.Alias, a.Canonical),
				Code:    ErrInvalidAlias,
			})
		}
	}
	return errs
}

// traitRequires maps a trait to the trait its generated methods call
// into: CmpTotal delegates to Cmp and GoString formats through String.
var traitRequires = map[string]string{
	ir.TraitTotalOrdering: ir.TraitOrdering,
	ir.TraitDebug:         ir.TraitDisplay,
}

// validateTraits checks impl_traits entries against the recognised set
// and requires each trait's prerequisite to be listed alongside it.
func validateTraits(traits []string, field string) []ValidationError {
	var errs []ValidationError
	listed := make(map[string]bool, len(traits))
	for _, t := range traits {
		listed[t] = true
	}
	for i, t := range traits {
		if !isValidTrait(t) {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("%s[%d]", field, i),
				Message: fmt.Sprintf("unknown trait %q", t),
				Code:    ErrUnknownTrait,
			})
			continue
		}
		if req, ok := traitRequires[t]; ok && !listed[req] {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("%s[%d]", field, i),
				Message: fmt.Sprintf("trait %q requires %q", t, req),
				Code:    ErrTraitDependency,
			})
		}
	}
	return errs
}

// isValidTrait checks whether an impl_traits entry is recognised.
func isValidTrait(t string) bool {
	for _, known := range ir.AllTraits() {
		if t == known {
			return true
		}
	}
	return false
}

// typeNamePattern matches exported Go identifiers usable as type names.
var typeNamePattern = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`)

// isValidTypeName checks whether a name can head a generated type.
func isValidTypeName(name string) bool {
	return typeNamePattern.MatchString(name)
}

// packageNamePattern matches lower-case Go package names.
var packageNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// isValidPackageName checks whether a name is usable as a package name.
func isValidPackageName(name string) bool {
	return packageNamePattern.MatchString(name)
}
