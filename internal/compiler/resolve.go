package compiler

import (
	"fmt"
	"math"
	"slices"

	"github.com/strictnum/floatgen/internal/ir"
)

// Resolve turns a raw configuration into a compiled one: signs are
// derived from bounds where not declared, wrapper families are expanded
// (composites intersect their components), and negation targets are
// verified or computed by mirroring each constraint's set.
//
// All errors found are returned; the config is nil unless there are none.
func Resolve(raw *RawConfig) (*ir.Config, []ValidationError) {
	var errs []ValidationError

	pkg := raw.Package
	if pkg == "" {
		pkg = DefaultPackage
	}
	if !isValidPackageName(pkg) {
		errs = append(errs, ValidationError{
			Field:   "package",
			Message: fmt.Sprintf("invalid package name %q", pkg),
			Code:    ErrInvalidPackage,
		})
	}

	if len(raw.Constraints) == 0 {
		errs = append(errs, ValidationError{
			Field:   "constraints",
			Message: "at least one constraint is required",
			Code:    ErrNoConstraints,
		})
	}

	// Pass 1: per-constraint checks, sign resolution, implied bounds.
	decl := make(map[string]*ir.Constraint, len(raw.Constraints))
	declIndex := make(map[string]int, len(raw.Constraints))
	for i := range raw.Constraints {
		rc := &raw.Constraints[i]
		field := fmt.Sprintf("constraints[%d]", i)

		if !isValidTypeName(rc.Name) {
			errs = append(errs, ValidationError{
				Field:   field + ".name",
				Message: fmt.Sprintf("constraint name %q must be an exported Go identifier", rc.Name),
				Code:    ErrInvalidName,
			})
		}
		if _, dup := decl[rc.Name]; dup {
			errs = append(errs, ValidationError{
				Field:   field + ".name",
				Message: fmt.Sprintf("duplicate constraint name: %q", rc.Name),
				Code:    ErrDuplicateName,
			})
			continue
		}

		con := ir.Constraint{
			Name:         rc.Name,
			Lower:        copyBound(rc.Lower),
			Upper:        copyBound(rc.Upper),
			ExcludesZero: rc.ExcludesZero,
			NegateTo:     rc.NegateTo,
			Doc:          rc.Doc,
		}
		resolveConstraintSign(&con, rc.Sign, field, &errs)
		errs = append(errs, validateBounds(con.Lower, con.Upper, field)...)

		if rc.NegateTo != "" {
			found := false
			for j := range raw.Constraints {
				if raw.Constraints[j].Name == rc.NegateTo {
					found = true
					break
				}
			}
			if !found {
				errs = append(errs, ValidationError{
					Field:   field + ".negate_to",
					Message: fmt.Sprintf("negation target %q is not a configured constraint", rc.NegateTo),
					Code:    ErrUnknownConstraint,
				})
				con.NegateTo = ""
			}
		}

		decl[con.Name] = &con
		declIndex[con.Name] = i
	}

	// Pass 2: expand families. Without constraint_types every constraint
	// becomes its own family at both widths.
	families := raw.Types
	defaulted := len(families) == 0
	if defaulted {
		for _, rc := range raw.Constraints {
			families = append(families, RawTypeDef{
				Name:        rc.Name,
				Widths:      ir.AllWidths(),
				Constraints: []string{rc.Name},
			})
		}
	}

	var pool []ir.Constraint
	var types []ir.TypeDef
	// negSrc maps each pool entry back to the raw constraint whose
	// negate_to declaration it carries, -1 for composites.
	var negSrc []int
	poolIndex := make(map[string]int, len(families))
	// familyOf maps a constraint to the single family it backs alone,
	// for translating negate_to declarations across renames.
	familyOf := make(map[string]string)
	familyBackings := make(map[string]int)

	for i, fam := range families {
		field := fmt.Sprintf("constraint_types[%d]", i)

		if !defaulted {
			if !isValidTypeName(fam.Name) {
				errs = append(errs, ValidationError{
					Field:   field + ".name",
					Message: fmt.Sprintf("type name %q must be an exported Go identifier", fam.Name),
					Code:    ErrInvalidName,
				})
			}
			if _, dup := poolIndex[fam.Name]; dup {
				errs = append(errs, ValidationError{
					Field:   field + ".name",
					Message: fmt.Sprintf("duplicate type name: %q", fam.Name),
					Code:    ErrDuplicateName,
				})
				continue
			}
			errs = append(errs, validateWidths(fam.Widths, field)...)
		}

		comps := fam.Constraints
		if len(comps) == 0 {
			comps = []string{fam.Name}
		}
		var members []*ir.Constraint
		for j, name := range comps {
			member, ok := decl[name]
			if !ok {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("%s.constraints[%d]", field, j),
					Message: fmt.Sprintf("unknown constraint %q", name),
					Code:    ErrUnknownConstraint,
				})
				continue
			}
			members = append(members, member)
		}
		if len(members) == 0 {
			continue
		}

		con, src := intersectFamily(fam.Name, members, declIndex)
		if emptySet(&con) {
			errs = append(errs, ValidationError{
				Field:   field + ".constraints",
				Message: "component constraints admit no value",
				Code:    ErrEmptyIntersection,
			})
		}

		poolIndex[con.Name] = len(pool)
		pool = append(pool, con)
		negSrc = append(negSrc, src)
		types = append(types, ir.TypeDef{
			Name:        fam.Name,
			Widths:      slices.Clone(fam.Widths),
			Constraints: slices.Clone(comps),
		})
		if len(members) == 1 {
			familyBackings[members[0].Name]++
			if familyBackings[members[0].Name] == 1 {
				familyOf[members[0].Name] = fam.Name
			} else {
				delete(familyOf, members[0].Name)
			}
		}
	}

	// Pass 3: negation targets over the resolved pool. Declared targets
	// must describe the mirrored set; absent ones are computed by
	// scanning the pool in declaration order.
	for i := range pool {
		con := &pool[i]
		field := "constraints.negate_to"
		if negSrc[i] >= 0 {
			field = fmt.Sprintf("constraints[%d].negate_to", negSrc[i])
		}
		if con.NegateTo == "" {
			con.NegateTo = computeNegation(pool, con)
			continue
		}
		name := con.NegateTo
		if _, ok := poolIndex[name]; !ok {
			mapped, ok2 := familyOf[name]
			if !ok2 {
				errs = append(errs, ValidationError{
					Field:   field,
					Message: fmt.Sprintf("negation target %q has no generated type", name),
					Code:    ErrUnknownConstraint,
				})
				con.NegateTo = ""
				continue
			}
			name = mapped
		}
		target := &pool[poolIndex[name]]
		if !mirrorsOnto(con, target) {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("constraint %q does not describe the negated set of %q", name, con.Name),
				Code:    ErrNegationMismatch,
			})
			con.NegateTo = ""
			continue
		}
		con.NegateTo = name
	}

	errs = append(errs, validateAliases(raw.Aliases, func(name string) bool {
		_, ok := poolIndex[name]
		return ok
	})...)

	feats := ir.Features{GenerateOptionTypes: true, GenerateNewConst: true}
	if raw.ImplTraitsDeclared {
		errs = append(errs, validateTraits(raw.ImplTraits, "features.impl_traits")...)
		feats.ImplTraits = slices.Clone(raw.ImplTraits)
	} else {
		feats.ImplTraits = ir.AllTraits()
	}
	if raw.GenerateOptionTypes != nil {
		feats.GenerateOptionTypes = *raw.GenerateOptionTypes
	}
	if raw.GenerateNewConst != nil {
		feats.GenerateNewConst = *raw.GenerateNewConst
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &ir.Config{
		Package:     pkg,
		Constraints: pool,
		Types:       types,
		Aliases:     slices.Clone(raw.Aliases),
		Features:    feats,
	}, nil
}

// resolveConstraintSign applies a declared sign or derives one from the
// bounds. A declared half-line sign with no bound on that side implies
// the zero bound.
func resolveConstraintSign(con *ir.Constraint, declared, field string, errs *[]ValidationError) {
	switch ir.Sign(declared) {
	case "":
		con.Sign = deriveSign(con.Lower, con.Upper)
	case ir.SignPositive:
		con.Sign = ir.SignPositive
		if con.Lower == nil {
			con.Lower = ir.Bound(0)
		} else if *con.Lower < 0 {
			*errs = append(*errs, ValidationError{
				Field:   field + ".sign",
				Message: fmt.Sprintf("sign \"positive\" requires a non-negative lower bound, got %v", *con.Lower),
				Code:    ErrSignMismatch,
			})
		}
	case ir.SignNegative:
		con.Sign = ir.SignNegative
		if con.Upper == nil {
			con.Upper = ir.Bound(0)
		} else if *con.Upper > 0 {
			*errs = append(*errs, ValidationError{
				Field:   field + ".sign",
				Message: fmt.Sprintf("sign \"negative\" requires a non-positive upper bound, got %v", *con.Upper),
				Code:    ErrSignMismatch,
			})
		}
	case ir.SignAny:
		con.Sign = ir.SignAny
		if derived := deriveSign(con.Lower, con.Upper); derived != ir.SignAny {
			*errs = append(*errs, ValidationError{
				Field:   field + ".sign",
				Message: fmt.Sprintf("sign \"any\" contradicts bounds, which imply %q", derived),
				Code:    ErrSignMismatch,
			})
		}
	default:
		*errs = append(*errs, ValidationError{
			Field:   field + ".sign",
			Message: fmt.Sprintf("invalid sign %q, must be \"positive\", \"negative\", or \"any\"", declared),
			Code:    ErrSignMismatch,
		})
		con.Sign = deriveSign(con.Lower, con.Upper)
	}
}

// intersectFamily builds the resolved constraint for one wrapper family.
// A single same-named component passes through unchanged; everything
// else intersects bounds (tightest wins) and unions zero exclusions.
func intersectFamily(name string, members []*ir.Constraint, declIndex map[string]int) (ir.Constraint, int) {
	if len(members) == 1 {
		m := members[0]
		con := ir.Constraint{
			Name:         name,
			Lower:        copyBound(m.Lower),
			Upper:        copyBound(m.Upper),
			ExcludesZero: m.ExcludesZero,
			Sign:         m.Sign,
			NegateTo:     m.NegateTo,
			Doc:          m.Doc,
		}
		return con, declIndex[m.Name]
	}

	con := ir.Constraint{Name: name}
	for _, m := range members {
		if m.Lower != nil && (con.Lower == nil || *m.Lower > *con.Lower) {
			con.Lower = copyBound(m.Lower)
		}
		if m.Upper != nil && (con.Upper == nil || *m.Upper < *con.Upper) {
			con.Upper = copyBound(m.Upper)
		}
		con.ExcludesZero = con.ExcludesZero || m.ExcludesZero
	}
	con.Sign = deriveSign(con.Lower, con.Upper)
	return con, -1
}

// emptySet reports whether a resolved constraint admits no value at all.
func emptySet(c *ir.Constraint) bool {
	if c.Lower == nil || c.Upper == nil {
		return false
	}
	if *c.Lower > *c.Upper {
		return true
	}
	return *c.Lower == *c.Upper && *c.Lower == 0 && c.ExcludesZero
}

// computeNegation finds the first configured constraint describing the
// mirrored set {-x | x in c}, scanning in declaration order. Returns ""
// when none matches.
func computeNegation(pool []ir.Constraint, c *ir.Constraint) string {
	for i := range pool {
		if mirrorsOnto(c, &pool[i]) {
			return pool[i].Name
		}
	}
	return ""
}

// mirrorsOnto reports whether target's set equals {-x | x in c}.
func mirrorsOnto(c, target *ir.Constraint) bool {
	mirror := ir.Constraint{
		Lower: negBound(c.Upper),
		Upper: negBound(c.Lower),
	}
	return target.BoundsEqual(&mirror) && target.ExcludesZero == c.ExcludesZero
}

// deriveSign classifies an interval: on or above zero is positive, on or
// below zero is negative, anything spanning zero (or unbounded both
// ways) is any.
func deriveSign(lower, upper *float64) ir.Sign {
	if lower != nil && *lower >= 0 {
		return ir.SignPositive
	}
	if upper != nil && *upper <= 0 {
		return ir.SignNegative
	}
	return ir.SignAny
}

// negBound mirrors a single bound across zero. Negating a zero bound
// stays positive zero so canonical encodings never see -0.
func negBound(p *float64) *float64 {
	if p == nil {
		return nil
	}
	if *p == 0 {
		return ir.Bound(0)
	}
	return ir.Bound(-*p)
}

func copyBound(p *float64) *float64 {
	if p == nil {
		return nil
	}
	return ir.Bound(*p)
}

func isFiniteBound(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
