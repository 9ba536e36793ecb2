package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/strictnum/floatgen/internal/ir"
)

// Run is one exported-run header row.
type Run struct {
	ID              string
	CreatedAt       time.Time
	ConfigHash      string
	Package         string
	ConstraintCount int
}

// RunTables is a run's full export loaded back into table form. The
// maps mirror infer.Tables; Constraints keeps declaration order.
type RunTables struct {
	Run         Run
	Constraints []ir.Constraint
	Arithmetic  map[ir.ArithKey]ir.ArithmeticResult
	Unary       map[ir.UnaryKey]ir.UnaryResult
	Conversions map[ir.ConvKey]ir.ConversionVerdict
	Constants   map[ir.ConstKey]bool
}

// ListRuns returns all run headers, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, config_hash, package, constraint_count
		FROM runs
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("list runs: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// LoadRun loads one run's header and all of its exported tables.
func (s *Store) LoadRun(ctx context.Context, runID string) (*RunTables, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, config_hash, package, constraint_count
		FROM runs WHERE id = ?`, runID)
	r, err := scanRunRow(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("load run: no run with id %q", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("load run: %w", err)
	}

	out := &RunTables{
		Run:         r,
		Arithmetic:  make(map[ir.ArithKey]ir.ArithmeticResult),
		Unary:       make(map[ir.UnaryKey]ir.UnaryResult),
		Conversions: make(map[ir.ConvKey]ir.ConversionVerdict),
		Constants:   make(map[ir.ConstKey]bool),
	}

	if out.Constraints, err = s.loadConstraints(ctx, runID); err != nil {
		return nil, fmt.Errorf("load run: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT op, lhs, rhs, output, is_safe
		FROM arithmetic_results WHERE run_id = ?`, runID)
	if err != nil {
		return nil, fmt.Errorf("load run: arithmetic: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var op, lhs, rhs, output string
		var safe bool
		if err := rows.Scan(&op, &lhs, &rhs, &output, &safe); err != nil {
			return nil, fmt.Errorf("load run: arithmetic: %w", err)
		}
		key := ir.ArithKey{Op: ir.ArithmeticOp(op), Lhs: lhs, Rhs: rhs}
		out.Arithmetic[key] = ir.ArithmeticResult{Output: output, Safe: safe}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load run: arithmetic: %w", err)
	}

	urows, err := s.db.QueryContext(ctx, `
		SELECT op, input, output, is_safe
		FROM unary_results WHERE run_id = ?`, runID)
	if err != nil {
		return nil, fmt.Errorf("load run: unary: %w", err)
	}
	defer urows.Close()
	for urows.Next() {
		var op, input, output string
		var safe bool
		if err := urows.Scan(&op, &input, &output, &safe); err != nil {
			return nil, fmt.Errorf("load run: unary: %w", err)
		}
		key := ir.UnaryKey{Op: ir.UnaryOp(op), Input: input}
		out.Unary[key] = ir.UnaryResult{Output: output, Safe: safe}
	}
	if err := urows.Err(); err != nil {
		return nil, fmt.Errorf("load run: unary: %w", err)
	}

	crows, err := s.db.QueryContext(ctx, `
		SELECT source, target, verdict
		FROM conversions WHERE run_id = ?`, runID)
	if err != nil {
		return nil, fmt.Errorf("load run: conversions: %w", err)
	}
	defer crows.Close()
	for crows.Next() {
		var source, target, verdict string
		if err := crows.Scan(&source, &target, &verdict); err != nil {
			return nil, fmt.Errorf("load run: conversions: %w", err)
		}
		out.Conversions[ir.ConvKey{Source: source, Target: target}] = ir.ConversionVerdict(verdict)
	}
	if err := crows.Err(); err != nil {
		return nil, fmt.Errorf("load run: conversions: %w", err)
	}

	krows, err := s.db.QueryContext(ctx, `
		SELECT constant, constraint_name, admissible
		FROM constant_admissibility WHERE run_id = ?`, runID)
	if err != nil {
		return nil, fmt.Errorf("load run: constants: %w", err)
	}
	defer krows.Close()
	for krows.Next() {
		var constant, constraint string
		var admissible bool
		if err := krows.Scan(&constant, &constraint, &admissible); err != nil {
			return nil, fmt.Errorf("load run: constants: %w", err)
		}
		out.Constants[ir.ConstKey{Constant: constant, Constraint: constraint}] = admissible
	}
	if err := krows.Err(); err != nil {
		return nil, fmt.Errorf("load run: constants: %w", err)
	}

	return out, nil
}

// loadConstraints returns a run's constraint pool in declaration order.
func (s *Store) loadConstraints(ctx context.Context, runID string) ([]ir.Constraint, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, lower, upper, excludes_zero, sign, negate_to
		FROM constraints WHERE run_id = ?
		ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("constraints: %w", err)
	}
	defer rows.Close()

	var out []ir.Constraint
	for rows.Next() {
		var c ir.Constraint
		var lower, upper sql.NullFloat64
		var sign string
		if err := rows.Scan(&c.Name, &lower, &upper, &c.ExcludesZero, &sign, &c.NegateTo); err != nil {
			return nil, fmt.Errorf("constraints: %w", err)
		}
		c.Sign = ir.Sign(sign)
		if lower.Valid {
			c.Lower = ir.Bound(lower.Float64)
		}
		if upper.Valid {
			c.Upper = ir.Bound(upper.Float64)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanRun(rows *sql.Rows) (Run, error) {
	var r Run
	var created string
	if err := rows.Scan(&r.ID, &created, &r.ConfigHash, &r.Package, &r.ConstraintCount); err != nil {
		return Run{}, err
	}
	return finishRun(r, created)
}

func scanRunRow(row *sql.Row) (Run, error) {
	var r Run
	var created string
	if err := row.Scan(&r.ID, &created, &r.ConfigHash, &r.Package, &r.ConstraintCount); err != nil {
		return Run{}, err
	}
	return finishRun(r, created)
}

func finishRun(r Run, created string) (Run, error) {
	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return Run{}, fmt.Errorf("parse created_at %q: %w", created, err)
	}
	r.CreatedAt = t
	return r, nil
}
