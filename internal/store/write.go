package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/strictnum/floatgen/internal/infer"
	"github.com/strictnum/floatgen/internal/ir"
)

// ExportRun writes a configuration's complete inference tables as one
// run, in a single transaction. Returns the new run id (UUIDv7, so ids
// sort by creation time).
//
// Rows are inserted in deterministic order: constraints by declaration,
// arithmetic by (op, lhs, rhs) declaration order, unary by (op, input),
// conversions by (source, target), constants by catalogue order.
func (s *Store) ExportRun(ctx context.Context, tables *infer.Tables, configHash string) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("export run: new id: %w", err)
	}
	runID := id.String()
	cfg := tables.Config

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("export run: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, created_at, config_hash, package, constraint_count)
		VALUES (?, ?, ?, ?, ?)`,
		runID,
		time.Now().UTC().Format(time.RFC3339Nano),
		configHash,
		cfg.Package,
		len(cfg.Constraints),
	)
	if err != nil {
		return "", fmt.Errorf("export run: insert run: %w", err)
	}

	for i := range cfg.Constraints {
		c := &cfg.Constraints[i]
		_, err = tx.ExecContext(ctx, `
			INSERT INTO constraints (run_id, position, name, lower, upper, excludes_zero, sign, negate_to)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, i, c.Name, boundValue(c.Lower), boundValue(c.Upper),
			c.ExcludesZero, string(c.Sign), c.NegateTo,
		)
		if err != nil {
			return "", fmt.Errorf("export run: insert constraint %q: %w", c.Name, err)
		}
	}

	for _, op := range ir.AllArithmeticOps() {
		for i := range cfg.Constraints {
			for j := range cfg.Constraints {
				lhs, rhs := cfg.Constraints[i].Name, cfg.Constraints[j].Name
				res, ok := tables.Arith(op, lhs, rhs)
				if !ok {
					continue
				}
				_, err = tx.ExecContext(ctx, `
					INSERT INTO arithmetic_results (run_id, op, lhs, rhs, output, is_safe)
					VALUES (?, ?, ?, ?, ?, ?)`,
					runID, string(op), lhs, rhs, res.Output, res.Safe,
				)
				if err != nil {
					return "", fmt.Errorf("export run: insert arithmetic %s(%s, %s): %w", op, lhs, rhs, err)
				}
			}
		}
	}

	for _, op := range ir.AllUnaryOps() {
		for i := range cfg.Constraints {
			input := cfg.Constraints[i].Name
			res, ok := tables.UnaryFor(op, input)
			if !ok {
				continue
			}
			_, err = tx.ExecContext(ctx, `
				INSERT INTO unary_results (run_id, op, input, output, is_safe)
				VALUES (?, ?, ?, ?, ?)`,
				runID, string(op), input, res.Output, res.Safe,
			)
			if err != nil {
				return "", fmt.Errorf("export run: insert unary %s(%s): %w", op, input, err)
			}
		}
	}

	for i := range cfg.Constraints {
		for j := range cfg.Constraints {
			source, target := cfg.Constraints[i].Name, cfg.Constraints[j].Name
			verdict, ok := tables.Conversion(source, target)
			if !ok {
				continue
			}
			_, err = tx.ExecContext(ctx, `
				INSERT INTO conversions (run_id, source, target, verdict)
				VALUES (?, ?, ?, ?)`,
				runID, source, target, string(verdict),
			)
			if err != nil {
				return "", fmt.Errorf("export run: insert conversion %s -> %s: %w", source, target, err)
			}
		}
	}

	for _, k := range infer.Catalogue() {
		for i := range cfg.Constraints {
			name := cfg.Constraints[i].Name
			_, err = tx.ExecContext(ctx, `
				INSERT INTO constant_admissibility (run_id, constant, constraint_name, admissible, value)
				VALUES (?, ?, ?, ?, ?)`,
				runID, k.Name, name, tables.Admits(k.Name, name), k.Value,
			)
			if err != nil {
				return "", fmt.Errorf("export run: insert constant %s/%s: %w", k.Name, name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("export run: commit: %w", err)
	}
	return runID, nil
}

// boundValue maps an optional bound to its SQL representation.
func boundValue(b *float64) any {
	if b == nil {
		return nil
	}
	return *b
}
