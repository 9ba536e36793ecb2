package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/strictnum/floatgen/internal/compiler"
	"github.com/strictnum/floatgen/internal/infer"
	"github.com/strictnum/floatgen/internal/ir"
	"github.com/strictnum/floatgen/internal/store"
)

// TablesOptions holds flags for the tables command.
type TablesOptions struct {
	*RootOptions
	Config   string
	Kind     string // arithmetic|unary|conversion|constants|all
	ExportDB string // optional SQLite export path
}

// ValidTableKinds defines the allowed --kind values.
var ValidTableKinds = []string{"arithmetic", "unary", "conversion", "constants", "all"}

// ArithRow is one binary inference verdict.
type ArithRow struct {
	Op     string `json:"op" yaml:"op"`
	Lhs    string `json:"lhs" yaml:"lhs"`
	Rhs    string `json:"rhs" yaml:"rhs"`
	Output string `json:"output" yaml:"output"`
	Safe   bool   `json:"safe" yaml:"safe"`
}

// UnaryRow is one unary inference verdict.
type UnaryRow struct {
	Op     string `json:"op" yaml:"op"`
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output" yaml:"output"`
	Safe   bool   `json:"safe" yaml:"safe"`
}

// ConvRow is one same-width conversion verdict.
type ConvRow struct {
	Source  string `json:"source" yaml:"source"`
	Target  string `json:"target" yaml:"target"`
	Verdict string `json:"verdict" yaml:"verdict"`
}

// ConstRow is one constant admissibility verdict.
type ConstRow struct {
	Constant   string `json:"constant" yaml:"constant"`
	Constraint string `json:"constraint" yaml:"constraint"`
	Admissible bool   `json:"admissible" yaml:"admissible"`
}

// TablesReport holds the materialised inference tables in declaration
// order, ready for rendering or export.
type TablesReport struct {
	Fingerprint string     `json:"fingerprint" yaml:"fingerprint"`
	Arithmetic  []ArithRow `json:"arithmetic,omitempty" yaml:"arithmetic,omitempty"`
	Unary       []UnaryRow `json:"unary,omitempty" yaml:"unary,omitempty"`
	Conversions []ConvRow  `json:"conversions,omitempty" yaml:"conversions,omitempty"`
	Constants   []ConstRow `json:"constants,omitempty" yaml:"constants,omitempty"`
	RunID       string     `json:"run_id,omitempty" yaml:"run_id,omitempty"`
}

func (r *TablesReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Fingerprint: %s\n", r.Fingerprint)
	if len(r.Arithmetic) > 0 {
		fmt.Fprintf(&b, "Arithmetic (%d):\n", len(r.Arithmetic))
		for _, row := range r.Arithmetic {
			fmt.Fprintf(&b, "  %s(%s, %s) -> %s %s\n", row.Op, row.Lhs, row.Rhs, row.Output, safety(row.Safe))
		}
	}
	if len(r.Unary) > 0 {
		fmt.Fprintf(&b, "Unary (%d):\n", len(r.Unary))
		for _, row := range r.Unary {
			fmt.Fprintf(&b, "  %s(%s) -> %s %s\n", row.Op, row.Input, row.Output, safety(row.Safe))
		}
	}
	if len(r.Conversions) > 0 {
		fmt.Fprintf(&b, "Conversions (%d):\n", len(r.Conversions))
		for _, row := range r.Conversions {
			fmt.Fprintf(&b, "  %s -> %s: %s\n", row.Source, row.Target, row.Verdict)
		}
	}
	if len(r.Constants) > 0 {
		fmt.Fprintf(&b, "Constants (%d):\n", len(r.Constants))
		for _, row := range r.Constants {
			verdict := "inadmissible"
			if row.Admissible {
				verdict = "admissible"
			}
			fmt.Fprintf(&b, "  %s for %s: %s\n", row.Constant, row.Constraint, verdict)
		}
	}
	if r.RunID != "" {
		fmt.Fprintf(&b, "Exported run: %s\n", r.RunID)
	}
	return strings.TrimRight(b.String(), "\n")
}

func safety(safe bool) string {
	if safe {
		return "safe"
	}
	return "unsafe"
}

// NewTablesCommand creates the tables command.
func NewTablesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TablesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Print the materialised inference tables",
		Long: `Compile a constraint configuration and print its inference tables:
arithmetic and unary verdicts, conversion verdicts, and constant
admissibility. Optionally export the tables to a SQLite database.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTables(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Config, "config", "", "config CUE file or directory")
	cmd.Flags().StringVar(&opts.Kind, "kind", "all", "table kind (arithmetic|unary|conversion|constants|all)")
	cmd.Flags().StringVar(&opts.ExportDB, "export-db", "", "export tables to this SQLite database")

	return cmd
}

func runTables(opts *TablesOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if !validTableKind(opts.Kind) {
		msg := fmt.Sprintf("invalid kind %q: must be one of %v", opts.Kind, ValidTableKinds)
		formatter.Error(ErrCodeBadArgument, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	raw, err := LoadRawConfig(opts.Config)
	if err != nil {
		return outputLoadError(formatter, err)
	}
	cfg, verrs := compiler.Resolve(raw)
	if len(verrs) > 0 {
		return outputValidationErrors(formatter, verrs)
	}

	fingerprint, err := ir.ConfigFingerprint(cfg)
	if err != nil {
		formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}
	tables := infer.Build(cfg)
	report := buildTablesReport(cfg, tables, fingerprint, opts.Kind)

	if opts.ExportDB != "" {
		runID, err := exportTables(cmd.Context(), opts.ExportDB, tables, fingerprint)
		if err != nil {
			msg := fmt.Sprintf("exporting tables: %v", err)
			formatter.Error(ErrCodeExportFailed, msg, nil)
			return NewExitError(ExitCommandError, msg)
		}
		formatter.VerboseLog("Exported run %s to %s", runID, opts.ExportDB)
		report.RunID = runID
	}

	return formatter.Success(report)
}

func validTableKind(kind string) bool {
	for _, k := range ValidTableKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// buildTablesReport flattens the inference maps into rows ordered by
// constraint declaration, then operator.
func buildTablesReport(cfg *ir.Config, tables *infer.Tables, fingerprint, kind string) *TablesReport {
	report := &TablesReport{Fingerprint: fingerprint}

	if kind == "arithmetic" || kind == "all" {
		for i := range cfg.Constraints {
			for j := range cfg.Constraints {
				lhs, rhs := cfg.Constraints[i].Name, cfg.Constraints[j].Name
				for _, op := range ir.AllArithmeticOps() {
					if res, ok := tables.Arith(op, lhs, rhs); ok {
						report.Arithmetic = append(report.Arithmetic, ArithRow{
							Op: string(op), Lhs: lhs, Rhs: rhs, Output: res.Output, Safe: res.Safe,
						})
					}
				}
			}
		}
	}
	if kind == "unary" || kind == "all" {
		for i := range cfg.Constraints {
			input := cfg.Constraints[i].Name
			for _, op := range ir.AllUnaryOps() {
				if res, ok := tables.UnaryFor(op, input); ok {
					report.Unary = append(report.Unary, UnaryRow{
						Op: string(op), Input: input, Output: res.Output, Safe: res.Safe,
					})
				}
			}
		}
	}
	if kind == "conversion" || kind == "all" {
		for i := range cfg.Constraints {
			for j := range cfg.Constraints {
				source, target := cfg.Constraints[i].Name, cfg.Constraints[j].Name
				if v, ok := tables.Conversion(source, target); ok {
					report.Conversions = append(report.Conversions, ConvRow{
						Source: source, Target: target, Verdict: string(v),
					})
				}
			}
		}
	}
	if kind == "constants" || kind == "all" {
		for i := range cfg.Constraints {
			constraint := cfg.Constraints[i].Name
			for _, k := range infer.Catalogue() {
				report.Constants = append(report.Constants, ConstRow{
					Constant: k.Name, Constraint: constraint,
					Admissible: tables.Admits(k.Name, constraint),
				})
			}
		}
	}
	return report
}

func exportTables(ctx context.Context, path string, tables *infer.Tables, fingerprint string) (string, error) {
	st, err := store.Open(path)
	if err != nil {
		return "", err
	}
	defer st.Close()
	return st.ExportRun(ctx, tables, fingerprint)
}
