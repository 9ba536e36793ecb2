package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/strictnum/floatgen/internal/compiler"
	"github.com/strictnum/floatgen/internal/predicate"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Config string
	Width  int
}

// CheckResult reports the admission verdict for one literal.
type CheckResult struct {
	Constraint string  `json:"constraint" yaml:"constraint"`
	Value      float64 `json:"value" yaml:"value"`
	Width      int     `json:"width" yaml:"width"`
	Verdict    string  `json:"verdict" yaml:"verdict"`
	Admissible bool    `json:"admissible" yaml:"admissible"`
}

func (r *CheckResult) String() string {
	if r.Admissible {
		return fmt.Sprintf("%v is admissible for %s at width %d", r.Value, r.Constraint, r.Width)
	}
	return fmt.Sprintf("%v is not admissible for %s at width %d: %s", r.Value, r.Constraint, r.Width, r.Verdict)
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check CONSTRAINT VALUE",
		Short: "Classify one literal against a constraint",
		Long: `Evaluate a single literal against a configured constraint and print the
admission verdict or its taxonomy classification. Exits 1 when the
value is inadmissible.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Config, "config", "", "config CUE file or directory")
	cmd.Flags().IntVar(&opts.Width, "width", 64, "float width (32|64)")

	return cmd
}

func runCheck(opts *CheckOptions, constraintName, literal string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if opts.Width != 32 && opts.Width != 64 {
		msg := fmt.Sprintf("invalid width %d: must be 32 or 64", opts.Width)
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

	constraint := cfg.Constraint(constraintName)
	if constraint == nil {
		msg := fmt.Sprintf("unknown constraint %q", constraintName)
		formatter.Error(ErrCodeBadArgument, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	value, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		msg := fmt.Sprintf("invalid value %q: %v", literal, err)
		formatter.Error(ErrCodeBadArgument, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}
	// A 32-bit check classifies the value the narrow type would hold.
	if opts.Width == 32 {
		value = float64(float32(value))
	}

	verdict := predicate.Classify(constraint, value)
	result := &CheckResult{
		Constraint: constraintName,
		Value:      value,
		Width:      opts.Width,
		Verdict:    string(verdict),
		Admissible: verdict == predicate.FailNone,
	}
	if err := formatter.Success(result); err != nil {
		return err
	}
	if !result.Admissible {
		return NewExitError(ExitFailure, result.String())
	}
	return nil
}
