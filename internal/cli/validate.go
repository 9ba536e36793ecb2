package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strictnum/floatgen/internal/compiler"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid       bool                       `json:"valid" yaml:"valid"`
	Constraints int                        `json:"constraints" yaml:"constraints"`
	Wrappers    int                        `json:"wrappers" yaml:"wrappers"`
	Errors      []compiler.ValidationError `json:"errors,omitempty" yaml:"errors,omitempty"`
}

func (r *ValidationResult) String() string {
	return fmt.Sprintf("Configuration valid: %d constraint(s), %d wrapper type(s)",
		r.Constraints, r.Wrappers)
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a constraint configuration without generating code",
		Long: `Validate a constraint configuration: structure, bounds, sign consistency,
negation targets, type and alias references. No files are written.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, configPath, cmd)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config CUE file or directory")

	return cmd
}

func runValidate(opts *RootOptions, configPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	raw, err := LoadRawConfig(configPath)
	if err != nil {
		return outputLoadError(formatter, err)
	}

	cfg, verrs := compiler.Resolve(raw)
	if len(verrs) > 0 {
		return outputValidationErrors(formatter, verrs)
	}

	result := &ValidationResult{
		Valid:       true,
		Constraints: len(cfg.Constraints),
		Wrappers:    len(cfg.Wrappers()),
	}
	return formatter.Success(result)
}
