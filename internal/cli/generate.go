package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/strictnum/floatgen/internal/compiler"
	"github.com/strictnum/floatgen/internal/gen"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	Config  string // config file or directory; empty means the default table
	Out     string // output directory
	Package string // package name override
}

// GenerateResult summarises a generation run.
type GenerateResult struct {
	Package     string   `json:"package" yaml:"package"`
	Fingerprint string   `json:"fingerprint" yaml:"fingerprint"`
	OutDir      string   `json:"out_dir" yaml:"out_dir"`
	Files       []string `json:"files" yaml:"files"`
}

func (r *GenerateResult) String() string {
	return fmt.Sprintf("Generated %d file(s) in %s (package %s, fingerprint %s)",
		len(r.Files), r.OutDir, r.Package, r.Fingerprint)
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the wrapper package from a constraint configuration",
		Long: `Compile a constraint configuration, run result inference, and emit the
wrapper package. Without --config the built-in default table is used.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Config, "config", "", "config CUE file or directory")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", ".", "output directory")
	cmd.Flags().StringVar(&opts.Package, "package", "", "generated package name override")

	return cmd
}

func runGenerate(opts *GenerateOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	raw, err := LoadRawConfig(opts.Config)
	if err != nil {
		return outputLoadError(formatter, err)
	}
	if opts.Package != "" {
		raw.Package = opts.Package
	}

	cfg, verrs := compiler.Resolve(raw)
	if len(verrs) > 0 {
		return outputValidationErrors(formatter, verrs)
	}

	formatter.VerboseLog("Resolved %d constraint(s), %d wrapper type(s)", len(cfg.Constraints), len(cfg.Wrappers()))

	generator, err := gen.New(cfg)
	if err != nil {
		formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}
	files, err := generator.Generate()
	if err != nil {
		formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}

	if err := os.MkdirAll(opts.Out, 0o755); err != nil {
		msg := fmt.Sprintf("creating output directory: %v", err)
		formatter.Error(ErrCodeWriteFailed, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	result := &GenerateResult{
		Package:     cfg.Package,
		Fingerprint: generator.Fingerprint(),
		OutDir:      opts.Out,
	}
	for _, file := range files {
		path := filepath.Join(opts.Out, file.Name)
		if err := os.WriteFile(path, file.Content, 0o644); err != nil {
			msg := fmt.Sprintf("writing %s: %v", path, err)
			formatter.Error(ErrCodeWriteFailed, msg, nil)
			return NewExitError(ExitCommandError, msg)
		}
		formatter.VerboseLog("Wrote %s", path)
		result.Files = append(result.Files, file.Name)
	}

	return formatter.Success(result)
}

// outputValidationErrors renders configuration diagnostics and signals
// a validation failure exit code.
func outputValidationErrors(formatter *OutputFormatter, verrs []compiler.ValidationError) error {
	if formatter.Format == "text" {
		fmt.Fprintf(formatter.Writer, "Configuration invalid: %d error(s)\n", len(verrs))
		for _, verr := range verrs {
			fmt.Fprintf(formatter.Writer, "  %s\n", verr.Error())
		}
	} else {
		formatter.Error(ErrCodeBadConfig, "configuration invalid", verrs)
	}
	return NewExitError(ExitFailure, "configuration invalid")
}
