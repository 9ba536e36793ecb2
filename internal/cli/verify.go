package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/strictnum/floatgen/internal/compiler"
	"github.com/strictnum/floatgen/internal/harness"
)

// VerifyOptions holds flags for the verify command.
type VerifyOptions struct {
	*RootOptions
	Config string
}

// ScenarioOutcome summarises one scenario run.
type ScenarioOutcome struct {
	Name     string   `json:"name" yaml:"name"`
	Checks   int      `json:"checks" yaml:"checks"`
	Failed   int      `json:"failed" yaml:"failed"`
	Failures []string `json:"failures,omitempty" yaml:"failures,omitempty"`
}

// VerifyReport aggregates scenario outcomes.
type VerifyReport struct {
	Scenarios []ScenarioOutcome `json:"scenarios" yaml:"scenarios"`
	Failed    int               `json:"failed" yaml:"failed"`
}

func (r *VerifyReport) String() string {
	var b strings.Builder
	for _, sc := range r.Scenarios {
		if sc.Failed == 0 {
			fmt.Fprintf(&b, "ok   %s (%d checks)\n", sc.Name, sc.Checks)
			continue
		}
		fmt.Fprintf(&b, "FAIL %s (%d of %d checks failed)\n", sc.Name, sc.Failed, sc.Checks)
		for _, failure := range sc.Failures {
			fmt.Fprintf(&b, "  %s\n", failure)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &VerifyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "verify SCENARIO.yaml...",
		Short: "Run YAML conformance scenarios against the inference kernel",
		Long: `Run conformance scenarios against the inference tables of a constraint
configuration. Each check is evaluated with the predicate evaluator and
IEEE arithmetic; exits 1 when any check fails.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Config, "config", "", "config CUE file or directory")

	return cmd
}

func runVerify(opts *VerifyOptions, paths []string, cmd *cobra.Command) error {
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
	cfg, verrs := compiler.Resolve(raw)
	if len(verrs) > 0 {
		return outputValidationErrors(formatter, verrs)
	}

	runner := harness.NewRunner(cfg)
	report := &VerifyReport{}
	for _, path := range paths {
		scenario, err := harness.LoadScenario(path)
		if err != nil {
			msg := fmt.Sprintf("loading %s: %v", path, err)
			formatter.Error(ErrCodeLoadFailed, msg, nil)
			return NewExitError(ExitCommandError, msg)
		}
		formatter.VerboseLog("Running scenario %s (%d checks)", scenario.Name, len(scenario.Checks))

		result := runner.Run(scenario)
		outcome := ScenarioOutcome{
			Name:   result.Scenario,
			Checks: len(result.Checks),
			Failed: result.Failed,
		}
		for _, check := range result.Checks {
			if !check.Pass {
				outcome.Failures = append(outcome.Failures,
					fmt.Sprintf("check %d (%s): %s", check.Index, check.Kind, check.Detail))
			}
		}
		report.Scenarios = append(report.Scenarios, outcome)
		report.Failed += result.Failed
	}

	if err := formatter.Success(report); err != nil {
		return err
	}
	if report.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d check(s) failed", report.Failed))
	}
	return nil
}
