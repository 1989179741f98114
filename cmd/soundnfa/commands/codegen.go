package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/KromDaniel/soundnfa/internal/logging"
	"github.com/KromDaniel/soundnfa/pkg/rulegen"
)

func newCodegenCommand() *cobra.Command {
	var opts rulegen.Options

	cmd := &cobra.Command{
		Use:   "codegen",
		Short: "Emit a rule as Go source",
		Long: `Codegen compiles a rule description and writes a Go file holding its
state table and an automaton rebuilt from it at package initialization.

When the description records cases a matching _test.go file is written
next to the output unless --no-test-file is given.`,
		Example: `  soundnfa codegen -f palatalization.yaml -o rules/palatalization.go
  soundnfa codegen -f lenition.yaml -o lenition.go --package sound --name Lenite`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				opts.Logger = logging.FromZerolog(true, log.Logger)
			}

			log.Info().
				Str("description", opts.DescriptionFile).
				Str("output", opts.OutputFile).
				Msg("Generating rule source")

			if err := rulegen.Compile(opts); err != nil {
				return err
			}

			log.Info().Str("output", opts.OutputFile).Msg("Rule source written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.DescriptionFile, "file", "f", "", "rule description (YAML)")
	cmd.Flags().StringVarP(&opts.OutputFile, "output", "o", "", "output Go file")
	cmd.Flags().StringVar(&opts.Package, "package", "", "package name (defaults to the description's)")
	cmd.Flags().StringVar(&opts.Name, "name", "", "variable name (defaults to the rule name)")
	cmd.Flags().BoolVar(&opts.GenerateTestFile, "test-file", false, "always write a test file")
	cmd.Flags().BoolVar(&opts.NoTestFile, "no-test-file", false, "never write a test file")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
