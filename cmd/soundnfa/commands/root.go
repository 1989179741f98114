// Package commands implements the soundnfa command tree.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose    bool
	jsonOutput bool
)

// Execute runs the root command
func Execute(ctx context.Context, version, commit string) error {
	return newRootCommand(version, commit).ExecuteContext(ctx)
}

func newRootCommand(version, commit string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "soundnfa",
		Short: "Match and enumerate sound-change rule automata",
		Long: `soundnfa works with sound-change rules described as YAML combinator trees.

Each rule compiles to a nondeterministic finite automaton over phonetic
symbols. The automaton can be matched against a word, scanned across it,
enumerated, checked against the cases recorded in the description, or
emitted as Go source.`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")

	rootCmd.AddCommand(newMatchCommand())
	rootCmd.AddCommand(newScanCommand())
	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newCodegenCommand())

	return rootCmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
