package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/KromDaniel/soundnfa/pkg/nfa"
)

func newGenerateCommand() *cobra.Command {
	var (
		rule      ruleFlags
		maxLength int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "List every sequence a rule accepts",
		Long: `Generate enumerates the sequences accepted by the rule, in the order
its greedy and lazy preferences explore them.

Rules with repetition accept infinitely many sequences and are rejected
unless --max-length bounds the enumeration.`,
		Example: `  soundnfa generate -f onsets.yaml
  soundnfa generate -f lenition.yaml --max-length 4 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, a, err := rule.load()
			if err != nil {
				return err
			}

			var seqs [][]nfa.Symbol
			if cmd.Flags().Changed("max-length") {
				log.Debug().Str("rule", doc.Name).Int("max_length", maxLength).Msg("Generating bounded")
				seqs, err = a.GenerateBounded(maxLength)
			} else {
				log.Debug().Str("rule", doc.Name).Msg("Generating")
				seqs, err = a.GenerateAll()
			}
			if errors.Is(err, nfa.ErrCyclic) {
				return fmt.Errorf("%s repeats without bound, pass --max-length: %w", doc.Name, err)
			}
			if err != nil {
				return err
			}

			log.Info().Str("rule", doc.Name).Int("sequences", len(seqs)).Msg("Generated sequences")

			w := cmd.OutOrStdout()
			if jsonOutput {
				out := make([][]nfa.Symbol, len(seqs))
				for i, s := range seqs {
					out[i] = nonNil(s)
				}
				return writeJSON(w, out)
			}
			for _, s := range seqs {
				line := strings.Join(s, " ")
				if line == "" {
					line = "ε"
				}
				if _, err := fmt.Fprintln(w, line); err != nil {
					return err
				}
			}
			return nil
		},
	}

	rule.register(cmd)
	cmd.Flags().IntVar(&maxLength, "max-length", 0, "only list sequences up to this many symbols")

	return cmd
}
