package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/KromDaniel/soundnfa/pkg/nfa"
)

func newMatchCommand() *cobra.Command {
	var (
		rule    ruleFlags
		longest bool
		chars   bool
		start   int
	)

	cmd := &cobra.Command{
		Use:   "match [symbols...]",
		Short: "Match a rule against the start of a word",
		Long: `Match runs an anchored match of the rule against the given symbols.

By default the first successful path wins, following the greedy or lazy
preference of each repetition. With --longest every path is explored and
the one consuming the most symbols is reported.`,
		Example: `  # Match symbol by symbol
  soundnfa match -f palatalization.yaml k i t

  # Split a word into single-character symbols
  soundnfa match -f palatalization.yaml --chars kit --longest`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, a, err := rule.load()
			if err != nil {
				return err
			}

			mode := nfa.FirstMatch
			if longest {
				mode = nfa.LongestMatch
			}
			input := symbolsFromArgs(args, chars)

			log.Debug().
				Str("rule", doc.Name).
				Str("mode", mode.String()).
				Int("start", start).
				Int("symbols", len(input)).
				Msg("Matching")

			r, err := a.MatchAt(input, start, mode)
			if err != nil {
				return fmt.Errorf("match failed: %w", err)
			}
			return printResult(cmd.OutOrStdout(), doc.Name, input, r)
		},
	}

	rule.register(cmd)
	cmd.Flags().BoolVar(&longest, "longest", false, "report the longest match instead of the first")
	cmd.Flags().BoolVar(&chars, "chars", false, "split arguments into single-character symbols")
	cmd.Flags().IntVar(&start, "start", 0, "position to anchor the match at")

	return cmd
}

func newScanCommand() *cobra.Command {
	var (
		rule    ruleFlags
		longest bool
		advance bool
		chars   bool
		each    bool
	)

	cmd := &cobra.Command{
		Use:   "scan [symbols...]",
		Short: "Find every match of a rule across a word",
		Long: `Scan anchors the rule at successive positions of the word and
aggregates the consumed symbols and captured indexes of every match.

With --each the individual matches are listed instead of the aggregate.`,
		Example: `  soundnfa scan -f palatalization.yaml a k i t
  soundnfa scan -f lenition.yaml --chars --each atapa`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, a, err := rule.load()
			if err != nil {
				return err
			}

			cfg := nfa.ScanConfig{AdvancePastMatch: advance}
			if longest {
				cfg.Mode = nfa.LongestMatch
			}
			input := symbolsFromArgs(args, chars)

			log.Debug().
				Str("rule", doc.Name).
				Str("mode", cfg.Mode.String()).
				Bool("advance", advance).
				Int("symbols", len(input)).
				Msg("Scanning")

			if !each {
				r, err := a.Scan(input, cfg)
				if err != nil {
					return fmt.Errorf("scan failed: %w", err)
				}
				return printResult(cmd.OutOrStdout(), doc.Name, input, r)
			}

			var matches []scanOutput
			err = a.ScanEach(input, cfg, func(m nfa.ScanMatch) bool {
				matches = append(matches, scanOutput{
					Start:    m.Start,
					Consumed: nonNil(m.Consumed),
					Captured: nonNil(m.CapturedIndexes),
				})
				return true
			})
			if err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}
			return printMatches(cmd, doc.Name, matches)
		},
	}

	rule.register(cmd)
	cmd.Flags().BoolVar(&longest, "longest", false, "use longest matching at each position")
	cmd.Flags().BoolVar(&advance, "advance", false, "skip past matches that record no captures")
	cmd.Flags().BoolVar(&chars, "chars", false, "split arguments into single-character symbols")
	cmd.Flags().BoolVar(&each, "each", false, "list every match separately")

	return cmd
}

type scanOutput struct {
	Start    int          `json:"start"`
	Consumed []nfa.Symbol `json:"consumed"`
	Captured []int        `json:"captured"`
}

func printMatches(cmd *cobra.Command, rule string, matches []scanOutput) error {
	w := cmd.OutOrStdout()
	if jsonOutput {
		return writeJSON(w, nonNil(matches))
	}
	if len(matches) == 0 {
		_, err := fmt.Fprintf(w, "%s: no match\n", rule)
		return err
	}
	for _, m := range matches {
		if _, err := fmt.Fprintf(w, "%d: %v captured %v\n", m.Start, m.Consumed, m.Captured); err != nil {
			return err
		}
	}
	return nil
}
