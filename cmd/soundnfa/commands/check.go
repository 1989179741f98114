package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type caseOutput struct {
	Index  int      `json:"index"`
	Input  []string `json:"input"`
	Passed bool     `json:"passed"`
	Error  string   `json:"error,omitempty"`
}

func newCheckCommand() *cobra.Command {
	var rule ruleFlags

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the cases recorded in a rule description",
		Long: `Check compiles the rule and runs every case listed under "cases",
comparing matched, consumed and captured values with the expectation.

The command fails if any case fails.`,
		Example: `  soundnfa check -f palatalization.yaml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := rule.load()
			if err != nil {
				return err
			}

			results, err := doc.RunCases()
			if err != nil {
				return err
			}

			failed := 0
			out := make([]caseOutput, 0, len(results))
			for _, r := range results {
				co := caseOutput{Index: r.Index, Input: r.Case.Input, Passed: r.Passed()}
				if !r.Passed() {
					failed++
					co.Error = r.Err.Error()
					log.Warn().Str("rule", doc.Name).Int("case", r.Index).Err(r.Err).Msg("Case failed")
				}
				out = append(out, co)
			}

			w := cmd.OutOrStdout()
			if jsonOutput {
				if err := writeJSON(w, out); err != nil {
					return err
				}
			} else {
				for _, co := range out {
					status := "ok"
					if !co.Passed {
						status = "FAIL " + co.Error
					}
					if _, err := fmt.Fprintf(w, "case %d %v: %s\n", co.Index, co.Input, status); err != nil {
						return err
					}
				}
			}

			log.Info().Str("rule", doc.Name).Int("cases", len(results)).Int("failed", failed).Msg("Checked cases")
			if failed > 0 {
				return fmt.Errorf("%d of %d cases failed", failed, len(results))
			}
			return nil
		},
	}

	rule.register(cmd)
	return cmd
}
