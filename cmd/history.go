package cmd

import (
	"fmt"
	"time"

	"github.com/careerbooster/cb-cli/internal/util"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent analyses and generated CVs recorded on this machine",
	RunE: func(cmd *cobra.Command, _ []string) error {
		state, err := newAppState()
		if err != nil {
			return err
		}

		store := state.openHistory()
		if store == nil {
			printMuted("history is not available")
			return nil
		}
		defer store.Close()

		limit, _ := cmd.Flags().GetInt("limit")

		analyses, err := store.RecentAnalyses(cmd.Context(), limit)
		if err != nil {
			return err
		}
		generations, err := store.RecentGenerations(cmd.Context(), limit)
		if err != nil {
			return err
		}

		if len(analyses) == 0 && len(generations) == 0 {
			printMuted("no history yet")
			return nil
		}

		if len(analyses) > 0 {
			printTitle("Analyses")
			for _, a := range analyses {
				printCard(
					fmt.Sprintf("%s (%s)", a.FileName, a.AnalysisType),
					a.CreatedAt.Local().Format(time.RFC1123),
					util.Truncate(a.Excerpt, 120),
				)
			}
		}

		if len(generations) > 0 {
			printTitle("Generated CVs")
			for _, g := range generations {
				printCard(
					fmt.Sprintf("record %s, template %s", g.RecordID, g.Template),
					g.CreatedAt.Local().Format(time.RFC1123),
					g.OutputPath,
				)
			}
		}

		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 10, "maximum rows per section")

	rootCmd.AddCommand(historyCmd)
}
