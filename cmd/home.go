package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show your career progress and recent analyses",
	RunE: func(cmd *cobra.Command, _ []string) error {
		state, err := newAppState()
		if err != nil {
			return err
		}

		if err := state.requireAuth(); err != nil {
			printError(err)
			return err
		}

		summary, err := state.api.Home(cmd.Context())
		if err != nil {
			printError(err)
			return err
		}

		if len(summary.UserProgress) > 0 {
			lines := make([]string, 0, len(summary.UserProgress))
			keys := make([]string, 0, len(summary.UserProgress))
			for k := range summary.UserProgress {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				lines = append(lines, fmt.Sprintf("%s: %v", k, summary.UserProgress[k]))
			}
			printCard("Progress", lines...)
		}

		for _, analysis := range summary.RecentAnalyses {
			lines := []string{}
			for _, key := range []string{"fileName", "analysisType", "createdAt"} {
				if v, ok := analysis[key]; ok {
					lines = append(lines, fmt.Sprintf("%s: %v", key, v))
				}
			}
			printCard("Recent analysis", lines...)
		}

		if len(summary.UserProgress) == 0 && len(summary.RecentAnalyses) == 0 {
			printMuted("nothing to show yet, upload a CV to get started")
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(homeCmd)
}
