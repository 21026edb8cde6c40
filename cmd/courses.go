package cmd

import (
	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses [category]",
	Short: "Browse course suggestions, optionally filtered by category",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := newAppState()
		if err != nil {
			return err
		}

		category := ""
		if len(args) > 0 {
			category = args[0]
		}

		courses, err := state.api.Courses(cmd.Context(), category)
		if err != nil {
			printError(err)
			return err
		}

		if courses.Len() == 0 {
			printMuted("no courses found")
			return nil
		}

		for _, course := range courses.Items {
			lines := []string{}
			if course.Provider != "" {
				lines = append(lines, course.Provider)
			}
			if course.Description != "" {
				lines = append(lines, course.Description)
			}
			if course.URL != "" {
				lines = append(lines, course.URL)
			}
			printCard(course.Name, lines...)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(coursesCmd)
}
