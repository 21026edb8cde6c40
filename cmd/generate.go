package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/careerbooster/cb-cli/internal/careerbooster"
	"github.com/careerbooster/cb-cli/internal/cvdraft"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"rsc.io/pdf"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Create a CV record from a draft file and download the rendered PDF",
	RunE: func(cmd *cobra.Command, _ []string) error {
		state, err := newAppState()
		if err != nil {
			return err
		}

		if err := state.requireAuth(); err != nil {
			printError(err)
			return err
		}

		draftPath, _ := cmd.Flags().GetString("file")
		output, _ := cmd.Flags().GetString("output")
		template, _ := cmd.Flags().GetString("template")
		if template == "" {
			template = state.config.Template
		}

		draft, err := cvdraft.LoadFile(draftPath)
		if err != nil {
			printError(err)
			return err
		}

		if err := draft.Validate(); err != nil {
			printError(err)
			return err
		}

		if _, err := os.Stat(output); err == nil {
			prompt := promptui.Select{
				Label: fmt.Sprintf("%s exists, overwrite?", output),
				Items: []string{"Yes", "No"},
			}
			_, answer, err := prompt.Run()
			if err != nil {
				return err
			}
			if answer != "Yes" {
				return nil
			}
		}

		id, doc, err := state.api.Generate(cmd.Context(), draft, template)
		if err != nil {
			if id != "" {
				// the record exists server-side, keep the id visible so
				// a second export attempt stays possible
				err = fmt.Errorf("record %s was created but the export failed: %w", id, err)
			}
			printError(err)
			return err
		}

		if err := os.WriteFile(output, doc, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", output, err)
		}

		printSuccess("CV %s rendered with template %q -> %s", id, template, output)
		reportPDF(state.logger, doc)

		if store := state.openHistory(); store != nil {
			defer store.Close()
			if err := store.RecordGeneration(cmd.Context(), id, template, output); err != nil {
				state.logger.Warn("recording generation history", zap.Error(err))
			}
		}

		return nil
	},
}

// reportPDF sanity-checks the downloaded bytes and reports the page count.
// A malformed document is a warning, not a failure: the file is already on
// disk for inspection.
func reportPDF(logger *zap.Logger, doc []byte) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("downloaded document does not parse as PDF", zap.Any("reason", r))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(doc), int64(len(doc)))
	if err != nil {
		logger.Warn("downloaded document does not parse as PDF", zap.Error(err))
		return
	}

	printMuted("%d page(s), %d bytes", reader.NumPage(), len(doc))
}

func init() {
	generateCmd.Flags().StringP("file", "f", "cv.yaml", "draft file to submit")
	generateCmd.Flags().StringP("output", "o", "cv.pdf", "where to write the rendered PDF")
	generateCmd.Flags().StringP("template", "t", careerbooster.DefaultTemplate, "rendering template name")

	rootCmd.AddCommand(generateCmd)
}
