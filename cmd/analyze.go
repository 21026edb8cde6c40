package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/careerbooster/cb-cli/internal/careerbooster"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.pdf>",
	Short: "Upload a CV for automated analysis",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := newAppState()
		if err != nil {
			return err
		}

		if err := state.requireAuth(); err != nil {
			printError(err)
			return err
		}

		path := args[0]
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return err
		}

		analysisType, _ := cmd.Flags().GetString("type")

		file := careerbooster.UploadFile{
			Name:      filepath.Base(path),
			MediaType: mediaTypeFor(path),
			Size:      info.Size(),
			Content:   f,
		}

		uploader := careerbooster.NewUploader(state.api)
		job, err := uploader.Start(cmd.Context(), file, analysisType)
		if err != nil {
			printError(err)
			return err
		}

		printTitle("Analysis results")
		fmt.Println(job.ResultText)

		if store := state.openHistory(); store != nil {
			defer store.Close()
			if err := store.RecordAnalysis(cmd.Context(), file.Name, analysisType, job.ResultText); err != nil {
				state.logger.Warn("recording analysis history", zap.Error(err))
			}
		}

		return nil
	},
}

// mediaTypeFor guesses the picked file's type from its extension. The upload
// layer coerces it to PDF anyway, but a mismatch is worth a warning there.
func mediaTypeFor(path string) string {
	switch filepath.Ext(path) {
	case ".pdf":
		return careerbooster.PDFMediaType
	case "":
		return ""
	default:
		return "application/octet-stream"
	}
}

func init() {
	analyzeCmd.Flags().String("type", careerbooster.DefaultAnalysisType, "analysis type requested from the backend")

	rootCmd.AddCommand(analyzeCmd)
}
