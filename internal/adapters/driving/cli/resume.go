package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var resumeFull bool

var resumeCmd = &cobra.Command{
	Use:   "resume [file.pdf]",
	Short: "Extract text and structure from a resume PDF",
	Long: `Stores the PDF under the configured upload directory, extracts
its text page by page, and reports page, line and bullet counts.

With --full the extracted document and its structural parse (section
buckets, contact hints, skill tokens) are printed instead of the
upload summary.`,
	Args: cobra.ExactArgs(1),
	RunE: runResume,
}

func init() {
	resumeCmd.Flags().BoolVar(&resumeFull, "full", false, "print extracted text and structure")
	rootCmd.AddCommand(resumeCmd)
}

func runResume(cmd *cobra.Command, args []string) error {
	if resumeService == nil {
		return errors.New("resume service not configured")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	if resumeFull {
		extracted := resumeService.Extract(cmd.Context(), data)
		structure := resumeService.ParseBasicStructure(extracted.Lines)
		return printJSON(cmd, map[string]any{
			"document":  extracted,
			"structure": structure,
		})
	}

	summary, err := resumeService.ProcessUpload(cmd.Context(), filepath.Base(args[0]), data)
	if err != nil {
		return err
	}
	return printJSON(cmd, summary)
}
