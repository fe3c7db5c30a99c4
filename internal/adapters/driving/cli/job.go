package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var jobTitle string

var jobCmd = &cobra.Command{
	Use:   "job [file]",
	Short: "Clean and parse a job description",
	Long: `Cleans pasted job description text and extracts metadata
(title, seniority, role type, remote type, salary) and named sections
(requirements, nice-to-have, responsibilities, benefits).

Reads from the given file, or from stdin when no file is provided.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runJob,
}

func init() {
	jobCmd.Flags().StringVar(&jobTitle, "title", "", "job title (overrides extraction)")
	rootCmd.AddCommand(jobCmd)
}

func runJob(cmd *cobra.Command, args []string) error {
	if jobService == nil {
		return errors.New("job service not configured")
	}

	var (
		raw []byte
		err error
	)
	if len(args) == 1 {
		raw, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
	} else {
		raw, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}

	result := jobService.CleanAndParse(string(raw), jobTitle)
	return printJSON(cmd, result)
}
