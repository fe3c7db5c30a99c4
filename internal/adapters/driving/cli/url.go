package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var urlTitle string

var urlCmd = &cobra.Command{
	Use:   "url [url]",
	Short: "Fetch and parse a job posting from a URL",
	Long: `Fetches a job posting page, extracts its text, and parses it
like the job command.

Known script-only job boards (LinkedIn, Indeed, Glassdoor, Workday) are
rejected without a network call; the result carries a fallback message
asking for pasted text instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runURL,
}

func init() {
	urlCmd.Flags().StringVar(&urlTitle, "title", "", "job title (overrides extraction)")
	rootCmd.AddCommand(urlCmd)
}

func runURL(cmd *cobra.Command, args []string) error {
	if jobService == nil {
		return errors.New("job service not configured")
	}

	result := jobService.IngestURL(cmd.Context(), args[0], urlTitle)
	return printJSON(cmd, result)
}
