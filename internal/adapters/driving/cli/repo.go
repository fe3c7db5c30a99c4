package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var repoCmd = &cobra.Command{
	Use:   "repo [url...]",
	Short: "Fetch GitHub repository metadata",
	Long: `Resolves GitHub repository URLs and fetches metadata, language
statistics and README content.

Multiple URLs are fetched concurrently. Invalid or inaccessible
repositories produce error records in the output rather than failing
the whole batch. Set GITHUB_TOKEN or github.token in the config for
the authenticated rate limit.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRepo,
}

var repoRateLimitCmd = &cobra.Command{
	Use:   "ratelimit",
	Short: "Show the GitHub API rate limit status",
	Args:  cobra.NoArgs,
	RunE:  runRepoRateLimit,
}

func init() {
	repoCmd.AddCommand(repoRateLimitCmd)
	rootCmd.AddCommand(repoCmd)
}

func runRepo(cmd *cobra.Command, args []string) error {
	if repoService == nil {
		return errors.New("repository service not configured")
	}

	if len(args) == 1 {
		record := repoService.FetchFromURL(cmd.Context(), args[0])
		if record == nil {
			return errors.New("not a GitHub repository URL")
		}
		return printJSON(cmd, record)
	}

	records := repoService.FetchMany(cmd.Context(), args)
	return printJSON(cmd, records)
}

func runRepoRateLimit(cmd *cobra.Command, _ []string) error {
	if repoService == nil {
		return errors.New("repository service not configured")
	}

	status, err := repoService.RateLimit(cmd.Context())
	if err != nil {
		return err
	}
	return printJSON(cmd, status)
}
