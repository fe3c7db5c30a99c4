// Package cli implements the jobfit command-line interface. Commands
// print JSON so output can be piped into other tooling.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/jobfit-labs/jobfit-ingest/internal/adapters/driven/config/file"
	"github.com/jobfit-labs/jobfit-ingest/internal/connectors/github"
	"github.com/jobfit-labs/jobfit-ingest/internal/core/ports/driving"
	"github.com/jobfit-labs/jobfit-ingest/internal/core/services"
	"github.com/jobfit-labs/jobfit-ingest/internal/extract"
	"github.com/jobfit-labs/jobfit-ingest/internal/extract/pdfpage"
	"github.com/jobfit-labs/jobfit-ingest/internal/logger"
	"github.com/jobfit-labs/jobfit-ingest/internal/webfetch"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	verbose   bool
	configDir string
)

// Services are package-level so tests can inject fakes before Execute.
var (
	jobService    driving.JobIngestor
	resumeService driving.ResumeIngestor
	repoService   driving.RepositoryIngestor
	configStore   *file.ConfigStore
)

var rootCmd = &cobra.Command{
	Use:   "jobfit",
	Short: "Ingest job descriptions, resumes and GitHub repositories",
	Long: `jobfit turns messy hiring inputs into clean, structured data.

It cleans pasted job descriptions, fetches postings from job board URLs,
extracts text and bullet points from resume PDFs, and resolves GitHub
repository metadata.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.jobfit)")
}

// initServices wires the default adapters into the services. Services
// already set (by tests) are left alone.
func initServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if configStore == nil {
		store, err := file.NewConfigStore(configDir)
		if err != nil {
			return err
		}
		configStore = store
	}
	settings := configStore.IngestSettings()

	if jobService == nil {
		fetcher := webfetch.New(nil, settings.FetchTimeout, settings.MaxContentBytes)
		jobService = services.NewJobService(fetcher)
	}

	if resumeService == nil {
		extractor := extract.New(pdfpage.New())
		resumeService = services.NewResumeService(extractor, settings)
	}

	if repoService == nil {
		client := github.NewClient(cmd.Context(), settings.GitHubToken)
		repoService = github.NewResolver(client)
	}

	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
