package cli

import (
	"fmt"
	"time"

	"github.com/epieczko/agents/internal/branding"
	"github.com/epieczko/agents/internal/source"
	"github.com/spf13/cobra"
)

func init() {
	sourceCmd.AddCommand(sourceUpdateCmd)
	sourceCmd.AddCommand(sourceStatusCmd)
	rootCmd.AddCommand(sourceCmd)
}

var sourceCmd = &cobra.Command{
	Use:   "source",
	Short: "Manage the local checkout of the marketplace repository",
	Long: `Keep a shallow git checkout of the marketplace repository (by default
` + branding.SourceRepoURL() + `) under ~/` + branding.HomeDir() + `/.

Point repo_root at the checkout to extract from it:

  ` + branding.CLIName() + ` config set repo_root ~/` + branding.HomeDir() + `/agents-source`,
}

var sourceUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Clone or pull the marketplace repository",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := source.New(cfg.Source.RepoURL, cfg.SourceDir())
		fmt.Fprintf(cmd.OutOrStdout(), "Updating %s from %s...\n", repo.Dir, repo.URL)

		if err := repo.Update(cmd.Context()); err != nil {
			return fmt.Errorf("updating source: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "✓ Source updated successfully.")
		return nil
	},
}

var sourceStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show source checkout location and freshness",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		repo := source.New(cfg.Source.RepoURL, cfg.SourceDir())

		fmt.Fprintf(out, "Source path:  %s\n", repo.Dir)
		fmt.Fprintf(out, "Repo URL:     %s\n", repo.URL)

		if !repo.Exists() {
			fmt.Fprintln(out, "Status:       not cloned")
			fmt.Fprintf(out, "\nRun '%s source update' to clone it.\n", branding.CLIName())
			return nil
		}

		lastUpdated := source.ReadFreshnessMarker(repo.Dir)
		if lastUpdated.IsZero() {
			fmt.Fprintln(out, "Last updated: unknown")
		} else {
			age := time.Since(lastUpdated).Truncate(time.Minute)
			fmt.Fprintf(out, "Last updated: %s (%s ago)\n", lastUpdated.Format(time.RFC3339), age)
		}

		if source.IsStale(repo.Dir, cfg.Source.MaxAge) {
			fmt.Fprintf(out, "Status:       stale (run '%s source update')\n", branding.CLIName())
		} else {
			fmt.Fprintln(out, "Status:       up to date")
		}
		return nil
	},
}
