package cli

import (
	"fmt"
	"os"

	"github.com/epieczko/agents/internal/branding"
	"github.com/epieczko/agents/internal/config"
	"github.com/epieczko/agents/internal/source"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	cfgFile string
	cfg     *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ~/"+branding.HomeDir()+"/config.yaml)")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` turns a plugin marketplace into flat JSON catalogs, splits them
into smaller selections, and imports chosen agents, commands, and skills
into a destination tree.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded

		// Skip the freshness hint for commands that manage the checkout themselves.
		if cmd.Name() == "version" || cmd.Parent() != nil && cmd.Parent().Name() == "source" {
			return nil
		}
		dir := cfg.SourceDir()
		if source.New(cfg.Source.RepoURL, dir).Exists() && source.IsStale(dir, cfg.Source.MaxAge) {
			fmt.Fprintf(os.Stderr, "Source checkout is older than %s. Run '%s source update'.\n", cfg.Source.MaxAge, branding.CLIName())
		}
		return nil
	},
}

// Execute runs the root command with build info injected via ldflags.
// A returned error has already been printed to stderr.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
