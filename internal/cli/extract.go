package cli

import (
	"fmt"

	"github.com/epieczko/agents/internal/extract"
	"github.com/epieczko/agents/internal/manifest"
	"github.com/spf13/cobra"
)

var (
	extractRepo     string
	extractManifest string
	extractOut      string
)

func init() {
	extractCmd.Flags().StringVar(&extractRepo, "repo", "", "Repository root plugin sources resolve against")
	extractCmd.Flags().StringVar(&extractManifest, "manifest", "", "Marketplace manifest path, relative to --repo")
	extractCmd.Flags().StringVar(&extractOut, "out", "", "Directory the catalogs are written to")
	rootCmd.AddCommand(extractCmd)
}

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Build flat JSON catalogs from a marketplace manifest",
	Long: `Read the marketplace manifest, resolve every declared agent, command, and
skill against its plugin's source directory, and write agents.json,
commands.json, skills.json, plugins.json, hooks.json, mcps.json, and
summary.json. Declared files missing on disk are skipped and counted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		applyString(&cfg.RepoRoot, extractRepo)
		applyString(&cfg.Manifest, extractManifest)
		applyString(&cfg.TemplatesDir, extractOut)

		m, err := manifest.Load(cfg.ManifestPath())
		if err != nil {
			return err
		}

		res, err := extract.New(cfg).Run(m)
		if err != nil {
			return err
		}
		if err := extract.Write(cfg.TemplatesDir, cfg.Repository, res); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "✓ Extracted %d agents\n", len(res.Agents))
		fmt.Fprintf(out, "✓ Extracted %d commands\n", len(res.Commands))
		fmt.Fprintf(out, "✓ Extracted %d skills\n", len(res.Skills))
		fmt.Fprintf(out, "✓ Extracted %d plugins\n", len(res.Plugins))
		if n := res.Skipped.Total(); n > 0 {
			fmt.Fprintf(out, "  %d artifacts skipped (declared but not found)\n", n)
		}
		fmt.Fprintf(out, "\nAll files saved to: %s/\n", cfg.TemplatesDir)
		return nil
	},
}

// applyString overrides *dst with a non-empty flag value.
func applyString(dst *string, flag string) {
	if flag != "" {
		*dst = flag
	}
}
