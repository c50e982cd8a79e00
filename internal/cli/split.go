package cli

import (
	"fmt"

	"github.com/epieczko/agents/internal/split"
	"github.com/spf13/cobra"
)

var splitTemplates string

func init() {
	splitCmd.Flags().StringVar(&splitTemplates, "templates", "", "Directory holding the catalogs and recommended-*.json")
	rootCmd.AddCommand(splitCmd)
}

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Partition catalogs by priority, category, and plugin",
	Long: `Write smaller selections of the extracted catalogs:

  split/<kind>-priority-<tier>.json     names tagged with <tier> in any collection
  split/<kind>-category-<name>.json     one file per configured category
  split/plugin-<name>.json              agents, commands, and skills of one plugin
  metadata/<kind>-metadata.json         catalogs without content

Source catalogs are never modified. Re-running overwrites the outputs.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		applyString(&cfg.TemplatesDir, splitTemplates)

		out := cmd.OutOrStdout()
		fmt.Fprint(out, "Splitting large JSON files into manageable chunks...\n\n")
		if err := split.New(cfg, out).Run(); err != nil {
			return err
		}

		fmt.Fprintln(out, "\n✅ All splits created successfully!")
		fmt.Fprintln(out, "\nCreated directories:")
		fmt.Fprintf(out, "  %s/  - Priority, category, and plugin-based splits\n", cfg.SplitDir())
		fmt.Fprintf(out, "  %s/  - Lightweight metadata-only files\n", cfg.MetadataDir())
		return nil
	},
}
