package cli

import (
	"fmt"

	"github.com/epieczko/agents/internal/importer"
	"github.com/spf13/cobra"
)

var (
	importList        bool
	importPriority    string
	importPlugin      string
	importCategory    string
	importRecommended string
	importDest        string
	importTemplates   string
)

func init() {
	importCmd.Flags().BoolVar(&importList, "list", false, "List available selections")
	importCmd.Flags().StringVar(&importPriority, "priority", "", "Import every split file of a priority tier")
	importCmd.Flags().StringVar(&importPlugin, "plugin", "", "Import one plugin's split file")
	importCmd.Flags().StringVar(&importCategory, "category", "", "Import every split file of a category")
	importCmd.Flags().StringVar(&importRecommended, "recommended", "", "Import a curated collection")
	importCmd.Flags().StringVar(&importDest, "dest", "", "Destination directory")
	importCmd.Flags().StringVar(&importTemplates, "templates", "", "Directory holding catalogs and splits")

	// Malformed invocations print usage instead of failing.
	importCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		fmt.Fprintln(c.OutOrStdout(), err)
		fmt.Fprint(c.OutOrStdout(), c.UsageString())
		return nil
	})
	rootCmd.AddCommand(importCmd)
}

// importMode names which selection an import invocation runs.
type importMode int

const (
	modeInteractive importMode = iota
	modeList
	modePriority
	modePlugin
	modeCategory
	modeRecommended
)

// resolveImportMode picks the first selector set, in flag order, and its value.
func resolveImportMode(list bool, priority, plugin, category, recommended string) (importMode, string) {
	switch {
	case list:
		return modeList, ""
	case priority != "":
		return modePriority, priority
	case plugin != "":
		return modePlugin, plugin
	case category != "":
		return modeCategory, category
	case recommended != "":
		return modeRecommended, recommended
	default:
		return modeInteractive, ""
	}
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import agents, commands, and skills into the destination tree",
	Long: `Materialize selected artifacts as files under the destination directory:

  agents/<name>.md
  commands/<name>.md
  skills/<name>/SKILL.md, references/*, assets/*

Existing files are overwritten. Without a selector flag an interactive menu
is shown.`,
	Example: `  artifacts import --list
  artifacts import --priority high
  artifacts import --plugin python-development
  artifacts import --category languages
  artifacts import --recommended essentials`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
			return nil
		}

		applyString(&cfg.DestDir, importDest)
		applyString(&cfg.TemplatesDir, importTemplates)

		imp := importer.New(cfg, cmd.OutOrStdout())
		mode, value := resolveImportMode(importList, importPriority, importPlugin, importCategory, importRecommended)

		var err error
		switch mode {
		case modeList:
			err = imp.ListAvailable()
		case modePriority:
			_, err = imp.Priority(value)
		case modePlugin:
			_, err = imp.Plugin(value)
		case modeCategory:
			_, err = imp.Category(value)
		case modeRecommended:
			_, err = imp.Recommended(value)
		default:
			_, err = imp.RunInteractive(cmd.InOrStdin())
		}
		return err
	},
}
