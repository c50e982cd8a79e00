package cli

import (
	"fmt"
	"io"

	"github.com/epieczko/agents/internal/catalog"
	"github.com/epieczko/agents/internal/manifest"
	"github.com/spf13/cobra"
)

var (
	validateManifest  string
	validateTemplates string
)

func init() {
	validateCmd.Flags().StringVar(&validateManifest, "manifest", "", "Marketplace manifest to check against the schema")
	validateCmd.Flags().StringVar(&validateTemplates, "templates", "", "Directory of catalogs, splits, and metadata to verify")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the manifest schema and catalog count invariants",
	Long: `Validate the marketplace manifest against the embedded JSON schema, then
verify every JSON file under the templates directory: total_count must equal
the list length, plugin split counts must match their lists, and plugin
versions should be semantic versions (reported as warnings).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		applyString(&cfg.Manifest, validateManifest)
		applyString(&cfg.TemplatesDir, validateTemplates)
		out := cmd.OutOrStdout()

		path := cfg.ManifestPath()
		result, err := manifest.ValidateFile(path)
		if err != nil {
			return err
		}
		failed := reportSchema(out, path, result)

		issues, err := catalog.VerifyDir(cfg.TemplatesDir)
		if err != nil {
			return fmt.Errorf("verifying %s: %w", cfg.TemplatesDir, err)
		}
		failed += reportIssues(out, cfg.TemplatesDir, issues)

		if failed > 0 {
			return fmt.Errorf("validation failed with %d error(s)", failed)
		}
		return nil
	},
}

// reportSchema prints the schema result and returns the number of errors.
func reportSchema(w io.Writer, path string, result *manifest.ValidationResult) int {
	if result.Valid {
		fmt.Fprintf(w, "✓ %s matches the marketplace schema\n", path)
		return 0
	}
	fmt.Fprintf(w, "✗ %s does not match the marketplace schema\n", path)
	for _, issue := range result.Issues {
		loc := issue.Path
		if loc == "" {
			loc = "/"
		}
		fmt.Fprintf(w, "    %s: %s\n", loc, issue.Message)
	}
	return len(result.Issues)
}

// reportIssues prints verifier findings and returns the number that are not
// warnings.
func reportIssues(w io.Writer, dir string, issues []catalog.Issue) int {
	errs := 0
	for _, issue := range issues {
		if issue.Warning {
			fmt.Fprintf(w, "  ! %s: %s\n", issue.File, issue.Message)
			continue
		}
		fmt.Fprintf(w, "✗ %s: %s\n", issue.File, issue.Message)
		errs++
	}
	if errs == 0 {
		fmt.Fprintf(w, "✓ %s counts are consistent\n", dir)
	}
	return errs
}
