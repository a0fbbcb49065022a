package cmd

import (
	"fmt"
	"os"

	"sheetsync/core/config"
	"sheetsync/core/logger"
	"sheetsync/feature/docs"

	"github.com/spf13/cobra"
)

var (
	// Flags for the docs command
	docsOutput     string
	docsProject    string
	docsReadme     string
	docsFolders    []string
	docsExtra      []string
	docsExclude    []string
	docsExcludeDir []string
	docsMaxChars   int
	docsSplit      bool
)

// docsCmd generates a project-context Markdown bundle.
var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Generate a project-context Markdown bundle",
	Long: `Docs concatenates the README, supplemental Markdown docs, and every
eligible source file into one fenced Markdown document. Files matched by
.gitignore or the exclude flags are skipped. When the character budget is
exceeded the bundle is truncated, or split into numbered parts with --split.

Examples:
  # Bundle the current directory
  sheetsync docs --project "My Tracker"

  # Include a docs folder and split oversized output
  sheetsync docs --doc-folder docs --split`,
	RunE: runDocs,
}

func init() {
	docsCmd.Flags().StringVar(&docsOutput, "out", "output/project_context.md", "Output bundle path")
	docsCmd.Flags().StringVar(&docsProject, "project", "", "Project name for the bundle header")
	docsCmd.Flags().StringVar(&docsReadme, "readme", "README.md", "README path")
	docsCmd.Flags().StringSliceVar(&docsFolders, "doc-folder", nil, "Folder scanned recursively for preamble .md files (repeatable)")
	docsCmd.Flags().StringSliceVar(&docsExtra, "doc", nil, "Markdown file for the preamble (repeatable)")
	docsCmd.Flags().StringSliceVar(&docsExclude, "exclude", nil, "File to drop from the bundle (repeatable)")
	docsCmd.Flags().StringSliceVar(&docsExcludeDir, "exclude-dir", nil, "Folder to drop from the bundle (repeatable)")
	docsCmd.Flags().IntVar(&docsMaxChars, "max-chars", 0, "Character budget per output file (0 = default)")
	docsCmd.Flags().BoolVar(&docsSplit, "split", false, "Split into numbered parts instead of truncating")

	RootCmd.AddCommand(docsCmd)
}

func runDocs(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	gen := docs.NewGenerator(root, l)
	_, err = gen.Generate(docs.Options{
		Output:         docsOutput,
		ProjectName:    docsProject,
		Readme:         docsReadme,
		ExtraDocs:      docsExtra,
		DocFolders:     docsFolders,
		ExcludeFiles:   docsExclude,
		ExcludeFolders: docsExcludeDir,
		MaxCharacters:  docsMaxChars,
		SplitParts:     docsSplit,
	})
	return err
}
