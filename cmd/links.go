package cmd

import (
	"fmt"

	"sheetsync/core/config"
	"sheetsync/core/logger"
	"sheetsync/feature/links"

	"github.com/spf13/cobra"
)

var (
	// Flags for the links command
	linksWorkbook string
	linksRoster   string
)

// linksCmd repoints roster hyperlinks at their exact rows.
var linksCmd = &cobra.Command{
	Use:   "links",
	Short: "Repoint roster hyperlinks at the rows they name",
	Long: `Links scans every sheet for location hyperlinks into the roster sheet
and repoints each at the row whose entry name matches the link's display
text. Matching ignores case and surrounding whitespace.

Example:
  sheetsync links --workbook tracker.xlsx --roster Overview`,
	RunE: runLinks,
}

func init() {
	linksCmd.Flags().StringVar(&linksWorkbook, "workbook", "", "Workbook path (defaults to the configured workbook)")
	linksCmd.Flags().StringVar(&linksRoster, "roster", "", "Roster sheet name (required)")
	_ = linksCmd.MarkFlagRequired("roster")

	RootCmd.AddCommand(linksCmd)
}

func runLinks(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	workbookPath := linksWorkbook
	if workbookPath == "" {
		workbookPath = cfg.Sync.Workbook
	}

	service := links.NewService(l)
	_, err = service.Rewrite(workbookPath, linksRoster, cfg.Sync.Columns())
	return err
}
