package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/hearthledger/hearth/internal/cli"
	"github.com/hearthledger/hearth/internal/importer"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <files...>",
		Short: "Bulk-import expenses from CSV, XLSX or OFX exports",
		Long: `Import expenses from tabular exports.

CSV and spreadsheet files need (case-insensitive) Date, Amount, Category
and Description columns. Rows with a missing, non-numeric or zero amount
are skipped. Unknown category names create new custom categories; repeated
new names within one file create only one.

Each row commits independently: a failure partway through a file does not
roll back rows already imported.

Examples:
  hearth import ~/Downloads/expenses.csv
  hearth import ~/Downloads/statement.xlsx ~/Downloads/chase_*.qfx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImport,
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	var allFiles []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, err := os.Stat(pattern); err == nil {
				allFiles = append(allFiles, pattern)
			} else {
				slog.Warn("no files found matching pattern", "pattern", pattern)
			}
		} else {
			allFiles = append(allFiles, matches...)
		}
	}

	if len(allFiles) == 0 {
		return fmt.Errorf("no files found to import")
	}

	store, cleanup, err := openLedger()
	if err != nil {
		return err
	}
	defer cleanup()

	im := importer.New(store, newColorSource())

	totalImported := 0
	failed := 0
	for _, path := range allFiles {
		var bar *progressbar.ProgressBar
		im.Progress = func(done, total int) {
			if bar == nil {
				bar = newImportBar(total, filepath.Base(path))
			}
			_ = bar.Set(done)
		}

		result := im.ImportFile(cmd.Context(), path)
		if bar != nil {
			_ = bar.Finish()
		}

		switch result.Status {
		case importer.StatusSuccess:
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s: %s", filepath.Base(path), result.Message)))
		default:
			failed++
			fmt.Println(cli.FormatError(fmt.Sprintf("%s: %s", filepath.Base(path), result.Message)))
		}
		totalImported += result.Imported
	}

	if len(allFiles) > 1 {
		fmt.Println(cli.BoldStyle.Render(fmt.Sprintf("\nImported %d expenses from %d files (%d failed)",
			totalImported, len(allFiles), failed)))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to import", failed, len(allFiles))
	}
	return nil
}

func newImportBar(total int, name string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription(fmt.Sprintf("[cyan]Importing %s...[reset]", name)),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)
}
