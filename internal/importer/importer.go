// Package importer ingests loosely-structured tabular exports (CSV, XLSX,
// OFX/QFX) and commits the surviving rows to the ledger.
//
// Batch semantics are per-row independent, not atomic: each valid row is
// committed as it is processed, and rows committed before a file-level
// abort stay committed. There is no dry-run or preview step.
package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hearthledger/hearth/internal/common"
	"github.com/hearthledger/hearth/internal/ledger"
	"github.com/hearthledger/hearth/internal/model"
)

// Row is one parsed input row: column header to raw cell value.
type Row map[string]string

// Import run statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result is the outcome of one import run.
type Result struct {
	Status   string
	Message  string
	Imported int
}

// DefaultDescription is used when a row carries no description.
const DefaultDescription = "Imported Expense"

// Importer drives import runs against a ledger store.
type Importer struct {
	store  *ledger.Store
	colors ledger.ColorSource

	// Progress, when set, is called after each processed row.
	Progress func(done, total int)
}

// New creates an Importer. The color source feeds categories created on
// the fly during a run.
func New(store *ledger.Store, colors ledger.ColorSource) *Importer {
	return &Importer{store: store, colors: colors}
}

// ImportFile parses and imports a single file, picking the reader by
// extension. A file-level parse failure aborts the run with StatusError.
func (im *Importer) ImportFile(ctx context.Context, path string) Result {
	var (
		rows []Row
		err  error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSVFile(path)
	case ".xlsx", ".xlsm":
		rows, err = readXLSXFile(path)
	case ".ofx", ".qfx":
		rows, err = readOFXFile(ctx, path)
	default:
		err = fmt.Errorf("%w: %s", common.ErrUnsupportedFormat, filepath.Ext(path))
	}

	if err != nil {
		slog.Error("failed to parse import file", "file", path, "error", err)
		if errors.Is(err, common.ErrUnsupportedFormat) {
			return Result{
				Status:  StatusError,
				Message: fmt.Sprintf("Unsupported file type %q.", filepath.Ext(path)),
			}
		}
		return Result{
			Status:  StatusError,
			Message: "Failed to parse file. Ensure it is a valid CSV/Excel.",
		}
	}

	if len(rows) == 0 {
		return Result{Status: StatusError, Message: "File is empty."}
	}

	count, err := im.importRows(rows)
	if err != nil {
		slog.Error("import aborted", "file", path, "imported", count, "error", err)
		return Result{
			Status:   StatusError,
			Message:  "Import failed partway through; earlier rows remain committed.",
			Imported: count,
		}
	}

	slog.Info("import complete", "file", path, "imported", count, "rows", len(rows))
	return Result{
		Status:   StatusSuccess,
		Message:  fmt.Sprintf("Successfully imported %d expenses.", count),
		Imported: count,
	}
}

// importRows processes rows independently, skipping invalid ones. The
// resolver's batch cache lives exactly as long as this run.
func (im *Importer) importRows(rows []Row) (int, error) {
	resolver := ledger.NewResolver(im.store, im.colors)
	count := 0

	for i, row := range rows {
		ok, err := im.importRow(resolver, row)
		if err != nil {
			return count, err
		}
		if ok {
			count++
		}
		if im.Progress != nil {
			im.Progress(i+1, len(rows))
		}
	}
	return count, nil
}

// importRow commits one row. It returns false (with no error) for rows
// that are skipped: a missing, non-numeric or zero amount drops the row
// silently.
func (im *Importer) importRow(resolver *ledger.Resolver, row Row) (bool, error) {
	amount, ok := parseAmount(field(row, "amount"))
	if !ok {
		return false, nil
	}

	date := im.normalizeDate(field(row, "date"))

	description := field(row, "description")
	if description == "" {
		description = DefaultDescription
	}

	categoryID, err := resolver.Resolve(field(row, "category"))
	if err != nil {
		return false, err
	}

	if _, err := im.store.AddExpense(model.Expense{
		Date:        date,
		Amount:      amount,
		CategoryID:  categoryID,
		Description: description,
	}); err != nil {
		return false, err
	}
	return true, nil
}

// field returns the first non-empty value for the named column, matching
// headers case-insensitively so Amount/amount/AMOUNT all resolve.
func field(row Row, name string) string {
	for key, value := range row {
		if strings.EqualFold(strings.TrimSpace(key), name) {
			if v := strings.TrimSpace(value); v != "" {
				return v
			}
		}
	}
	return ""
}

// parseAmount parses a raw cell into a non-negative magnitude. Imported
// amounts are always stored as absolute values.
func parseAmount(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	raw = strings.TrimPrefix(raw, "$")
	raw = strings.ReplaceAll(raw, ",", "")

	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsZero() {
		return 0, false
	}
	return d.Abs().InexactFloat64(), true
}

// spreadsheetEpoch is the day-zero of spreadsheet date serials. Using
// 1899-12-30 absorbs the 1900 leap-year quirk, so modern serials land on
// the right day.
var spreadsheetEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var dateLayouts = []string{
	model.ISODateFormat,
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"January 2, 2006",
}

// normalizeDate always yields a calendar date: numeric serials convert via
// the spreadsheet epoch, strings go through a generic parse, and anything
// unparseable (or absent) becomes today.
func (im *Importer) normalizeDate(raw string) model.Date {
	if raw == "" {
		return model.DateOf(im.store.Clock().Now())
	}

	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		return model.DateOf(spreadsheetEpoch.AddDate(0, 0, int(serial)))
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return model.DateOf(t)
		}
	}

	slog.Debug("unparseable date, substituting today", "raw", raw)
	return model.DateOf(im.store.Clock().Now())
}
