package importer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aclindsa/ofxgo"

	"github.com/hearthledger/hearth/internal/model"
)

// readOFXFile parses an OFX/QFX bank export and flattens its transactions
// into the same loose rows tabular input produces, so they share one
// normalization path.
func readOFXFile(ctx context.Context, path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return readOFX(ctx, f)
}

func readOFX(_ context.Context, r io.Reader) ([]Row, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	// Some banks emit blank lines before the header, which the parser
	// rejects.
	trimmed := strings.TrimLeft(string(content), " \t\r\n")

	resp, err := ofxgo.ParseResponse(strings.NewReader(trimmed))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var rows []Row
	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok && stmt.BankTranList != nil {
			for _, tx := range stmt.BankTranList.Transactions {
				rows = append(rows, ofxRow(tx))
			}
		}
	}
	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok && stmt.BankTranList != nil {
			for _, tx := range stmt.BankTranList.Transactions {
				rows = append(rows, ofxRow(tx))
			}
		}
	}

	slog.Debug("parsed OFX file", "transactions", len(rows))
	return rows, nil
}

// ofxRow converts one OFX transaction into a loose row.
func ofxRow(tx ofxgo.Transaction) Row {
	amount, _ := tx.TrnAmt.Float64()

	return Row{
		"Date":        tx.DtPosted.Time.Format(model.ISODateFormat),
		"Amount":      fmt.Sprintf("%.2f", amount),
		"Category":    ofxCategoryHint(fmt.Sprintf("%v", tx.TrnType)),
		"Description": ofxDescription(tx),
	}
}

// ofxCategoryHint maps the few transaction types that imply a category.
// Everything else resolves to Uncategorized downstream.
func ofxCategoryHint(trnType string) string {
	switch trnType {
	case "INT":
		return "Interest"
	case "FEE":
		return "Bank Fees"
	case "ATM":
		return "Cash"
	default:
		return ""
	}
}

// ofxDescription prefers the payee name over the raw NAME field, falling
// back to MEMO when NAME is empty.
func ofxDescription(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return strings.TrimSpace(string(tx.Payee.Name))
	}
	if name := strings.TrimSpace(string(tx.Name)); name != "" {
		return name
	}
	return strings.TrimSpace(string(tx.Memo))
}
