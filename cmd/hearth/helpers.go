package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/viper"

	"github.com/hearthledger/hearth/internal/common"
	"github.com/hearthledger/hearth/internal/config"
	"github.com/hearthledger/hearth/internal/ledger"
	"github.com/hearthledger/hearth/internal/storage"
)

// openLedger opens the configured database and seeds the ledger from it.
// The returned cleanup closes the database.
func openLedger() (*ledger.Store, func(), error) {
	dbPath := config.ExpandPath(viper.GetString("data.path"))

	mirror, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, nil, common.NewUserError(fmt.Sprintf("Failed to open ledger database at %s", dbPath), err)
	}

	store, err := ledger.Open(mirror)
	if err != nil {
		if closeErr := mirror.Close(); closeErr != nil {
			slog.Warn("failed to close database", "error", closeErr)
		}
		return nil, nil, err
	}

	cleanup := func() {
		if err := mirror.Close(); err != nil {
			slog.Warn("failed to close database", "error", err)
		}
	}
	return store, cleanup, nil
}

// newColorSource seeds category colors from the wall clock. Tests inject
// their own deterministic source.
func newColorSource() ledger.ColorSource {
	return ledger.RandomColorSource(time.Now().UnixNano())
}
