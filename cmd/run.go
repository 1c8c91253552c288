package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/usagi/eigoz/internal/app"
	"github.com/usagi/eigoz/internal/quizbank"
	"github.com/usagi/eigoz/internal/stats"
	"github.com/usagi/eigoz/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(app.Options{
		Bank:   quizbank.Default(),
		Stats:  stats.NewStore(st.Ledger()),
		Events: st,
	})
}

// openStore resolves the database path and opens the SQLite store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
