package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/listboard/internal/database"
	"github.com/jask/listboard/internal/database/repository"
)

// MaintenanceService houses destructive/ops actions surfaced through the TUI
// and CLI.
type MaintenanceService struct {
	DB *sql.DB
}

// Reset wipes the journal. It keeps the schema intact so the session can
// continue recording; the board itself is not touched.
func (s *MaintenanceService) Reset(ctx context.Context) error {
	if s.DB == nil {
		return fmt.Errorf("maintenance: db not configured")
	}
	if err := database.WithTx(s.DB, func(tx *sql.Tx) error {
		if err := repository.WithTx(tx).Clear(ctx); err != nil {
			return fmt.Errorf("reset journal: %w", err)
		}
		return nil
	}); err != nil {
		return err
	}
	_, _ = s.DB.ExecContext(ctx, "VACUUM")
	return nil
}
