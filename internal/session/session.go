// Package session wires a board session together from configuration.
package session

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jask/listboard/internal/board"
	"github.com/jask/listboard/internal/catalog"
	"github.com/jask/listboard/internal/config"
	"github.com/jask/listboard/internal/database"
	"github.com/jask/listboard/internal/database/repository"
	"github.com/jask/listboard/internal/identity"
	"github.com/jask/listboard/internal/service"
)

// Session owns everything one running board needs.
type Session struct {
	Board       *service.BoardService
	Maintenance *service.MaintenanceService
	db          *sql.DB
}

// Open builds the catalog, opens and migrates the journal database and starts
// a board with one empty list.
func Open(cfg config.Config, logger *slog.Logger) (*Session, error) {
	ids := identity.New()

	cat, err := catalog.FromLabels(cfg.Catalog.Templates, ids)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	if cfg.Database.Path != database.MemoryPath {
		if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
			return nil, fmt.Errorf("mkdir db dir: %w", err)
		}
	}
	db, err := database.OpenMigrated(cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	svc := service.NewBoardService(cat, ids, repository.NewJournalRepo(db), logger)
	if logger != nil {
		logger.Info("session started", "templates", cat.Len(), "journal", cfg.Database.Path, "list", firstList(svc.State()))
	}
	return &Session{
		Board:       svc,
		Maintenance: &service.MaintenanceService{DB: db},
		db:          db,
	}, nil
}

// Close releases the journal database.
func (s *Session) Close() error {
	return s.db.Close()
}

func firstList(s board.State) string {
	ids := s.ListIDs()
	if len(ids) == 0 {
		return ""
	}
	return ids[0]
}
