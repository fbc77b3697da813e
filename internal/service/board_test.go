package service

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/listboard/internal/board"
	"github.com/jask/listboard/internal/catalog"
	"github.com/jask/listboard/internal/database"
	"github.com/jask/listboard/internal/database/repository"
)

func counterIDs(prefix string) board.IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

type fixture struct {
	svc *BoardService
	db  *sql.DB
	log *bytes.Buffer
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	tmpDir := t.TempDir()
	db, err := database.OpenMigrated(filepath.Join(tmpDir, "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cat, err := catalog.FromLabels([]string{"Headline", "Copy"}, counterIDs("t"))
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	svc := NewBoardService(cat, counterIDs("id"), repository.NewJournalRepo(db), logger)
	return fixture{svc: svc, db: db, log: &buf}
}

func dest(list string, i int) *board.Location {
	return &board.Location{ContainerID: list, Index: i}
}

func entries(t *testing.T, s board.State, list string) []board.Entry {
	t.Helper()
	out, ok := s.Entries(list)
	require.True(t, ok, "list %s", list)
	return out
}

func TestBoardServiceFlow(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	f := newFixture(t)
	svc := f.svc

	lists := svc.State().ListIDs()
	require.Len(t, lists, 1)
	l1 := lists[0]

	tr, err := svc.Drop(ctx, board.DragOutcome{
		Source:      board.Location{ContainerID: board.CatalogContainerID, Index: 0},
		Destination: dest(l1, 0),
	})
	require.NoError(t, err)
	require.Equal(t, board.KindCopy, tr.Kind)
	require.Equal(t, "Headline", tr.Content)

	_, err = svc.Drop(ctx, board.DragOutcome{
		Source:      board.Location{ContainerID: board.CatalogContainerID, Index: 1},
		Destination: dest(l1, 1),
	})
	require.NoError(t, err)

	_, err = svc.Drop(ctx, board.DragOutcome{
		Source:      board.Location{ContainerID: l1, Index: 1},
		Destination: dest(l1, 0),
	})
	require.NoError(t, err)
	got := entries(t, svc.State(), l1)
	require.Equal(t, []string{"Copy", "Headline"}, []string{got[0].Content, got[1].Content})

	l2, err := svc.AddList(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{l1, l2}, svc.State().ListIDs())

	moved := got[0]
	tr, err = svc.Drop(ctx, board.DragOutcome{
		Source:      board.Location{ContainerID: l1, Index: 0},
		Destination: dest(l2, 0),
	})
	require.NoError(t, err)
	require.Equal(t, board.KindMove, tr.Kind)
	require.Equal(t, []board.Entry{moved}, entries(t, svc.State(), l2))
	require.Len(t, entries(t, svc.State(), l1), 1)

	revBefore := svc.Store.Revision()
	tr, err = svc.Drop(ctx, board.DragOutcome{Source: board.Location{ContainerID: l2, Index: 0}})
	require.NoError(t, err)
	require.Equal(t, board.KindNoOp, tr.Kind)
	require.Equal(t, revBefore, svc.Store.Revision())

	hist, err := svc.History(ctx, repository.JournalFilters{})
	require.NoError(t, err)
	kinds := make([]string, len(hist))
	for i, r := range hist {
		kinds[i] = r.Kind
	}
	require.Equal(t, []string{"noop", "move", "add_list", "reorder", "copy", "copy"}, kinds)
	require.Equal(t, revBefore, hist[0].Revision)
	require.Equal(t, revBefore, hist[1].Revision)

	trace, err := svc.History(ctx, repository.JournalFilters{EntryID: moved.ID})
	require.NoError(t, err)
	require.Len(t, trace, 3) // copied, reordered, moved

	require.Contains(t, f.log.String(), "drop applied")
	require.Contains(t, f.log.String(), "kind=move")
}

func TestBoardServiceRejectsWithoutSideEffects(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	svc := f.svc
	l1 := svc.State().ListIDs()[0]
	before := svc.State()

	_, err := svc.Drop(ctx, board.DragOutcome{
		Source:      board.Location{ContainerID: board.CatalogContainerID, Index: 5},
		Destination: dest(l1, 0),
	})
	require.ErrorIs(t, err, board.ErrIndexOutOfRange)

	_, err = svc.Drop(ctx, board.DragOutcome{
		Source:      board.Location{ContainerID: "ghost", Index: 0},
		Destination: dest(l1, 0),
	})
	require.ErrorIs(t, err, board.ErrUnknownContainer)

	require.Zero(t, svc.Store.Revision())
	require.Equal(t, before.ListIDs(), svc.State().ListIDs())
	require.Zero(t, svc.State().EntryCount())

	n, err := svc.Journal.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
	require.Contains(t, f.log.String(), "drop rejected")
}

func TestBoardServiceJournalFailureKeepsState(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	svc := f.svc
	l1 := svc.State().ListIDs()[0]

	_, err := f.db.ExecContext(ctx, "DROP TABLE journal")
	require.NoError(t, err)

	_, err = svc.Drop(ctx, board.DragOutcome{
		Source:      board.Location{ContainerID: board.CatalogContainerID, Index: 0},
		Destination: dest(l1, 0),
	})
	require.Error(t, err)
	require.Zero(t, svc.State().EntryCount())

	_, err = svc.AddList(ctx)
	require.Error(t, err)
	require.Equal(t, 1, svc.State().Len())
	require.Zero(t, svc.Store.Revision())
}

func TestBoardServiceWithoutJournal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cat, err := catalog.FromLabels(nil, counterIDs("t"))
	require.NoError(t, err)
	svc := NewBoardService(cat, counterIDs("id"), nil, nil)

	id, err := svc.AddList(ctx)
	require.NoError(t, err)
	_, err = svc.Drop(ctx, board.DragOutcome{
		Source:      board.Location{ContainerID: board.CatalogContainerID, Index: 4},
		Destination: dest(id, 0),
	})
	require.NoError(t, err)
	require.Equal(t, "Quote", entries(t, svc.State(), id)[0].Content)

	hist, err := svc.History(ctx, repository.JournalFilters{})
	require.NoError(t, err)
	require.Empty(t, hist)
	n, err := svc.HistorySize(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestMaintenanceReset(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.svc.AddList(ctx)
	require.NoError(t, err)

	n, err := f.svc.HistorySize(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	m := &MaintenanceService{DB: f.db}
	require.NoError(t, m.Reset(ctx))
	n, err = f.svc.HistorySize(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
	require.Equal(t, 2, f.svc.State().Len())

	require.Error(t, (&MaintenanceService{}).Reset(ctx))
}
