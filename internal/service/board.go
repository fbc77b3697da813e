package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jask/listboard/internal/board"
	"github.com/jask/listboard/internal/database/repository"
	"github.com/jask/listboard/internal/store"
)

// BoardService is the single entry point for board events. Every event is
// computed against the current snapshot, journaled, then installed with one
// Store.Replace; a failure at any step leaves the store untouched.
type BoardService struct {
	Store   *store.Store
	Engine  *board.Engine
	Catalog board.Catalog
	IDs     board.IDGenerator
	Journal *repository.JournalRepo // optional
	Logger  *slog.Logger            // optional
}

// NewBoardService starts a session with one empty list.
func NewBoardService(cat board.Catalog, ids board.IDGenerator, journal *repository.JournalRepo, logger *slog.Logger) *BoardService {
	return &BoardService{
		Store:   store.New(board.NewState(ids)),
		Engine:  board.NewEngine(ids),
		Catalog: cat,
		IDs:     ids,
		Journal: journal,
		Logger:  logger,
	}
}

// State returns the current board snapshot.
func (s *BoardService) State() board.State {
	return s.Store.Read()
}

// Drop applies a completed drag gesture. A gesture released outside every
// list is journaled but leaves the state as it is.
func (s *BoardService) Drop(ctx context.Context, o board.DragOutcome) (board.Transition, error) {
	cur := s.Store.Read()
	next, tr, err := s.Engine.ComputeNextState(cur, s.Catalog, o)
	if err != nil {
		s.logger().Warn("drop rejected", "source", o.Source.String(), "destination", destString(o.Destination), "err", err)
		return board.Transition{}, fmt.Errorf("drop: %w", err)
	}

	changed := tr.Kind != board.KindNoOp
	rev := s.Store.Revision()
	if changed {
		rev++
	}
	if err := s.record(ctx, transitionRecord(tr, rev)); err != nil {
		return board.Transition{}, err
	}
	if changed {
		s.Store.Replace(next)
	}

	s.logger().Debug("drop applied",
		"kind", tr.Kind.String(),
		"entry", tr.EntryID,
		"source", tr.Source.String(),
		"destination", destString(tr.Destination),
		"revision", rev)
	return tr, nil
}

// AddList appends a new empty list and returns its id.
func (s *BoardService) AddList(ctx context.Context) (string, error) {
	next, id := board.AddList(s.Store.Read(), s.IDs)
	rev := s.Store.Revision() + 1
	listID := id
	if err := s.record(ctx, repository.Record{
		ID:       uuid.NewString(),
		Kind:     repository.KindAddList,
		ListID:   &listID,
		Revision: rev,
	}); err != nil {
		return "", err
	}
	s.Store.Replace(next)
	s.logger().Debug("list added", "list", id, "revision", rev)
	return id, nil
}

// History returns journal records, newest first. Without a journal it
// returns nothing.
func (s *BoardService) History(ctx context.Context, f repository.JournalFilters) ([]repository.Record, error) {
	if s.Journal == nil {
		return nil, nil
	}
	recs, err := s.Journal.Recent(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	return recs, nil
}

// HistorySize returns how many records the journal holds.
func (s *BoardService) HistorySize(ctx context.Context) (int, error) {
	if s.Journal == nil {
		return 0, nil
	}
	n, err := s.Journal.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("history size: %w", err)
	}
	return n, nil
}

func (s *BoardService) record(ctx context.Context, rec repository.Record) error {
	if s.Journal == nil {
		return nil
	}
	if err := s.Journal.Append(ctx, rec); err != nil {
		s.logger().Error("journal append failed", "kind", rec.Kind, "err", err)
		return fmt.Errorf("journal: %w", err)
	}
	return nil
}

func (s *BoardService) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s.Logger
}

func transitionRecord(tr board.Transition, rev uint64) repository.Record {
	rec := repository.Record{
		ID:              uuid.NewString(),
		Kind:            tr.Kind.String(),
		SourceContainer: &tr.Source.ContainerID,
		SourceIndex:     &tr.Source.Index,
		Revision:        rev,
	}
	if tr.EntryID != "" {
		rec.EntryID = &tr.EntryID
		rec.Content = &tr.Content
	}
	if tr.Destination != nil {
		rec.DestContainer = &tr.Destination.ContainerID
		rec.DestIndex = &tr.Destination.Index
		rec.ListID = &tr.Destination.ContainerID
	}
	return rec
}

func destString(l *board.Location) string {
	if l == nil {
		return "outside"
	}
	return l.String()
}
