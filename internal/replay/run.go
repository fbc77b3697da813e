package replay

import (
	"context"
	"errors"
	"fmt"

	"github.com/jask/listboard/internal/board"
	"github.com/jask/listboard/internal/catalog"
)

var ErrUnknownList = errors.New("no list at position")

// Board is the part of service.BoardService a replay needs.
type Board interface {
	State() board.State
	Drop(ctx context.Context, o board.DragOutcome) (board.Transition, error)
	AddList(ctx context.Context) (string, error)
}

// Report summarises a replay.
type Report struct {
	Steps       int
	Transitions []board.Transition
	AddedLists  []string
}

// Run executes steps in order and stops at the first failure. The report
// covers the steps that completed.
func Run(ctx context.Context, b Board, cat board.Catalog, s Script) (Report, error) {
	var rep Report
	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		if step.AddList {
			id, err := b.AddList(ctx)
			if err != nil {
				return rep, fmt.Errorf("step %d: %w", i+1, err)
			}
			rep.AddedLists = append(rep.AddedLists, id)
			rep.Steps++
			continue
		}
		o, err := outcome(b.State(), cat, *step.Drop)
		if err != nil {
			return rep, fmt.Errorf("step %d: %w", i+1, err)
		}
		tr, err := b.Drop(ctx, o)
		if err != nil {
			return rep, fmt.Errorf("step %d: %w", i+1, err)
		}
		rep.Transitions = append(rep.Transitions, tr)
		rep.Steps++
	}
	return rep, nil
}

// outcome turns a scripted drop into the drag outcome a gesture would
// deliver, resolving list positions against s.
func outcome(s board.State, cat board.Catalog, d Drop) (board.DragOutcome, error) {
	var o board.DragOutcome
	switch {
	case d.From.Template != "":
		idx, err := catalog.Lookup(cat, d.From.Template)
		if err != nil {
			return o, err
		}
		o.Source = board.Location{ContainerID: board.CatalogContainerID, Index: idx}
	case d.From.Catalog != nil:
		o.Source = board.Location{ContainerID: board.CatalogContainerID, Index: *d.From.Catalog}
	default:
		id, err := listAt(s, *d.From.List)
		if err != nil {
			return o, err
		}
		o.Source = board.Location{ContainerID: id, Index: d.From.Index}
	}
	if d.To != nil {
		id, err := listAt(s, d.To.List)
		if err != nil {
			return o, err
		}
		o.Destination = &board.Location{ContainerID: id, Index: d.To.Index}
	}
	return o, nil
}

func listAt(s board.State, pos int) (string, error) {
	ids := s.ListIDs()
	if pos < 0 || pos >= len(ids) {
		return "", fmt.Errorf("%w %d (have %d)", ErrUnknownList, pos, len(ids))
	}
	return ids[pos], nil
}
