package board

import "fmt"

// Engine computes board transitions. Its only dependency is the generator
// used to give copied entries fresh ids.
type Engine struct {
	ids IDGenerator
}

// NewEngine returns an Engine that draws copied entry ids from ids.
func NewEngine(ids IDGenerator) *Engine {
	return &Engine{ids: ids}
}

// ComputeNextState applies a drag outcome to s and returns the resulting
// state. s is never modified. On error s is returned as is and nothing has
// been applied; a NoOp also returns s itself.
func (e *Engine) ComputeNextState(s State, cat Catalog, o DragOutcome) (State, Transition, error) {
	kind, err := Classify(s, o)
	if err != nil {
		return s, Transition{}, err
	}
	switch kind {
	case KindReorder:
		return e.reorder(s, o)
	case KindCopy:
		return e.copy(s, cat, o)
	case KindMove:
		return e.move(s, o)
	default:
		return s, Transition{Kind: KindNoOp, Source: o.Source}, nil
	}
}

func (e *Engine) reorder(s State, o DragOutcome) (State, Transition, error) {
	id := o.Source.ContainerID
	seq := s.sequence(id)
	if err := checkIndex(o.Source, len(seq)-1); err != nil {
		return s, Transition{}, err
	}
	// the destination index counts positions after the entry was lifted out;
	// len(seq) is accepted and appends
	if err := checkIndex(*o.Destination, len(seq)); err != nil {
		return s, Transition{}, err
	}
	moved := seq[o.Source.Index]
	next := s.with(map[string][]Entry{
		id: moveWithin(seq, o.Source.Index, o.Destination.Index),
	})
	return next, transition(KindReorder, moved, o), nil
}

func (e *Engine) copy(s State, cat Catalog, o DragOutcome) (State, Transition, error) {
	tmpl, ok := cat.At(o.Source.Index)
	if !ok {
		return s, Transition{}, fmt.Errorf("%s: %w", o.Source, ErrIndexOutOfRange)
	}
	dstID := o.Destination.ContainerID
	dst := s.sequence(dstID)
	if err := checkIndex(*o.Destination, len(dst)); err != nil {
		return s, Transition{}, err
	}
	entry := Entry{ID: e.ids.NewID(), Content: tmpl.Content}
	next := s.with(map[string][]Entry{
		dstID: insertAt(dst, o.Destination.Index, entry),
	})
	return next, transition(KindCopy, entry, o), nil
}

func (e *Engine) move(s State, o DragOutcome) (State, Transition, error) {
	srcID, dstID := o.Source.ContainerID, o.Destination.ContainerID
	src, dst := s.sequence(srcID), s.sequence(dstID)
	if err := checkIndex(o.Source, len(src)-1); err != nil {
		return s, Transition{}, err
	}
	if err := checkIndex(*o.Destination, len(dst)); err != nil {
		return s, Transition{}, err
	}
	rest, moved := removeAt(src, o.Source.Index)
	next := s.with(map[string][]Entry{
		srcID: rest,
		dstID: insertAt(dst, o.Destination.Index, moved),
	})
	return next, transition(KindMove, moved, o), nil
}

// checkIndex requires 0 <= l.Index <= hi.
func checkIndex(l Location, hi int) error {
	if l.Index < 0 || l.Index > hi {
		return fmt.Errorf("%s: %w", l, ErrIndexOutOfRange)
	}
	return nil
}

func transition(k Kind, e Entry, o DragOutcome) Transition {
	dst := *o.Destination
	return Transition{
		Kind:        k,
		EntryID:     e.ID,
		Content:     e.Content,
		Source:      o.Source,
		Destination: &dst,
	}
}
