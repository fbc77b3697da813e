package board

import "fmt"

// Location is a position inside a container: the catalog or a list.
type Location struct {
	ContainerID string
	Index       int
}

func (l Location) String() string {
	return fmt.Sprintf("%s[%d]", l.ContainerID, l.Index)
}

// IsCatalog reports whether the location points into the catalog.
func (l Location) IsCatalog() bool {
	return l.ContainerID == CatalogContainerID
}

// DragOutcome is the result of a completed drag gesture. A nil Destination
// means the item was released outside every container.
type DragOutcome struct {
	Source      Location
	Destination *Location
}

// Kind classifies a drag outcome.
type Kind int

const (
	KindNoOp Kind = iota
	KindReorder
	KindCopy
	KindMove
)

func (k Kind) String() string {
	switch k {
	case KindNoOp:
		return "noop"
	case KindReorder:
		return "reorder"
	case KindCopy:
		return "copy"
	case KindMove:
		return "move"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Transition describes an applied outcome. For a NoOp only Kind and Source
// are set.
type Transition struct {
	Kind        Kind
	EntryID     string
	Content     string
	Source      Location
	Destination *Location
}

// Classify decides which transition an outcome asks for. Only container ids
// are inspected; indices are checked when the transition is applied.
func Classify(s State, o DragOutcome) (Kind, error) {
	if o.Destination == nil {
		return KindNoOp, nil
	}
	dst := o.Destination.ContainerID
	if dst == CatalogContainerID {
		return KindNoOp, ErrCatalogDestination
	}
	if !s.Has(dst) {
		return KindNoOp, fmt.Errorf("destination %q: %w", dst, ErrUnknownContainer)
	}
	src := o.Source.ContainerID
	switch {
	case src == CatalogContainerID:
		return KindCopy, nil
	case !s.Has(src):
		return KindNoOp, fmt.Errorf("source %q: %w", src, ErrUnknownContainer)
	case src == dst:
		return KindReorder, nil
	default:
		return KindMove, nil
	}
}
