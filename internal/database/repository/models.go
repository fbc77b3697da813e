package repository

import "time"

// Journal record kinds. The gesture kinds match board.Kind names.
const (
	KindAddList = "add_list"
	KindNoOp    = "noop"
	KindReorder = "reorder"
	KindCopy    = "copy"
	KindMove    = "move"
)

// Record represents a journal row: one applied gesture or list addition.
type Record struct {
	ID              string
	Kind            string
	ListID          *string
	EntryID         *string
	Content         *string
	SourceContainer *string
	SourceIndex     *int
	DestContainer   *string
	DestIndex       *int
	Revision        uint64
	CreatedAt       time.Time
}
