package board

// State maps list ids to their entries. Keys keep insertion order, which is
// the display order of the lists.
//
// A State is a value: every transition builds a new one and leaves the old
// one valid. Lists that a transition does not touch share storage between
// the old and the new state.
type State struct {
	order []string
	lists map[string][]Entry
}

// NewState returns a state holding exactly one empty list.
func NewState(ids IDGenerator) State {
	next, _ := AddList(State{}, ids)
	return next
}

// AddList appends a new empty list under a fresh id.
func AddList(s State, ids IDGenerator) (State, string) {
	id := ids.NewID()
	next := s.clone()
	next.order = append(next.order, id)
	next.lists[id] = nil
	return next, id
}

// Len returns the number of lists.
func (s State) Len() int { return len(s.order) }

// ListIDs returns list ids in display order.
func (s State) ListIDs() []string {
	return append([]string(nil), s.order...)
}

// Has reports whether id names a list.
func (s State) Has(id string) bool {
	_, ok := s.lists[id]
	return ok
}

// Entries returns a copy of the list's entries.
func (s State) Entries(id string) ([]Entry, bool) {
	seq, ok := s.lists[id]
	if !ok {
		return nil, false
	}
	return append([]Entry(nil), seq...), true
}

// EntryCount returns the number of entries across all lists.
func (s State) EntryCount() int {
	n := 0
	for _, seq := range s.lists {
		n += len(seq)
	}
	return n
}

// Find locates an entry by id.
func (s State) Find(entryID string) (Location, bool) {
	for _, id := range s.order {
		for i, e := range s.lists[id] {
			if e.ID == entryID {
				return Location{ContainerID: id, Index: i}, true
			}
		}
	}
	return Location{}, false
}

func (s State) sequence(id string) []Entry {
	return s.lists[id]
}

// clone copies the key order and the map, but not the sequences themselves.
func (s State) clone() State {
	next := State{
		order: make([]string, len(s.order), len(s.order)+1),
		lists: make(map[string][]Entry, len(s.lists)+1),
	}
	copy(next.order, s.order)
	for id, seq := range s.lists {
		next.lists[id] = seq
	}
	return next
}

// with returns a copy of s where the given lists are replaced.
func (s State) with(updates map[string][]Entry) State {
	next := s.clone()
	for id, seq := range updates {
		next.lists[id] = seq
	}
	return next
}
