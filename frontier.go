package mazesearch

import "errors"

// ErrEmptyFrontier is returned by Remove on an empty frontier. The engine
// checks Empty before every removal, so seeing this error means a bug.
var ErrEmptyFrontier = errors.New("empty frontier")

// Entry is a frontier-resident reference to a discovered node. ID indexes
// the engine's node arena; Priority is cost+heuristic at insertion time.
type Entry[S comparable] struct {
	ID       int
	State    S
	Priority int
}

// Frontier holds discovered-but-not-yet-expanded nodes. The three
// implementations differ only in the order Remove returns entries.
//
// ContainsState is a linear scan on every implementation. Frontiers stay
// small on the grids this package targets, so it is deliberately simple.
type Frontier[S comparable] interface {
	Insert(e Entry[S])
	Remove() (Entry[S], error)
	ContainsState(s S) bool
	Empty() bool
	// States lists the states currently resident, for snapshots.
	States() []S
}

// StackFrontier removes the most recently inserted entry (depth-first).
type StackFrontier[S comparable] struct {
	entries []Entry[S]
}

func NewStackFrontier[S comparable]() *StackFrontier[S] {
	return &StackFrontier[S]{}
}

func (f *StackFrontier[S]) Insert(e Entry[S]) {
	f.entries = append(f.entries, e)
}

func (f *StackFrontier[S]) Remove() (Entry[S], error) {
	if len(f.entries) == 0 {
		return Entry[S]{}, ErrEmptyFrontier
	}
	e := f.entries[len(f.entries)-1]
	f.entries = f.entries[:len(f.entries)-1]
	return e, nil
}

func (f *StackFrontier[S]) ContainsState(s S) bool { return containsState(f.entries, s) }
func (f *StackFrontier[S]) Empty() bool            { return len(f.entries) == 0 }
func (f *StackFrontier[S]) States() []S            { return statesOf(f.entries) }

// QueueFrontier removes the earliest inserted entry (breadth-first).
type QueueFrontier[S comparable] struct {
	entries []Entry[S]
}

func NewQueueFrontier[S comparable]() *QueueFrontier[S] {
	return &QueueFrontier[S]{}
}

func (f *QueueFrontier[S]) Insert(e Entry[S]) {
	f.entries = append(f.entries, e)
}

func (f *QueueFrontier[S]) Remove() (Entry[S], error) {
	if len(f.entries) == 0 {
		return Entry[S]{}, ErrEmptyFrontier
	}
	e := f.entries[0]
	f.entries = f.entries[1:]
	return e, nil
}

func (f *QueueFrontier[S]) ContainsState(s S) bool { return containsState(f.entries, s) }
func (f *QueueFrontier[S]) Empty() bool            { return len(f.entries) == 0 }
func (f *QueueFrontier[S]) States() []S            { return statesOf(f.entries) }

func containsState[S comparable](entries []Entry[S], s S) bool {
	for _, e := range entries {
		if e.State == s {
			return true
		}
	}
	return false
}

func statesOf[S comparable](entries []Entry[S]) []S {
	states := make([]S, 0, len(entries))
	for _, e := range entries {
		states = append(states, e.State)
	}
	return states
}
