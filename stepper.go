package mazesearch

// StepSnapshot exposes the per-iteration state of the search. The maps are
// copies and safe to retain across further steps.
type StepSnapshot[S comparable] struct {
	Current   S
	Frontier  map[S]bool
	Explored  map[S]bool
	Done      bool
	Found     bool
	Path      []S
	StepIndex int
}

// Stepper runs the same engine as Search one expansion at a time, so a
// caller can render frontier and explored sets between steps.
type Stepper[S comparable] struct {
	sr        *searcher[S]
	stepCount int
	done      bool
	found     bool
	path      []S
}

// NewStepper creates a step-by-step search from start to goal over g.
func NewStepper[S comparable](g Graph[S], start, goal S, h Heuristic[S], alg Algorithm) (*Stepper[S], error) {
	sr, err := newSearcher(g, start, goal, h, alg)
	if err != nil {
		return nil, err
	}
	return &Stepper[S]{sr: sr}, nil
}

// Step advances the search by one node expansion and returns a snapshot.
// Once the snapshot reports Done, further calls return the final state
// unchanged.
func (s *Stepper[S]) Step() (StepSnapshot[S], error) {
	if s.done {
		return s.snapshot(), nil
	}
	if s.sr.frontier.Empty() {
		s.done = true
		return s.snapshot(), nil
	}

	entry, err := s.sr.frontier.Remove()
	if err != nil {
		return StepSnapshot[S]{}, err
	}
	s.stepCount++
	n := s.sr.arena[entry.ID]
	if n.state == s.sr.goal {
		s.done = true
		s.found = true
		s.path, _ = s.sr.reconstruct(entry.ID)
		snap := s.snapshot()
		snap.Current = n.state
		return snap, nil
	}

	s.sr.expand(entry.ID)
	snap := s.snapshot()
	snap.Current = n.state
	return snap, nil
}

// Done reports whether the search has terminated.
func (s *Stepper[S]) Done() bool { return s.done }

// Found reports whether the goal was reached. Meaningful once Done.
func (s *Stepper[S]) Found() bool { return s.found }

func (s *Stepper[S]) snapshot() StepSnapshot[S] {
	frontier := make(map[S]bool)
	for _, st := range s.sr.frontier.States() {
		frontier[st] = true
	}
	explored := make(map[S]bool, len(s.sr.explored))
	for st := range s.sr.explored {
		explored[st] = true
	}
	var path []S
	if s.found {
		path = append([]S(nil), s.path...)
	}
	return StepSnapshot[S]{
		Frontier:  frontier,
		Explored:  explored,
		Done:      s.done,
		Found:     s.found,
		Path:      path,
		StepIndex: s.stepCount,
	}
}
