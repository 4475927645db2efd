package mazesearch

import (
	"errors"
	"fmt"
)

// ErrUnknownAlgorithm reports an algorithm name this package does not implement.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithm names a search strategy. The name selects both the frontier
// discipline and the cost/heuristic rule applied to discovered nodes.
type Algorithm string

const (
	BreadthFirst    Algorithm = "breadth_first"
	DepthFirst      Algorithm = "depth_first"
	GreedyBestFirst Algorithm = "greedy_best_first"
	AStar           Algorithm = "a_star"
)

// Algorithms lists the supported algorithms in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{BreadthFirst, DepthFirst, GreedyBestFirst, AStar}
}

// Graph is generic over state type S.
// S must be comparable so it can be used in maps.
type Graph[S comparable] interface {
	Neighbors(s S) []Step[S]
}

// Step is a reachable state together with the action that reaches it.
type Step[S comparable] struct {
	Action Action
	State  S
}

// Heuristic estimates the remaining cost from a state to the goal.
type Heuristic[S comparable] func(s S) int

// Result contains the outcome of a search.
//
// Found == false means the frontier was exhausted without reaching the
// goal. That is a valid negative result, not an error: Search returns it
// with a nil error.
type Result[S comparable] struct {
	Path     []S      // states from the cell after start through goal
	Actions  []Action // moves producing Path, one per state
	Cost     int      // accumulated cost of the goal node
	Expanded int      // nodes popped and expanded
	Found    bool
}

// node is one step of a search path. The parent link is an index into the
// searcher's arena (-1 for the root); nodes are never mutated after append.
type node[S comparable] struct {
	state     S
	parent    int
	action    Action
	cost      int
	heuristic int
}

// searcher owns the state of one search run: the frontier, the node arena
// and the explored set. Search and Stepper drive the same expansion logic.
type searcher[S comparable] struct {
	graph     Graph[S]
	goal      S
	heuristic Heuristic[S]
	algorithm Algorithm

	frontier Frontier[S]
	arena    []node[S]
	explored map[S]bool
}

func newSearcher[S comparable](g Graph[S], start, goal S, h Heuristic[S], alg Algorithm) (*searcher[S], error) {
	frontier, err := frontierFor[S](alg)
	if err != nil {
		return nil, err
	}
	sr := &searcher[S]{
		graph:     g,
		goal:      goal,
		heuristic: h,
		algorithm: alg,
		frontier:  frontier,
		explored:  make(map[S]bool),
	}
	root := node[S]{state: start, parent: -1, action: ActionNone, heuristic: h(start)}
	sr.arena = append(sr.arena, root)
	sr.frontier.Insert(Entry[S]{ID: 0, State: start, Priority: root.cost + root.heuristic})
	return sr, nil
}

func frontierFor[S comparable](alg Algorithm) (Frontier[S], error) {
	switch alg {
	case BreadthFirst:
		return NewQueueFrontier[S](), nil
	case DepthFirst:
		return NewStackFrontier[S](), nil
	case GreedyBestFirst, AStar:
		return NewPriorityFrontier[S](), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
}

// expand marks the node's state explored and inserts every undiscovered
// open neighbor. Cost and heuristic of a child depend on the algorithm:
// uninformed search accrues cost only, greedy uses the heuristic only,
// A* uses both.
func (sr *searcher[S]) expand(id int) {
	n := sr.arena[id]
	sr.explored[n.state] = true
	for _, step := range sr.graph.Neighbors(n.state) {
		if sr.explored[step.State] || sr.frontier.ContainsState(step.State) {
			continue
		}
		child := node[S]{state: step.State, parent: id, action: step.Action}
		switch sr.algorithm {
		case GreedyBestFirst:
			child.heuristic = sr.heuristic(step.State)
		case AStar:
			child.cost = n.cost + 1
			child.heuristic = sr.heuristic(step.State)
		default:
			child.cost = n.cost + 1
		}
		sr.arena = append(sr.arena, child)
		sr.frontier.Insert(Entry[S]{
			ID:       len(sr.arena) - 1,
			State:    child.state,
			Priority: child.cost + child.heuristic,
		})
	}
}

// reconstruct walks parent indices from id back to the root and reverses
// the collected states and actions. The root's own state is excluded, so
// a goal equal to the start yields an empty path.
func (sr *searcher[S]) reconstruct(id int) (path []S, actions []Action) {
	for i := id; sr.arena[i].parent >= 0; i = sr.arena[i].parent {
		path = append(path, sr.arena[i].state)
		actions = append(actions, sr.arena[i].action)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
		actions[i], actions[j] = actions[j], actions[i]
	}
	return path, actions
}

// Search runs the chosen algorithm from start to goal over g.
//
// Exploration order is fully deterministic: it depends only on the graph's
// neighbor order and the frontier discipline, so repeated runs yield the
// identical path.
func Search[S comparable](g Graph[S], start, goal S, h Heuristic[S], alg Algorithm) (Result[S], error) {
	sr, err := newSearcher(g, start, goal, h, alg)
	if err != nil {
		return Result[S]{}, err
	}
	expanded := 0
	for !sr.frontier.Empty() {
		entry, err := sr.frontier.Remove()
		if err != nil {
			return Result[S]{}, err
		}
		n := sr.arena[entry.ID]
		if n.state == goal {
			path, actions := sr.reconstruct(entry.ID)
			return Result[S]{
				Path:     path,
				Actions:  actions,
				Cost:     n.cost,
				Expanded: expanded,
				Found:    true,
			}, nil
		}
		sr.expand(entry.ID)
		expanded++
	}
	return Result[S]{Expanded: expanded, Found: false}, nil
}
