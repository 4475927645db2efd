// Package mazesearch implements classic graph-search algorithms over text mazes.
//
// It exposes two main entry points:
//
//   - Search: run an algorithm to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//
// The engine is generic over state type and parameterized by frontier
// discipline (stack, queue, priority), which is what differentiates
// breadth-first, depth-first, greedy best-first and A* search. The Maze type
// adapts a line-oriented text maze to the engine's Graph interface.
package mazesearch
