// Package treesearch is your in-memory toolkit for exhaustive and
// branch-and-bound search over combinatorial state spaces in Go.
//
// 🚀 What is treesearch?
//
//	A generic, thread-safe, minimal-dependency library that brings together:
//
//	  • Two state shapes: Branching (states that generate their own
//	    children) and Mutable (a single physical state synchronized via
//	    bounded Apply/UndoLast)
//	  • Two traversal strategies: depth-first and breadth-first, each
//	    over either state shape
//	  • Search control: incumbent tracking, node/runtime limits,
//	    cancellation, and admissible-bound pruning
//	  • Parallel fan-out: seed a frontier sequentially, then drive it
//	    with a worker pool behind a single shared control
//	  • A randomized self-consistency validator for Mutable state
//	    implementations
//
// ✨ Why choose treesearch?
//
//   - Beginner-friendly — minimal API, clear, intuitive naming
//   - Rock-solid        — a single control object owns all search state
//   - Extensible        — attach improvement callbacks for custom logic
//   - Pure Go           — no cgo, one small transport dependency (errgroup)
//
// Under the hood, everything is organized under focused subpackages:
//
//	quality/  — Quality[T], Direction, comparisons
//	state/    — Branching[S,Q] and Mutable[S,C,Q] interfaces
//	frontier/ — LIFO/FIFO/bi-level queue containers
//	control/  — SearchControl, functional options, thread-safe wrapper
//	engine/   — sequential DFS/BFS over both state shapes
//	parallel/ — seed-then-fan-out parallel DFS/BFS
//	validate/ — randomized self-consistency screen for Mutable states
//
// Quick example: an 8-queens board is a Mutable state whose choices are
// "place the next queen in this column"; SolveDFSMutable exhausts every
// non-conflicting placement.
//
// See example_test.go for runnable, output-checked demonstrations of
// n-queens and 0/1 knapsack.
//
//	go get github.com/katalvlaran/treesearch
package treesearch
