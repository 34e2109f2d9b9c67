// Package engine implements the iterative depth-first and breadth-first
// traversal routines for both state shapes, Branching and Mutable.
//
// Each search function (DFSBranching, DFSMutable, BFSBranching,
// BFSMutable) validates its filter_width/depth_limit/nodes_reached/
// backtrack_limit arguments, then builds a fresh frontier and drives it
// to completion. The frontier types themselves (DFSBranchingFrontier,
// DFSMutableFrontier, BFSBranchingFrontier, BFSMutableFrontier) and their
// "run one slice" functions are exported so that package parallel can
// keep a worker's frontier alive across multiple short-lived local
// SearchControls, instead of restarting from the worker's seed state each
// slice.
//
// Complexity: sequential DFS/BFS are O(visited nodes × filter_width) time;
// DFS-over-Mutable is O(depth × branching-factor) memory since its
// frontier holds choice tokens, not states.
package engine
