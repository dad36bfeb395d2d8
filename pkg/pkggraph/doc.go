// Package pkggraph builds the in-memory dependency graph of installed
// packages that the blame engine operates on.
//
// The graph is built from package [Record] values supplied by a database
// source (see the dpkg package). Building is a two-pass process: first a
// node is created for every record, then dependency edges are added. An
// edge is recorded only when its target is itself installed; dependency
// alternatives that are not installed are silently skipped, which is the
// expected case for OR-groups.
//
// Edges are symmetric (child lists and parent lists always agree) and are
// never mutated after Build returns. Only the per-node size state changes,
// and only through [Node.AddBlame] and [Node.Collapse].
//
// Child and parent lists preserve insertion order and contain no
// duplicates, so traversal order is reproducible across runs.
package pkggraph
