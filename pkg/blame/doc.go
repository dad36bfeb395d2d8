// Package blame redistributes per-package disk usage along the dependency
// graph until all of it is concentrated on root packages.
//
// # Blame reassignment
//
// Every installed package starts out holding its own on-disk footprint.
// The [Engine] walks the graph in postorder and collapses each non-root
// package into its direct dependents: the package's current size is split
// equally among its parents, the package is marked collapsed, and each
// still-pending parent receives one share. Shares directed at a parent
// that already collapsed (which happens inside dependency loops) are
// dropped - a bounded accuracy loss, not an error.
//
// Root packages (nothing depends on them) are never collapsed; they keep
// accumulating blame and end up holding their own footprint plus every
// downstream footprint proportionally attributed to them.
//
// # Cycle breaking
//
// Real dependency graphs contain loops. The traversal carries an explicit
// depth and stops descending once it reaches [DefaultMaxDepth], leaving
// the remaining children pending to be collapsed through another entry
// point. This bounds total work by nodes × depth and guarantees
// termination on any finite graph.
//
// The last pending member of a loop whose dependents have all collapsed
// stays pending and keeps the size accumulated so far, so an isolated
// cyclic cluster never loses its entire footprint.
package blame
