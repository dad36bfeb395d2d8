// Package du measures on-disk usage of filesystem subtrees by invoking
// the external du utility.
//
// It backs the optional size-augmentation pass: packages often generate
// data under /var/lib, /var/cache and /var/log at runtime that is not
// part of their installed footprint. [VarExplorer] finds those subtrees
// in a package's installed file list and adds their measured size to the
// package before graph construction.
//
// Measurement failures are per-path: a failing du invocation contributes
// zero bytes and is reported through the logging callback, never aborting
// the run.
package du
