// Package engine owns session lifecycle: creation, lookup, clearing, and
// the emergency panic that destroys all key material at once.
//
// The Registry replaces the original design's module-level singleton; a
// caller constructs one explicitly and hands it to the Engine, so tests
// and embedders can run independent registries side by side.
package engine
