// Package graph is a small pull-based signal graph engine.
//
// Nodes render one block at a time into a caller-provided buffer. A render
// pass is a [Cycle]: every node pulls its inputs through the cycle, which
// renders each node at most once, so a source that feeds several paths (for
// example the dry and wet paths of an effect node) is read exactly once per
// block.
//
// The engine owns the attached node set and the output node. Gain stages
// ([Gain]) and summing points ([Mixer]) are provided here; hosted effect units
// live in package audiounit.
package graph
