// Package effectnode implements the dry/wet effect node wrapper around a
// hosted effect unit.
//
// A [Node] owns three graph pieces built at construction:
//
//	input ──> inputGain (dry) ─────────────┐
//	  └─────> effect unit ──> effectGain ──┴─> mixer ──> output
//
// Parameter writes are clamped to their declared range, stored and forwarded
// to the unit's global scope. The dry/wet mix sets the two gains to a linear
// crossfade. Start and Stop switch between the fully wet (dry muted) and
// fully dry (effect muted) gain settings.
//
// Nodes are built against an injected [Context] instead of process-wide
// engine state, so tests can hand in a recording host.
package effectnode
