// Package audiounit is the boundary between the signal graph and hosted
// effect units.
//
// A [Unit] is an opaque processing block addressed by component
// [Description] and configured through (parameter, scope, element) writes,
// mirroring the platform audio-unit model. A [Host] instantiates units from a
// registry of factories, and [Effect] places an instantiated unit in a
// graph.Engine as an ordinary node.
package audiounit
