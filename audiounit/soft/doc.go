// Package soft provides in-process software implementations of the filter
// effect units, registered under the same component descriptions a platform
// host would expose. They make a graph renderable without a platform audio
// stack, for offline rendering and tests.
package soft
