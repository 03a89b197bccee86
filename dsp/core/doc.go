// Package core holds the small numeric helpers shared by the graph engine,
// the hosted units and the effect nodes: clamping, tolerant comparison,
// dB conversion, parameter ranges and processor configuration options.
package core
