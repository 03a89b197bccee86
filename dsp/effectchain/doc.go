// Package effectchain builds graphs of effect nodes from JSON patches.
//
// A patch lists nodes and connections:
//
//	{
//	  "nodes": [
//	    {"id": "_input", "type": "_input"},
//	    {"id": "bp", "type": "bandpass", "params": {"centerFrequency": 800, "dryWetMix": 100}},
//	    {"id": "_output", "type": "_output"}
//	  ],
//	  "connections": [
//	    {"from": "_input", "to": "bp"},
//	    {"from": "bp", "to": "_output"}
//	  ]
//	}
//
// Nodes are built in topological order. A node with several parents is fed
// by a mixer summing them. Unknown effect types pass their input through.
package effectchain
