// Package filters provides the filter effect nodes: band pass, low pass and
// high pass, each a typed front end over effectnode.Node.
package filters
