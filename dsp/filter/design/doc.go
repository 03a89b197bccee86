// Package design computes biquad coefficients for the filter shapes the
// software effect units expose, and converts the host-facing parameter units
// (bandwidth in cents, resonance in dB) into quality factors.
package design
