// Package biquad provides the second-order IIR runtime used by the software
// effect units.
//
// A [Section] implements Direct Form II Transposed processing for one set of
// [Coefficients]. Coefficient design lives in dsp/filter/design.
package biquad
