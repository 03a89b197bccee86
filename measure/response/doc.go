// Package response measures the magnitude response of a rendered impulse.
//
// # Usage
//
//	engine.SetOutput(filterNode) // fed by graph.NewBuffer(impulse)
//	r, err := response.Measure(engine, 4096)
//	peakHz, peakDB := r.Peak()
//	fmt.Printf("%.0f Hz: %.1f dB\n", peakHz, r.MagnitudeDB(1000))
package response
