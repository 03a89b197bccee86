package effectnode

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-effectnode/audiounit"
)

// Param is one forwarded parameter of a node.
type Param struct {
	node  *Node
	spec  ParamSpec
	value float64
}

// Spec returns the parameter description.
func (p *Param) Spec() ParamSpec {
	return p.spec
}

// Value returns the stored (clamped) value.
func (p *Param) Value() float64 {
	return p.value
}

// Set clamps v to the parameter range, stores it and forwards it to the
// unit's global scope. NaN leaves the parameter unchanged. Unit errors are
// logged, not returned.
func (p *Param) Set(v float64) {
	if math.IsNaN(v) {
		p.node.log.WithFields(logrus.Fields{
			"function":  "Param.Set",
			"parameter": p.spec.Key,
		}).Debug("Ignoring NaN parameter value")

		return
	}

	p.value = p.spec.Range.Clamp(v)
	p.forward()
}

func (p *Param) forward() {
	err := p.node.effect.Unit().SetParameter(p.spec.ID, audiounit.ScopeGlobal, 0, float32(p.value))
	if err != nil {
		p.node.log.WithFields(logrus.Fields{
			"function":  "Param.Set",
			"parameter": p.spec.Key,
			"id":        p.spec.ID,
			"value":     p.value,
			"error":     err.Error(),
		}).Warn("Effect unit rejected parameter")
	}
}
