package effectnode

import "github.com/sirupsen/logrus"

// Start engages the effect: dry path muted, effect at unity. It overrides
// the gains set by SetDryWetMix. No-op when already started.
func (n *Node) Start() {
	if n.state == Started {
		return
	}

	n.inputGain.SetGain(0)
	n.effectGain.SetGain(1)
	n.setState(Started)
}

// Play is an alias for Start.
func (n *Node) Play() {
	n.Start()
}

// Stop bypasses the effect: dry path at unity, effect muted. It overrides
// the gains set by SetDryWetMix. No-op when already stopped.
func (n *Node) Stop() {
	if n.state == Stopped {
		return
	}

	n.inputGain.SetGain(1)
	n.effectGain.SetGain(0)
	n.setState(Stopped)
}

// Bypass is an alias for Stop.
func (n *Node) Bypass() {
	n.Stop()
}

// State returns the transport state.
func (n *Node) State() State {
	return n.state
}

// IsStarted reports whether the effect is engaged.
func (n *Node) IsStarted() bool {
	return n.state == Started
}

// IsPlaying reports whether the effect is engaged.
func (n *Node) IsPlaying() bool {
	return n.IsStarted()
}

// IsStopped reports whether the node passes the dry signal only.
func (n *Node) IsStopped() bool {
	return !n.IsStarted()
}

// IsBypassed reports whether the node passes the dry signal only.
func (n *Node) IsBypassed() bool {
	return n.IsStopped()
}

func (n *Node) setState(s State) {
	n.state = s

	n.log.WithFields(logrus.Fields{
		"function": "setState",
		"state":    s.String(),
	}).Debug("Transport changed")
}
