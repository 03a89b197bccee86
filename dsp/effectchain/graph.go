package effectchain

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

const (
	// InputNodeID is the reserved node ID for the chain input.
	InputNodeID = "_input"
	// OutputNodeID is the reserved node ID for the chain output.
	OutputNodeID = "_output"
)

var (
	// ErrCycle is returned for a patch whose connections form a loop.
	ErrCycle = errors.New("effectchain: patch contains cycle")
	// ErrInvalidPatch is returned for a patch that is not valid JSON.
	ErrInvalidPatch = errors.New("effectchain: invalid patch json")
)

// patchNode is a JSON-serializable node in the patch.
type patchNode struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Bypassed bool   `json:"bypassed"`
	Params   any    `json:"params"`
}

// patchConnection is a JSON-serializable connection between two nodes.
type patchConnection struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// patchState is the root JSON structure of a patch.
type patchState struct {
	Nodes       []patchNode       `json:"nodes"`
	Connections []patchConnection `json:"connections"`
}

// compiledPatch holds node parameters, parent lists and a topologically
// sorted traversal order.
type compiledPatch struct {
	Nodes   map[string]Params
	Parents map[string][]string
	Order   []string
}

// parsePatch parses a JSON patch and sorts it topologically (Kahn's
// algorithm). An empty string, or a patch without both reserved I/O nodes,
// yields an empty patch.
func parsePatch(raw []byte) (*compiledPatch, error) {
	if len(raw) == 0 {
		return &compiledPatch{}, nil
	}

	var state patchState

	err := json.Unmarshal(raw, &state)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPatch, err)
	}

	nodes := make(map[string]Params, len(state.Nodes))
	for _, n := range state.Nodes {
		if n.ID == "" || n.Type == "" {
			continue
		}

		nodes[n.ID] = Params{
			ID:       n.ID,
			Type:     n.Type,
			Bypassed: n.Bypassed,
			Num:      parseNodeParams(n.Params),
		}
	}

	if _, ok := nodes[InputNodeID]; !ok {
		return &compiledPatch{}, nil
	}

	if _, ok := nodes[OutputNodeID]; !ok {
		return &compiledPatch{}, nil
	}

	parents := make(map[string][]string, len(nodes))
	children := make(map[string][]string, len(nodes))
	indegree := make(map[string]int, len(nodes))

	for id := range nodes {
		indegree[id] = 0
	}

	for _, c := range state.Connections {
		if c.From == "" || c.To == "" || c.From == c.To {
			continue
		}

		if _, ok := nodes[c.From]; !ok {
			continue
		}

		if _, ok := nodes[c.To]; !ok {
			continue
		}

		if slices.Contains(parents[c.To], c.From) {
			continue
		}

		children[c.From] = append(children[c.From], c.To)
		parents[c.To] = append(parents[c.To], c.From)
		indegree[c.To]++
	}

	// Seed in patch order so the traversal is deterministic.
	queue := make([]string, 0, len(nodes))

	for _, n := range state.Nodes {
		if d, ok := indegree[n.ID]; ok && d == 0 && !slices.Contains(queue, n.ID) {
			queue = append(queue, n.ID)
		}
	}

	order := make([]string, 0, len(nodes))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		order = append(order, id)
		for _, to := range children[id] {
			indegree[to]--
			if indegree[to] == 0 {
				queue = append(queue, to)
			}
		}
	}

	if len(order) != len(nodes) {
		return nil, ErrCycle
	}

	return &compiledPatch{
		Nodes:   nodes,
		Parents: parents,
		Order:   order,
	}, nil
}

// parseNodeParams extracts numeric parameters from a raw JSON params value.
// Booleans map to 0 and 1; other kinds are dropped.
func parseNodeParams(raw any) map[string]float64 {
	num := map[string]float64{}

	params, ok := raw.(map[string]any)
	if !ok || params == nil {
		return num
	}

	for k, v := range params {
		switch t := v.(type) {
		case float64:
			num[k] = t
		case bool:
			if t {
				num[k] = 1
			} else {
				num[k] = 0
			}
		}
	}

	return num
}

// isStructuralNodeType reports whether nodeType is a reserved I/O node.
func isStructuralNodeType(nodeType string) bool {
	return nodeType == InputNodeID || nodeType == OutputNodeID
}
