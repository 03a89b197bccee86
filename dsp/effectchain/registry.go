package effectchain

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cwbudde/algo-effectnode/dsp/effectnode"
	"github.com/cwbudde/algo-effectnode/graph"
)

// Factory builds the effect node for one patch node fed by input.
type Factory func(ctx effectnode.Context, input graph.Node, params Params) (*effectnode.Node, error)

// Registry maps effect type names to their factories.
type Registry struct {
	factories map[string]Factory
}

var errDuplicateEffect = errors.New("duplicate effect type")

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory for the given effect type.
func (r *Registry) Register(effectType string, factory Factory) error {
	if effectType == "" {
		return errors.New("empty effect type")
	}

	if isStructuralNodeType(effectType) {
		return fmt.Errorf("reserved effect type: %s", effectType)
	}

	if factory == nil {
		return errors.New("nil factory")
	}

	if _, exists := r.factories[effectType]; exists {
		return fmt.Errorf("%w: %s", errDuplicateEffect, effectType)
	}

	r.factories[effectType] = factory

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(effectType string, factory Factory) {
	err := r.Register(effectType, factory)
	if err != nil {
		panic("effectchain registry: " + err.Error())
	}
}

// Lookup returns the factory for the given effect type, or nil.
func (r *Registry) Lookup(effectType string) Factory {
	return r.factories[effectType]
}

// Types returns the registered effect types, sorted.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.factories))
	for t := range r.factories {
		types = append(types, t)
	}

	slices.Sort(types)

	return types
}

// SpecFactory returns a factory building spec. Patch params whose key
// matches a parameter key become initial values; "dryWetMix" sets the mix.
// The node is named after the patch node ID.
func SpecFactory(spec effectnode.Spec) Factory {
	return func(ctx effectnode.Context, input graph.Node, params Params) (*effectnode.Node, error) {
		opts := []effectnode.Option{effectnode.WithName(params.ID)}

		for _, ps := range spec.Params {
			if params.Has(ps.Key) {
				opts = append(opts, effectnode.WithParameter(ps.ID, params.GetNum(ps.Key, ps.Range.Default)))
			}
		}

		if params.Has(effectnode.DryWetMixKey) {
			opts = append(opts, effectnode.WithDryWetMix(
				params.GetNum(effectnode.DryWetMixKey, effectnode.DryWetMixRange.Default)))
		}

		return effectnode.New(ctx, spec, input, opts...)
	}
}
