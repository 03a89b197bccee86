package audiounit

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"
)

// ErrComponentNotFound is returned when no factory matches a description.
var ErrComponentNotFound = errors.New("audiounit: component not found")

var errDuplicateComponent = errors.New("audiounit: duplicate component")

// Factory creates one unit instance running at sampleRate.
type Factory func(sampleRate float64) (Unit, error)

// Host instantiates units from registered factories. Registration and
// instantiation are safe for concurrent use.
type Host struct {
	log logrus.FieldLogger

	mu        sync.RWMutex
	factories map[Description]Factory
}

// NewHost creates an empty host. A nil logger selects the logrus standard logger.
func NewHost(log logrus.FieldLogger) *Host {
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Host{
		log:       log,
		factories: make(map[Description]Factory),
	}
}

// Register adds a factory for desc.
func (h *Host) Register(desc Description, factory Factory) error {
	if factory == nil {
		return errors.New("audiounit: nil factory")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.factories[desc]; exists {
		return fmt.Errorf("%w: %s", errDuplicateComponent, desc)
	}

	h.factories[desc] = factory

	return nil
}

// MustRegister is like Register but panics on error.
func (h *Host) MustRegister(desc Description, factory Factory) {
	if err := h.Register(desc, factory); err != nil {
		panic(err.Error())
	}
}

// Components lists the registered descriptions.
func (h *Host) Components() []Description {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]Description, 0, len(h.factories))
	for d := range h.factories {
		out = append(out, d)
	}

	slices.SortFunc(out, compareDescriptions)

	return out
}

// Instantiate creates a unit matching desc.
func (h *Host) Instantiate(desc Description, sampleRate float64) (Unit, error) {
	h.mu.RLock()
	factory := h.factories[desc]
	h.mu.RUnlock()

	if factory == nil {
		h.log.WithFields(logrus.Fields{
			"function":  "Instantiate",
			"component": desc.String(),
		}).Warn("No factory registered for component")

		return nil, fmt.Errorf("%w: %s", ErrComponentNotFound, desc)
	}

	unit, err := factory(sampleRate)
	if err != nil {
		return nil, fmt.Errorf("audiounit: instantiate %s: %w", desc, err)
	}

	h.log.WithFields(logrus.Fields{
		"function":    "Instantiate",
		"component":   desc.String(),
		"sample_rate": sampleRate,
	}).Debug("Instantiated unit")

	return unit, nil
}

func compareDescriptions(a, b Description) int {
	for _, pair := range [][2]FourCC{
		{a.Type, b.Type},
		{a.SubType, b.SubType},
		{a.Manufacturer, b.Manufacturer},
	} {
		if pair[0] != pair[1] {
			if pair[0] < pair[1] {
				return -1
			}

			return 1
		}
	}

	return 0
}
