package physics

import (
	"github.com/sirupsen/logrus"

	"github.com/celeritas-go/transport"
)

// Registry maps particle ids to their ProcessGroup, owns the hardwired
// model ids, and carries the validated options construction threads
// through to the step-limit calculator (§4.3, §6).
type Registry struct {
	options      transport.PhysicsOptions
	byParticle   map[transport.ParticleId]ProcessGroup
	hardwired    HardwiredIds
	actionLayout ActionLayout
}

// NewRegistry validates options and builds the registry from per-particle
// process groups. No partial registry is returned on error (§7).
func NewRegistry(options transport.PhysicsOptions, byParticle map[transport.ParticleId]ProcessGroup, hardwired HardwiredIds, firstModelAction transport.ActionId) (*Registry, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}

	numModels := 0
	for _, pg := range byParticle {
		for _, p := range pg.Processes {
			numModels += len(p.Models.Models)
		}
	}

	logrus.WithFields(logrus.Fields{
		"particles": len(byParticle),
		"models":    numModels,
	}).Info("physics registry built")

	return &Registry{
		options:    options,
		byParticle: byParticle,
		hardwired:  hardwired,
		actionLayout: ActionLayout{
			FirstModelAction: firstModelAction,
			NumModels:        numModels,
		},
	}, nil
}

// ProcessGroup returns the process group for a particle id, and whether
// one is registered.
func (r *Registry) ProcessGroup(id transport.ParticleId) (ProcessGroup, bool) {
	pg, ok := r.byParticle[id]
	return pg, ok
}

// Options returns the validated physics options the registry was built
// with.
func (r *Registry) Options() transport.PhysicsOptions { return r.options }

// Hardwired returns the registry's hardwired model ids.
func (r *Registry) Hardwired() HardwiredIds { return r.hardwired }

// ActionLayout returns the registry's fixed action-id layout.
func (r *Registry) ActionLayout() ActionLayout { return r.actionLayout }
