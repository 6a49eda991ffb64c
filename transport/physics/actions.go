// Package physics implements the physics registry from §4.3: per-particle
// process/model catalogs, action-id layout, the integral-XS estimator,
// element CDF sampling, and the scaled step limiter. Registry construction
// follows the teacher's validated-options-then-build pattern (options are
// checked up front; a partial registry is never returned).
package physics

import "github.com/celeritas-go/transport"

// ActionLayout assigns the four fixed internal action ids relative to
// firstModelAction, and the failure sentinel past the last model, per
// §4.3's "Action layout" index arithmetic.
type ActionLayout struct {
	FirstModelAction transport.ActionId
	NumModels        int
}

// MscRangeAction is first_model_action - 4.
func (l ActionLayout) MscRangeAction() transport.ActionId {
	return transport.NewActionId(l.FirstModelAction.Get() - 4)
}

// ElossRangeAction is first_model_action - 3.
func (l ActionLayout) ElossRangeAction() transport.ActionId {
	return transport.NewActionId(l.FirstModelAction.Get() - 3)
}

// DiscreteSelectAction is first_model_action - 2.
func (l ActionLayout) DiscreteSelectAction() transport.ActionId {
	return transport.NewActionId(l.FirstModelAction.Get() - 2)
}

// IntegralRejectionAction is first_model_action - 1.
func (l ActionLayout) IntegralRejectionAction() transport.ActionId {
	return transport.NewActionId(l.FirstModelAction.Get() - 1)
}

// FailureAction is first_model_action + num_models.
func (l ActionLayout) FailureAction() transport.ActionId {
	return transport.NewActionId(l.FirstModelAction.Get() + l.NumModels)
}

// ModelToAction converts a model index (0 <= k < num_models) to its action
// id: first_model_action + k.
func (l ActionLayout) ModelToAction(k int) transport.ActionId {
	if k < 0 || k >= l.NumModels {
		panic("physics: ModelToAction index out of range")
	}
	return transport.NewActionId(l.FirstModelAction.Get() + k)
}

// ActionToModel is the inverse of ModelToAction; ok is false if action does
// not fall within the model range.
func (l ActionLayout) ActionToModel(action transport.ActionId) (k int, ok bool) {
	k = action.Get() - l.FirstModelAction.Get()
	if k < 0 || k >= l.NumModels {
		return 0, false
	}
	return k, true
}

// HardwiredIds names the small set of models that compute their
// macroscopic cross section on the fly rather than from a table (§4.3
// "Hardwired models"): photoelectric below a tabulated threshold, positron
// annihilation, and neutron elastic.
type HardwiredIds struct {
	Photoelectric     transport.ModelId
	PositronAnnihilation transport.ModelId
	NeutronElastic    transport.ModelId
}

// IsHardwired reports whether a model id is one of the three special-cased
// on-the-fly models.
func (h HardwiredIds) IsHardwired(id transport.ModelId) bool {
	return (h.Photoelectric.Valid() && h.Photoelectric == id) ||
		(h.PositronAnnihilation.Valid() && h.PositronAnnihilation == id) ||
		(h.NeutronElastic.Valid() && h.NeutronElastic == id)
}
