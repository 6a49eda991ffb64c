package physics

import (
	"fmt"

	"github.com/celeritas-go/transport"
	"github.com/celeritas-go/transport/grid"
)

// ModelGroup is an energy grid of length N+1 plus N model slots selecting
// which model owns each energy bin (§3). Energies are strictly increasing.
type ModelGroup struct {
	Energy []float64 // length N+1, MeV
	Models []transport.ModelId
}

// NewModelGroup validates the monotone-energy and slot-count invariants.
func NewModelGroup(energy []float64, models []transport.ModelId) (ModelGroup, error) {
	if len(models) < 1 {
		return ModelGroup{}, fmt.Errorf("physics: ModelGroup requires at least one model")
	}
	if len(energy) != len(models)+1 {
		return ModelGroup{}, fmt.Errorf("physics: ModelGroup energy grid length %d must be len(models)+1=%d", len(energy), len(models)+1)
	}
	for i := 1; i < len(energy); i++ {
		if energy[i] <= energy[i-1] {
			return ModelGroup{}, fmt.Errorf("physics: ModelGroup energy grid must be strictly increasing at index %d", i)
		}
	}
	return ModelGroup{Energy: energy, Models: models}, nil
}

// FindModel returns the model whose energy window [Energy[i], Energy[i+1])
// covers e, clamping to the end bins for out-of-range energies.
func (g ModelGroup) FindModel(e float64) transport.ModelId {
	if e <= g.Energy[0] {
		return g.Models[0]
	}
	n := len(g.Models)
	if e >= g.Energy[n] {
		return g.Models[n-1]
	}
	lo, hi := 0, n
	for lo+1 < hi {
		mid := (lo + hi) / 2
		if g.Energy[mid] <= e {
			lo = mid
		} else {
			hi = mid
		}
	}
	return g.Models[lo]
}

// Process describes one physics process applicable to a particle: its
// models (disjoint, contiguous energy windows), whether it is usable
// at-rest, whether it uses the integral-XS method, and its element CDF
// (nil if the process has no per-element variation).
type Process struct {
	ID             transport.ProcessId
	Models         ModelGroup
	AtRest         bool
	UsesIntegralXs bool
	IntegralXs     *IntegralXsProcess // non-nil iff UsesIntegralXs
	ElementCDF     *ElementCDF        // optional, per-material-index
}

// ProcessGroup bundles all processes applicable to one particle type,
// together with the particle-level energy-loss/range tables (§3).
type ProcessGroup struct {
	Processes     []Process
	EnergyLoss    *grid.Record // dE/dx vs log(E); nil if no eloss process
	Range         *grid.Record // range vs log(E); nil if no eloss process
	InverseRange  *grid.Record // energy vs range; nil if no eloss process
	AtRestProcess transport.ProcessId
}

// NewProcessGroup validates that at most one process is at-rest applicable
// and that the energy-loss, range, and inverse-range tables are supplied
// together or not at all (§4.3).
func NewProcessGroup(processes []Process, energyLoss, rangeTable, inverseRange *grid.Record) (ProcessGroup, error) {
	var atRest transport.ProcessId
	atRestCount := 0
	for _, p := range processes {
		if p.AtRest {
			atRestCount++
			atRest = p.ID
		}
	}
	if atRestCount > 1 {
		return ProcessGroup{}, fmt.Errorf("physics: at most one at-rest process is allowed per particle, found %d", atRestCount)
	}
	if (energyLoss == nil) != (rangeTable == nil) || (energyLoss == nil) != (inverseRange == nil) {
		return ProcessGroup{}, fmt.Errorf("physics: energy-loss, range, and inverse-range tables must be supplied together or not at all")
	}
	return ProcessGroup{
		Processes:     processes,
		EnergyLoss:    energyLoss,
		Range:         rangeTable,
		InverseRange:  inverseRange,
		AtRestProcess: atRest,
	}, nil
}

// ScaledStepLimit computes the §4.3 "Scaled step limiter": step = alpha*R +
// rho*(1-alpha)*(2 - rho/R) when R >= rho, else step = R. The result always
// satisfies 0 < step <= R.
func ScaledStepLimit(rangeValue float64, opts transport.ParticleStepOptions) float64 {
	alpha, rho := opts.MaxStepOverRange, opts.MinRange
	if rangeValue < rho {
		return rangeValue
	}
	return alpha*rangeValue + rho*(1-alpha)*(2-rho/rangeValue)
}
