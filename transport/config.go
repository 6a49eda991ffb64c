package transport

import "fmt"

// ParticleStepOptions groups the scaled step-limit parameters for one
// particle weight class (light or heavy), per §4.3's "scaled step limiter".
type ParticleStepOptions struct {
	// MinRange is rho: below this range the step limit equals the range
	// itself rather than the scaled formula.
	MinRange float64 `yaml:"min_range"`
	// MaxStepOverRange is alpha: the fraction of range allowed as a single
	// step far from the end of range.
	MaxStepOverRange float64 `yaml:"max_step_over_range"`
	// LowestEnergy floors the particle's kinetic energy for range/eloss
	// table lookups.
	LowestEnergy float64 `yaml:"lowest_energy"`
	// RangeFactor scales the range-to-step conversion independent of
	// MaxStepOverRange; reserved for multiple-scattering coupling.
	RangeFactor float64 `yaml:"range_factor"`
	// Displaced enables the lateral MSC displacement after the step.
	Displaced bool `yaml:"displaced"`
	// StepLimitAlgorithm names which range-to-step formula variant to apply;
	// "" selects the default formula in §4.3.
	StepLimitAlgorithm string `yaml:"step_limit_algorithm"`
}

// Validate checks bounds called out in §4.3/§4.6.
func (o ParticleStepOptions) Validate(label string) error {
	if o.MaxStepOverRange <= 0 || o.MaxStepOverRange > 1 {
		return NewValidationError(label, "max_step_over_range %g must be in (0, 1]", o.MaxStepOverRange)
	}
	if o.MinRange <= 0 {
		return NewValidationError(label, "min_range %g must be positive", o.MinRange)
	}
	if o.LowestEnergy < 0 {
		return NewValidationError(label, "lowest_energy %g must be nonnegative", o.LowestEnergy)
	}
	return nil
}

// PhysicsOptions configures the physics registry and step-limit calculator
// at construction (§6).
type PhysicsOptions struct {
	// MinEprimeOverE is xi: the fraction of pre-step energy defining the
	// window the integral-XS estimator searches for a peak (§4.3). Zero
	// selects the default of 1 - Light.MaxStepOverRange.
	MinEprimeOverE float64 `yaml:"min_eprime_over_e"`
	// LinearLossLimit bounds the fractional energy loss treated as linear
	// over a step before switching to the inverse-range lookup.
	LinearLossLimit float64 `yaml:"linear_loss_limit"`
	// SecondaryStackFactor sizes the per-state secondary stack as a multiple
	// of the track-slot pool size.
	SecondaryStackFactor float64 `yaml:"secondary_stack_factor"`
	// LambdaLimit is a hard cap, in length units, applied to interaction_mfp
	// based step limits to bound computation along very rarefied materials.
	LambdaLimit float64 `yaml:"lambda_limit"`
	// SafetyFactor scales geometry safety distances used by along-step
	// actions that query the geometry view.
	SafetyFactor float64 `yaml:"safety_factor"`
	// SplineElossOrder is the spline order (>= 1) used for dE/dx
	// interpolation; 1 selects linear.
	SplineElossOrder int `yaml:"spline_eloss_order"`
	// DisableIntegralXs forces every process to evaluate its macro cross
	// section at the pre-step energy regardless of its declared method.
	DisableIntegralXs bool `yaml:"disable_integral_xs"`
	// FixedStepLimiter, if positive, caps every step at this length (§4.4).
	FixedStepLimiter float64 `yaml:"fixed_step_limiter"`
	// Light and Heavy hold per-class range/step-limit settings.
	Light ParticleStepOptions `yaml:"light"`
	Heavy ParticleStepOptions `yaml:"heavy"`
}

// Validate checks the option bounds spelled out in §4.3 and §4.6, returning
// a *ValidationError on the first violation. No partial registry is ever
// built from an invalid PhysicsOptions.
func (o PhysicsOptions) Validate() error {
	if o.MinEprimeOverE < 0 || o.MinEprimeOverE > 1 {
		return NewValidationError("PhysicsOptions", "min_eprime_over_e %g must be in [0, 1]", o.MinEprimeOverE)
	}
	if o.LinearLossLimit < 0 || o.LinearLossLimit > 1 {
		return NewValidationError("PhysicsOptions", "linear_loss_limit %g must be in [0, 1]", o.LinearLossLimit)
	}
	if o.SecondaryStackFactor <= 0 {
		return NewValidationError("PhysicsOptions", "secondary_stack_factor %g must be positive", o.SecondaryStackFactor)
	}
	if o.SplineElossOrder < 1 {
		return NewValidationError("PhysicsOptions", "spline_eloss_order %d must be >= 1", o.SplineElossOrder)
	}
	if o.FixedStepLimiter < 0 {
		return NewValidationError("PhysicsOptions", "fixed_step_limiter %g must be nonnegative", o.FixedStepLimiter)
	}
	if err := o.Light.Validate("PhysicsOptions.light"); err != nil {
		return err
	}
	if err := o.Heavy.Validate("PhysicsOptions.heavy"); err != nil {
		return err
	}
	return nil
}

// EffectiveMinEprimeOverE returns MinEprimeOverE, defaulting per §4.3 to
// 1 - max_step_over_range (using the light-particle setting, the common
// case for EM transport) when the option is left at its zero value.
func (o PhysicsOptions) EffectiveMinEprimeOverE() float64 {
	if o.MinEprimeOverE != 0 {
		return o.MinEprimeOverE
	}
	return 1 - o.Light.MaxStepOverRange
}

// DefaultPhysicsOptions returns reasonable Celeritas-compatible defaults.
func DefaultPhysicsOptions() PhysicsOptions {
	return PhysicsOptions{
		LinearLossLimit:      0.01,
		SecondaryStackFactor: 3,
		LambdaLimit:          1e8,
		SafetyFactor:         0.9,
		SplineElossOrder:     1,
		Light: ParticleStepOptions{
			MinRange:         1e-3,
			MaxStepOverRange: 0.2,
			LowestEnergy:     1e-4,
			RangeFactor:      0.04,
		},
		Heavy: ParticleStepOptions{
			MinRange:         1e-3,
			MaxStepOverRange: 0.2,
			LowestEnergy:     1e-3,
			RangeFactor:      0.2,
		},
	}
}

// String renders the options for log lines, mirroring the teacher's
// structured single-line config summaries.
func (o PhysicsOptions) String() string {
	return fmt.Sprintf(
		"PhysicsOptions{eprime=%.3g linear_loss=%.3g secondary_factor=%.3g spline_order=%d integral_xs=%v}",
		o.MinEprimeOverE, o.LinearLossLimit, o.SecondaryStackFactor, o.SplineElossOrder, !o.DisableIntegralXs,
	)
}
