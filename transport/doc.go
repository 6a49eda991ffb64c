// Package transport implements the Celeritas-style Monte Carlo transport core:
// the per-step physics pipeline that samples the next interaction, limits the
// step by physics and field curvature, propagates a track through geometry,
// and applies the resulting interaction.
//
// # Reading Guide
//
// Start with these files to understand the core:
//   - ids.go: opaque, type-safe handles shared across the package tree
//   - quantity.go: compile-time-tagged numeric quantities (MeV, MeV/c, ...)
//   - config.go: PhysicsOptions and the per-weight-class step-limit settings
//   - interfaces.go: the five external collaborators the core consumes
//
// # Architecture
//
// The transport package defines the shared data model and external
// interfaces; the pipeline stages live in sub-packages:
//   - transport/grid: uniform/log/nonuniform grids and their interpolators
//   - transport/field: ODE integrators, the adaptive substepper, and the
//     boundary-aware propagator
//   - transport/physics: the process/model registry, element CDFs, and the
//     integral cross-section estimator
//   - transport/selector: step-limit calculation, discrete interaction
//     selection, and interaction application
//   - transport/track: the pre-step initializer and the per-slot track pool
//   - transport/trace: recoverable-outcome recording for diagnostics and
//     reproducibility tests
//
// The physics, selector, track, and trace sub-packages consume the ids,
// quantities, and options defined here; grid and field import no other
// package of this module. physics also imports grid, selector imports
// physics and grid, and track imports selector.
//
// # Control Flow
//
// Per live slot, per step: track.RunPreStep resets scratch, computes the
// step limit via selector.CalcPhysicsStepLimit, and picks the along-step
// action; transport/field advances a charged track (or a straight-line move
// for neutrals); selector.SelectDiscreteInteraction picks the discrete
// process, model, and element; and selector.ApplyInteraction applies the
// resulting Interaction. Slots are
// independent: execution order across slots must never affect the result.
package transport
