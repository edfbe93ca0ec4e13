// Package physics provides the Lorenz system used by the viewer.
//
// [Lorenz] implements the [dynamo.System] interface, defining the
// differential equations governing the system's evolution, and
// [dynamo.Configurable] so the coefficients can be read and written by
// name ("s", "b", "r").
//
//	dyn := physics.NewLorenz()
//	dyn.R += 0.5
//	dx := dyn.Derive(dyn.DefaultState(), nil, 0)
package physics
