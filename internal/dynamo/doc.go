// Package dynamo provides the primitives shared by the integrator pipeline.
//
// The package defines the types used to integrate ordinary differential
// equations (ODEs):
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, u, t))
//   - [Integrator]: fixed-step numerical integrator interface
//   - [Configurable]: runtime parameter access by name
//
// # Example
//
//	dyn := physics.NewLorenz()
//	integ := integrators.NewEuler()
//	x := dyn.DefaultState()
//	for i := 0; i < steps; i++ {
//	    x = integ.Step(dyn, x, nil, float64(i)*dt, dt)
//	}
package dynamo
