// Package analysis characterises the Lorenz flow numerically.
//
//   - [LyapunovExponent]: largest Lyapunov exponent via renormalised
//     trajectory separation
//   - [BifurcationDiagram]: parameter sweep recording local maxima of one
//     state component
//
// A positive largest Lyapunov exponent indicates chaotic dynamics:
//
//	lambda := analysis.LyapunovExponent(dyn, integ, x0, dt, 10, 50, 1e-8)
//	if lambda > 0 {
//	    // System is chaotic
//	}
package analysis
