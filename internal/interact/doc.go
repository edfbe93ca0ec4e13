// Package interact holds the per-session viewer state and the event handlers
// that mutate it.
//
// A [State] is owned by exactly one event loop. Renderers translate their
// native input into an [Event] (usually through [Lookup]), call
// [State.Apply], and redraw unless the outcome is [OutcomeQuit]. Idle ticks
// call [State.Animate] with the time elapsed since the session started.
//
// Parameters are never clamped: repeated presses may drive s, b or r into
// regions where the integrator diverges.
package interact
