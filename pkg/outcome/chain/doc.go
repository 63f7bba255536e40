// Package chain provides a fluent wrapper around result.Result[T, E] for
// building synchronous success-path pipelines without branching at each
// step.
//
// Common usage:
// - Start/FromValue: begin a chain from a Result or a success value
// - Then/Map/MapErr: compose same-type steps as methods
// - Then/Map (package funcs): switch the chain to a new value type
// - Ensure: trigger side effects without changing the result
// - Or/And: combine alternative or required chains
// - Finally/UnwrapOr: collapse the chain into a concrete value
//
// Every step short-circuits once the underlying Result is an Err: later
// step functions are never invoked and the first error travels to the end
// of the chain unchanged.
package chain
