// Package result provides a two-variant Result[T, E] container representing
// either the success value (Ok) or the error value (Err) of a fallible
// computation. The error side is an independent type parameter, so any
// value can describe a failure, not only the built-in error interface.
//
// Highlights:
// - Ok/Err: construct Result[T, E]
// - Get/GetErr/Match/Fold: narrow to the active variant
// - Map/MapErr/MapBoth: transform one side, the other passes through
// - AndThen: chain fallible steps, short-circuiting on the first Err
// - Unwrap/UnwrapErr/UnwrapOr/UnwrapOrElse: extract a payload
// - AssertOk/AssertErr: panic when the container is not the expected variant
// - ToOption/FromOption: interoperate with package option
//
// Results are plain immutable values with structural equality; combinators
// return new containers and never invoke the handler for the inactive side.
package result
