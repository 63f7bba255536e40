// Package option provides a two-variant Option[T] container representing
// presence (Some) or absence (None) of a value, without nil sentinels.
//
// Highlights:
// - Some/None: construct Option[T]
// - Get/Match/Fold: narrow to the active variant
// - Map/AndThen: transform or chain without unwrapping
// - Unwrap/UnwrapOr/UnwrapOrElse: extract the value, with a panic escape hatch
// - Filter/Or/OrElse: keep or replace the container wholesale
// - AssertSome/AssertNone: panic when the container is not the expected variant
//
// Options are plain immutable values; every operation returns a new
// container and two Options with comparable payloads compare equal with ==
// exactly when variant and payload agree. Converting an Option into a
// Result lives in package result (FromOption), which keeps the import
// direction one-way between the two packages.
package option
