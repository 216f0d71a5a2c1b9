// Package kernel provides the core domain primitives shared by every
// aggregate in the parcel-delivery system.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - TrackingCode: The human-facing parcel identifier printed on labels
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, suitable for concurrent use.
package kernel
