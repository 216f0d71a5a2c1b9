// Package parcel contains the Parcel aggregate and its state machines.
// A parcel moves through three orthogonal lifecycles — delivery, payment,
// and cash-out — each modeled as an enumerated status with an explicit
// transition table validated on every write. Cross-cutting rules (paid
// before rider assignment, delivered before cash-out) live on the
// aggregate itself.
package parcel
