// Package unit provides the domain model for inventory units and their audit
// trail. It implements the Unit aggregate root with lifecycle management and
// the state machine governing every status transition.
//
// The package includes:
//   - Unit: the aggregate root owning identity, placement and status
//   - Status: a state machine over the seven lifecycle states
//   - InitiationStatus / ArrivalStatus: the explicit transfer transition tables
//   - Event / EventType: the immutable audit record paired with every mutation
//   - Snapshot: the deterministic before/after projection stored in events
//
// Key business rules:
//   - Units are created unidentified in a warehouse and end at the terminal
//     Sold status; they are never deleted
//   - Engine and chassis numbers are bound exactly once, at identification,
//     and are globally unique
//   - Transfer routes outside the transition table (warehouse origins) are
//     rejected rather than silently ignored
//   - Every mutating method is meant to be paired with exactly one Event in
//     the same transaction by the enclosing workflow
package unit
