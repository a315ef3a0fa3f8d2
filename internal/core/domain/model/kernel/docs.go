// Package kernel contains shared value objects used across the domain model.
// It currently provides the UUID identifier type that all aggregates use for
// their identity, wrapped so the domain does not depend on external types.
package kernel
